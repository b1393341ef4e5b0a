// Package oci pushes stamped firmware images to OCI-compliant registries.
//
// A stamped image and its stamp manifest are packaged as an OCI 1.1
// artifact with the media type "application/vnd.nvidia.sigil.firmware"
// and pushed using the ORAS (OCI Registry As Storage) library. The
// artifact type distinguishes firmware payloads from runnable container
// images; consumers that don't understand it should treat the artifact
// as an opaque blob.
//
// Push targets use the oci:// URI scheme (e.g.
// "oci://ghcr.io/nvidia/bmc-firmware:1.4.0"). When the target carries no
// tag, callers apply the firmware version as the default.
//
// Authentication uses the standard Docker credential store
// (~/.docker/config.json) via the ORAS credentials package.
package oci
