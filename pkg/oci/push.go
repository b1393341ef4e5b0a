// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oci

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	apperrors "github.com/NVIDIA/firmware-stamp/pkg/errors"
	"github.com/NVIDIA/firmware-stamp/pkg/semver"
)

// ArtifactType identifies sigil firmware artifacts in a registry.
const ArtifactType = "application/vnd.nvidia.sigil.firmware"

// Layer media types for the firmware payload and its stamp manifest.
const (
	ImageMediaType    = "application/vnd.nvidia.sigil.firmware.image.v1"
	ManifestMediaType = "application/vnd.nvidia.sigil.stamp-manifest.v1+yaml"
)

// PushOptions configures a firmware artifact push.
type PushOptions struct {
	// ImagePath is the stamped firmware image to push.
	ImagePath string
	// ManifestPath optionally attaches the stamp manifest as a second
	// layer. Empty skips it.
	ManifestPath string
	// Target is the parsed registry reference. Tag must be set.
	Target *Reference
	// Version is the firmware version, recorded in the manifest
	// annotations.
	Version semver.Version
	// PlainHTTP uses HTTP instead of HTTPS (local development registries).
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
	// Annotations are merged over the default manifest annotations.
	Annotations map[string]string
}

// PushResult describes a completed push.
type PushResult struct {
	// Digest is the manifest digest of the pushed artifact.
	Digest string
	// Reference is the full image reference (registry/repository:tag).
	Reference string
}

// Push packages the firmware image (and optionally its stamp manifest)
// as an OCI 1.1 artifact and pushes it to the target registry.
func Push(ctx context.Context, opts PushOptions) (*PushResult, error) {
	if opts.Target == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "push target is required")
	}
	if opts.Target.Tag == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "push target must carry a tag")
	}

	absImage, err := filepath.Abs(opts.ImagePath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to resolve image path", err)
	}

	slog.Info("pushing firmware artifact",
		"image", absImage,
		"reference", opts.Target.ImageReference(),
		"version", opts.Version.String(),
	)

	fs, err := file.New(filepath.Dir(absImage))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create file store", err)
	}
	defer func() { _ = fs.Close() }()

	imageDesc, err := fs.Add(ctx, filepath.Base(absImage), ImageMediaType, absImage)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to add image to store", err)
	}
	layers := []ociv1.Descriptor{imageDesc}

	if opts.ManifestPath != "" {
		absManifest, mErr := filepath.Abs(opts.ManifestPath)
		if mErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to resolve manifest path", mErr)
		}
		manifestDesc, addErr := fs.Add(ctx, filepath.Base(absManifest), ManifestMediaType, absManifest)
		if addErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to add stamp manifest to store", addErr)
		}
		layers = append(layers, manifestDesc)
	}

	annotations := map[string]string{
		"org.opencontainers.image.version": opts.Version.String(),
		"org.opencontainers.image.vendor":  "NVIDIA",
		"org.opencontainers.image.title":   filepath.Base(absImage),
	}
	for k, v := range opts.Annotations {
		annotations[k] = v
	}

	manifestDesc, err := oras.PackManifest(ctx, fs, oras.PackManifestVersion1_1, ArtifactType,
		oras.PackManifestOptions{
			Layers:              layers,
			ManifestAnnotations: annotations,
		})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to pack manifest", err)
	}

	if err := fs.Tag(ctx, manifestDesc, opts.Target.Tag); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to tag manifest in local store", err)
	}

	repo, err := remote.NewRepository(fmt.Sprintf("%s/%s", opts.Target.Registry, opts.Target.Repository))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to initialize remote repository", err)
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = newAuthClient(opts.PlainHTTP, opts.InsecureTLS)

	desc, err := oras.Copy(ctx, fs, opts.Target.Tag, repo, opts.Target.Tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to push artifact to registry", err)
	}

	slog.Info("firmware artifact pushed",
		"reference", opts.Target.ImageReference(),
		"digest", desc.Digest.String(),
	)

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: opts.Target.ImageReference(),
	}, nil
}

// newAuthClient builds the registry HTTP client with Docker credential
// support and optional TLS relaxation.
func newAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, _ := credentials.NewStoreFromDocker(credentials.StoreOptions{})

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		} else {
			transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		}
	}

	return &auth.Client{
		Client:     &http.Client{Transport: transport},
		Cache:      auth.NewCache(),
		Credential: credentials.Credential(credStore),
	}
}
