// Package api provides the HTTP API layer for the sigil release service.
//
// This package is a thin wrapper around the reusable pkg/server package,
// configuring it with the release query and record decode routes. The
// server answers update checks for devices reporting their running
// firmware version and decodes raw version records for debugging.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/firmware-stamp/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET  /v1/releases        - list releases, optionally by channel
//   - GET  /v1/releases/latest - newest release on a channel
//   - GET  /v1/releases/check  - update decision for a device version
//   - POST /v1/records/decode  - decode a raw 64-byte version record
//
// System endpoints (no rate limiting):
//   - GET /health  - liveness probe
//   - GET /ready   - readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: logging level (debug, info, warn, error)
//   - RELEASE_INDEX: path or URL of the release index document
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/firmware-stamp/pkg/api.version=1.0.0'"
package api
