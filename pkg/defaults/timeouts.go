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

package defaults

import "time"

// Stamp timeouts for image stamping and inspection operations.
const (
	// StampTimeout is the default timeout for stamping a single image.
	// Stamping should respect parent context deadlines when shorter.
	StampTimeout = 10 * time.Second

	// StampBatchTimeout is the timeout for stamping a whole image batch.
	StampBatchTimeout = 5 * time.Minute

	// StampConcurrency bounds the number of images stamped in parallel.
	StampConcurrency = 4
)

// Git timeouts for version discovery.
const (
	// GitDescribeTimeout is the timeout for a git describe invocation.
	// It is a local subprocess; anything slower indicates a wedged repo.
	GitDescribeTimeout = 5 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// ReleaseHandlerTimeout is the timeout for release query requests.
	ReleaseHandlerTimeout = 15 * time.Second

	// ReleaseLookupTimeout is the internal timeout for release lookups.
	// Should be less than ReleaseHandlerTimeout to allow error handling.
	ReleaseLookupTimeout = 10 * time.Second

	// DecodeHandlerTimeout is the timeout for record decode requests.
	DecodeHandlerTimeout = 5 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Registry timeouts for OCI operations.
const (
	// RegistryPushTimeout is the timeout for pushing an artifact.
	// Firmware bundles can be large; pushes get minutes, not seconds.
	RegistryPushTimeout = 5 * time.Minute

	// RegistryResolveTimeout is the timeout for resolving a reference.
	RegistryResolveTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIStampTimeout is the default timeout for a stamp command run.
	CLIStampTimeout = 5 * time.Minute

	// CLIReleaseTimeout is the default timeout for release index queries.
	CLIReleaseTimeout = 30 * time.Second
)
