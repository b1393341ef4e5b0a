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

// Package defaults provides centralized configuration constants for the firmware-stamp toolchain.
//
// This package defines timeout values and other configuration defaults used
// across the codebase. Centralizing these values ensures consistency and
// makes tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Stamp timeouts: For image stamping and inspection operations
//   - Git timeouts: For git describe invocations
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - Registry timeouts: For OCI registry operations
//   - HTTP client timeouts: For outbound HTTP requests
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/firmware-stamp/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.StampTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// When choosing timeout values:
//
//   - Stamping: 10s per image, 5m for a whole batch
//   - Git describe: 5s, it is a local subprocess
//   - HTTP handlers: 15s for release queries
//   - Registry pushes: 5m, artifacts can be large
//   - Server shutdown: 30s for graceful shutdown
package defaults
