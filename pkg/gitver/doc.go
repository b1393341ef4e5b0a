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

// Package gitver derives a firmware version from git describe output.
//
// Build tooling typically versions firmware from the most recent tag:
//
//	d, err := gitver.FromGit(ctx, ".")
//	if err != nil { ... }
//	v, err := d.Version()
//
// The mapping from describe output to a version keeps post-tag builds
// ordered after the tag they follow:
//
//   - an exact tag keeps the tag's version, with the abbreviated hash
//     carried as the commit identifier;
//   - N commits past a release tag become the next patch with a dev.N
//     qualifier (v1.2.3 + 14 commits -> 1.2.4-dev.14);
//   - N commits past a pre-release tag append .dev.N to the existing
//     qualifier (v1.2.3-rc.1 + 5 commits -> 1.2.3-rc.1.dev.5).
//
// A dirty working tree is surfaced through the Dirty flag; it is never
// encoded into the version itself.
package gitver
