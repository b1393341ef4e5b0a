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

// Package release maintains an index of published firmware releases and
// answers the question a device in the field keeps asking: is there
// something newer than what I am running?
//
// An index is a YAML or JSON document (Kind: ReleaseIndex) listing releases
// per channel. Versions are plain semver strings in the document and order
// by semver precedence; the stable channel only ever serves releases, while
// other channels may serve pre-releases.
//
// Usage:
//
//	ix, err := release.LoadIndex("releases.yaml")
//	if err != nil { ... }
//	d := ix.Check(current, "stable")
//	if d.UpdateAvailable { ... }
package release
