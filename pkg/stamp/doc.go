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

// Package stamp embeds version records into firmware image files and reads
// them back.
//
// An image reserves a zeroed window of semver.RecordSize bytes at a known
// offset; stamping writes the encoded record into that window and verifies
// the write by decoding it back. Inspection is the reverse: read the window,
// decode it, report the version.
//
// Usage:
//
//	s := stamp.New(stamp.WithOffset(0x100))
//	res, err := s.Stamp(ctx, "firmware.bin", v)
//
// Stamping a batch fans out with bounded concurrency:
//
//	results, err := s.StampAll(ctx, paths, v)
//
// The package never signs anything; digests are computed for traceability
// only.
package stamp
