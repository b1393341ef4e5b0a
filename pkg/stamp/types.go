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

package stamp

import (
	"time"

	"github.com/NVIDIA/firmware-stamp/pkg/header"
	"github.com/NVIDIA/firmware-stamp/pkg/semver"
)

// APIVersion is the schema version for stamp manifests and inspections.
const APIVersion = "sigil.nvidia.com/v1"

// Result records a single successful stamp operation.
type Result struct {
	// ID uniquely identifies this stamp operation.
	ID string `json:"id" yaml:"id"`

	// Image is the path of the stamped image file.
	Image string `json:"image" yaml:"image"`

	// Size is the image size in bytes.
	Size int64 `json:"size" yaml:"size"`

	// Digest is the sha256 of the stamped image, hex-encoded with the
	// algorithm prefix (sha256:...).
	Digest string `json:"digest" yaml:"digest"`

	// Version is the version that was embedded.
	Version semver.Version `json:"version" yaml:"version"`

	// Offset is the byte offset the record was written at.
	Offset int64 `json:"offset" yaml:"offset"`

	// Record is the hex encoding of the embedded record.
	Record string `json:"record" yaml:"record"`

	// Timestamp is when the stamp completed.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// DryRun marks results produced without touching the image.
	DryRun bool `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
}

// Inspection is the decoded state of an image's version window.
type Inspection struct {
	header.Header `json:",inline" yaml:",inline"`

	// Image is the inspected image file.
	Image string `json:"image" yaml:"image"`

	// Size is the image size in bytes.
	Size int64 `json:"size" yaml:"size"`

	// Digest is the sha256 of the image.
	Digest string `json:"digest" yaml:"digest"`

	// Stamped reports whether the window holds a record. An all-zero
	// window is a valid unstamped image, not an error.
	Stamped bool `json:"stamped" yaml:"stamped"`

	// Version is the decoded version; zero value when unstamped.
	Version semver.Version `json:"version" yaml:"version"`

	// Offset is the byte offset the window was read from.
	Offset int64 `json:"offset" yaml:"offset"`

	// Record is the hex encoding of the raw window bytes.
	Record string `json:"record" yaml:"record"`
}

// Manifest is the persisted report of a stamping run.
type Manifest struct {
	header.Header `json:",inline" yaml:",inline"`

	// Results lists every image stamped during the run.
	Results []Result `json:"results" yaml:"results"`
}

// NewManifest creates a manifest enveloping the given results, stamped with
// the tool version.
func NewManifest(toolVersion string, results []Result) *Manifest {
	m := &Manifest{Results: results}
	m.Init(header.KindStampManifest, APIVersion, toolVersion)
	return m
}
