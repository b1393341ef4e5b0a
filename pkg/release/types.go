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

package release

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/NVIDIA/firmware-stamp/pkg/header"
	"github.com/NVIDIA/firmware-stamp/pkg/semver"
)

// APIVersion is the schema version for release index documents.
const APIVersion = "sigil.nvidia.com/v1"

// ChannelStable is the default channel. It only serves release versions;
// pre-releases are visible on other channels.
const ChannelStable = "stable"

// Release is one published firmware release.
type Release struct {
	// Version is the release's semantic version.
	Version semver.Version `json:"version" yaml:"version"`

	// Channel the release is published on (stable, beta, ...).
	// Empty means stable.
	Channel string `json:"channel,omitempty" yaml:"channel,omitempty"`

	// Date is the publication date.
	Date time.Time `json:"date,omitempty" yaml:"date,omitempty"`

	// ImageURL points at the firmware image for this release.
	ImageURL string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`

	// ImageDigest is the sha256 of the image (sha256:<hex>).
	ImageDigest string `json:"imageDigest,omitempty" yaml:"imageDigest,omitempty"`

	// Notes carries free-form release notes.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Index is a versioned document listing published releases.
type Index struct {
	header.Header `json:",inline" yaml:",inline"`

	Releases []Release `json:"releases" yaml:"releases"`
}

// Decision is the answer to an update check.
type Decision struct {
	// UpdateAvailable reports whether Latest is newer than Current.
	UpdateAvailable bool `json:"updateAvailable" yaml:"updateAvailable"`

	// Current is the version the device reported.
	Current semver.Version `json:"current" yaml:"current"`

	// Latest is the newest release on the requested channel; nil when the
	// channel has no releases.
	Latest *Release `json:"latest,omitempty" yaml:"latest,omitempty"`
}

// NormalizeChannel canonicalizes a channel name: trimmed, case-folded,
// empty mapped to stable.
func NormalizeChannel(channel string) string {
	c := cases.Fold().String(strings.TrimSpace(channel))
	if c == "" {
		return ChannelStable
	}
	return c
}

// channel returns the release's normalized channel.
func (r Release) channel() string {
	return NormalizeChannel(r.Channel)
}
