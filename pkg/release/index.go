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
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/NVIDIA/firmware-stamp/pkg/errors"
	"github.com/NVIDIA/firmware-stamp/pkg/header"
	"github.com/NVIDIA/firmware-stamp/pkg/semver"
	"github.com/NVIDIA/firmware-stamp/pkg/serializer"
)

// LoadIndex reads a release index from a local path or HTTP/HTTPS URL,
// validates it, and returns it sorted oldest to newest.
func LoadIndex(source string) (*Index, error) {
	ix, err := serializer.FromFile[Index](source)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNotFound, "failed to load release index", err)
	}
	if err := ix.Validate(); err != nil {
		return nil, err
	}
	ix.Sort()
	return ix, nil
}

// NewIndex creates a validated, sorted index from releases, enveloped with
// the tool version.
func NewIndex(toolVersion string, releases []Release) (*Index, error) {
	ix := &Index{Releases: releases}
	ix.Init(header.KindReleaseIndex, APIVersion, toolVersion)
	if err := ix.Validate(); err != nil {
		return nil, err
	}
	ix.Sort()
	return ix, nil
}

// Validate checks the document envelope and every release: versions must be
// encodable, digests well-formed, and no channel may list two releases that
// compare equal (they would make Latest ambiguous).
func (ix *Index) Validate() error {
	if ix.Kind != "" && ix.Kind != header.KindReleaseIndex {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"document is not a release index",
			map[string]any{"kind": ix.Kind.String()})
	}

	for i, r := range ix.Releases {
		if err := r.Version.Validate(); err != nil {
			return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				"release has an invalid version", err,
				map[string]any{"index": i, "version": r.Version.String()})
		}
		if err := validateDigest(r.ImageDigest); err != nil {
			return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				"release has a malformed image digest", err,
				map[string]any{"index": i, "version": r.Version.String()})
		}
		for _, prev := range ix.Releases[:i] {
			if prev.channel() == r.channel() && prev.Version.Equal(r.Version) {
				return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
					"channel lists two releases with equal versions",
					map[string]any{"channel": r.channel(), "version": r.Version.String()})
			}
		}
	}
	return nil
}

// Sort orders releases oldest to newest, pre-releases before the releases
// they precede.
func (ix *Index) Sort() {
	slices.SortStableFunc(ix.Releases, func(a, b Release) int {
		return semver.Compare(a.Version, b.Version)
	})
}

// OnChannel returns the releases visible on a channel, oldest to newest.
// The stable channel hides pre-releases; other channels see their own
// releases plus everything stable serves.
func (ix *Index) OnChannel(channel string) []Release {
	c := NormalizeChannel(channel)

	var out []Release
	for _, r := range ix.Releases {
		rc := r.channel()
		if rc != c && rc != ChannelStable {
			continue
		}
		if c == ChannelStable && r.Version.IsPreRelease() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Latest returns the newest release visible on a channel, or nil when the
// channel serves nothing.
func (ix *Index) Latest(channel string) *Release {
	visible := ix.OnChannel(channel)
	if len(visible) == 0 {
		return nil
	}
	latest := visible[len(visible)-1]
	return &latest
}

// Check decides whether a device running current should update on the given
// channel.
func (ix *Index) Check(current semver.Version, channel string) Decision {
	d := Decision{Current: current}
	if latest := ix.Latest(channel); latest != nil {
		d.Latest = latest
		d.UpdateAvailable = latest.Version.IsNewer(current)
	}
	return d
}

// validateDigest accepts an empty digest or sha256:<64 hex chars>.
func validateDigest(digest string) error {
	if digest == "" {
		return nil
	}
	rest, ok := strings.CutPrefix(digest, "sha256:")
	if !ok {
		return fmt.Errorf("digest must use the sha256: prefix")
	}
	if len(rest) != 64 {
		return fmt.Errorf("sha256 digest must be 64 hex characters, got %d", len(rest))
	}
	if _, err := hex.DecodeString(rest); err != nil {
		return fmt.Errorf("digest is not hex: %w", err)
	}
	return nil
}
