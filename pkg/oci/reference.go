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
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/NVIDIA/firmware-stamp/pkg/errors"
)

// URIScheme marks a push target as an OCI registry reference
// (e.g. "oci://ghcr.io/org/repo:tag").
const URIScheme = "oci://"

// Reference is a parsed OCI push target.
type Reference struct {
	// Registry is the registry host (e.g. "ghcr.io", "localhost:5000").
	Registry string
	// Repository is the repository path within the registry
	// (e.g. "nvidia/bmc-firmware").
	Repository string
	// Tag is the artifact tag. Empty means the target carried no tag;
	// the caller applies a default (typically the firmware version).
	Tag string
}

// ParseTarget parses an oci:// push target into its components. The
// scheme is required; anything else is rejected so a mistyped local
// path never silently becomes a registry reference.
func ParseTarget(target string) (*Reference, error) {
	raw, ok := strings.CutPrefix(target, URIScheme)
	if !ok {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"push target must use the oci:// scheme",
			map[string]any{"target": target})
	}

	named, err := reference.ParseNormalizedNamed(raw)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid OCI reference", err)
	}
	if _, isDigested := named.(reference.Digested); isDigested {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			"push target must not carry a digest, use a tag")
	}

	r := &Reference{
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
	}
	if tagged, ok := named.(reference.Tagged); ok {
		r.Tag = tagged.Tag()
	}
	return r, nil
}

// String returns the oci:// form of the reference.
func (r *Reference) String() string {
	return URIScheme + r.ImageReference()
}

// ImageReference returns the Docker-style reference without the scheme.
func (r *Reference) ImageReference() string {
	if r.Tag == "" {
		return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// WithTag returns a copy of the reference carrying the given tag.
func (r *Reference) WithTag(tag string) *Reference {
	return &Reference{
		Registry:   r.Registry,
		Repository: r.Repository,
		Tag:        tag,
	}
}
