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

package gitver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NVIDIA/firmware-stamp/pkg/semver"
)

// Describe is the parsed form of git describe --tags --long output.
type Describe struct {
	// Tag is the version parsed from the most recent tag.
	Tag semver.Version

	// Distance is the number of commits since the tag.
	Distance int

	// CommitID is the abbreviated object hash, with the "g" prefix
	// git describe uses kept intact so the value round-trips.
	CommitID string

	// Dirty reports uncommitted changes in the working tree.
	Dirty bool
}

// ParseDescribe parses git describe --tags output, with or without --long:
//
//	v1.2.3
//	v1.2.3-14-g2414721
//	v1.2.3-rc.1-0-g2414721-dirty
//
// Surrounding whitespace (git appends a newline) is trimmed. Because tag
// names may themselves contain hyphens, the distance and hash are matched
// from the right; whatever remains must parse as a version.
func ParseDescribe(s string) (Describe, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Describe{}, fmt.Errorf("empty describe output")
	}

	var d Describe

	if rest, ok := strings.CutSuffix(raw, "-dirty"); ok {
		d.Dirty = true
		raw = rest
	}

	tag := raw
	if distance, hash, rest, ok := cutDescribeSuffix(raw); ok {
		d.Distance = distance
		d.CommitID = hash
		tag = rest
	}

	v, err := semver.Parse(tag)
	if err != nil {
		return Describe{}, fmt.Errorf("tag %q is not a version: %w", tag, err)
	}
	if v.Commit != "" {
		return Describe{}, fmt.Errorf("tag %q carries build metadata", tag)
	}
	d.Tag = v

	return d, nil
}

// Version folds the describe result into a single version value. Builds at
// an exact tag keep the tag's version; builds past a tag order after it via
// a dev.N qualifier (see the package documentation for the mapping). The
// commit hash is carried as the version's commit identifier.
func (d Describe) Version() (semver.Version, error) {
	v := d.Tag
	v.Commit = d.CommitID

	if d.Distance > 0 {
		n := strconv.Itoa(d.Distance)
		if v.Extra == "" {
			v.Patch++
			v.Extra = "dev." + n
		} else {
			v.Extra += ".dev." + n
		}
	}

	if err := v.Validate(); err != nil {
		return semver.Version{}, fmt.Errorf("derived version %q does not encode: %w", v, err)
	}
	return v, nil
}

// cutDescribeSuffix matches a trailing -N-g<hash> produced by --long,
// scanning from the right so hyphens inside the tag name survive.
func cutDescribeSuffix(s string) (distance int, hash, rest string, ok bool) {
	hashIdx := strings.LastIndex(s, "-g")
	if hashIdx < 0 {
		return 0, "", "", false
	}
	hash = s[hashIdx+1:] // keep the g prefix
	if len(hash) < 2 || !isHex(hash[1:]) {
		return 0, "", "", false
	}

	distIdx := strings.LastIndex(s[:hashIdx], "-")
	if distIdx < 0 {
		return 0, "", "", false
	}
	n, err := strconv.Atoi(s[distIdx+1 : hashIdx])
	if err != nil || n < 0 {
		return 0, "", "", false
	}

	return n, hash, s[:distIdx], true
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'f' {
			continue
		}
		return false
	}
	return true
}
