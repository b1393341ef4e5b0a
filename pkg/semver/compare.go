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

package semver

import "strings"

// Compare returns an integer comparing two versions:
// -1 if a < b, 0 if a == b, 1 if a > b.
// Ordering is by major, minor, and patch numerically, then by the
// pre-release qualifier; the commit identifier never participates.
// Useful with slices.SortFunc for sorting versions.
func Compare(a, b Version) int {
	if a.Major < b.Major {
		return -1
	}
	if a.Major > b.Major {
		return 1
	}
	if a.Minor < b.Minor {
		return -1
	}
	if a.Minor > b.Minor {
		return 1
	}
	if a.Patch < b.Patch {
		return -1
	}
	if a.Patch > b.Patch {
		return 1
	}
	return compareExtra(a.Extra, b.Extra)
}

// Compare returns an integer comparing v to other: -1 if v < other,
// 0 if v == other, 1 if v > other. See the package-level Compare.
func (v Version) Compare(other Version) int {
	return Compare(v, other)
}

// Equal reports ordering equality: versions that differ only in Commit are
// equal. Use == for exact structural identity.
func (v Version) Equal(other Version) bool {
	return Compare(v, other) == 0
}

// IsNewer reports whether v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return Compare(v, other) > 0
}

// EqualsOrNewer reports whether v is equal to or newer than other.
func (v Version) EqualsOrNewer(other Version) bool {
	return Compare(v, other) >= 0
}

// compareExtra orders two pre-release qualifiers. Both arguments must
// already satisfy the qualifier grammar.
func compareExtra(a, b string) int {
	if a == b {
		return 0
	}
	// A release (empty qualifier) orders after any pre-release.
	if a == "" {
		return 1
	}
	if b == "" {
		return -1
	}

	for a != "" && b != "" {
		aSeg, aRest, _ := strings.Cut(a, ".")
		bSeg, bRest, _ := strings.Cut(b, ".")
		if c := compareSegment(aSeg, bSeg); c != 0 {
			return c
		}
		a, b = aRest, bRest
	}

	// Shared prefix: the qualifier with fewer segments orders first.
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// compareSegment orders two qualifier segments: numeric pairs compare by
// value, a numeric segment orders below a non-numeric one, and non-numeric
// pairs compare lexically.
func compareSegment(a, b string) int {
	aNum := isNumeric(a)
	bNum := isNumeric(b)
	switch {
	case aNum && bNum:
		return compareNumeric(a, b)
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// compareNumeric compares two all-digit segments by value without
// conversion, so digit runs longer than an int cannot overflow.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
