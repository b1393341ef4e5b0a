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

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Value bounds imposed by the binary record. Parse enforces them, so every
// parsed value is encodable; values built directly from fields are checked
// by Validate and EncodeRecord.
const (
	// MaxComponent is the largest value of a numeric version component.
	MaxComponent = 65535

	// MaxExtraLen is the byte length of the pre-release qualifier field.
	MaxExtraLen = 32

	// MaxCommitLen is the byte length of the commit identifier field.
	MaxCommitLen = 24
)

// Version represents a semantic version: MAJOR.MINOR.PATCH with an optional
// pre-release qualifier and an optional commit identifier. The zero value is
// "0.0.0". Apart from UnmarshalText, all methods use value receivers and
// never mutate.
type Version struct {
	Major int
	Minor int
	Patch int

	// Extra is the pre-release qualifier ("rc.1" in "1.2.3-rc.1").
	// Empty means a release, which orders after every pre-release.
	Extra string

	// Commit is the build identifier ("g1e6f2a" in "1.2.3+g1e6f2a").
	// It is preserved verbatim and excluded from ordering.
	Commit string
}

// New creates a release Version with the given numeric components.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// String renders the version as MAJOR.MINOR.PATCH[-EXTRA][+COMMIT], without
// a "v" prefix. Parsing the result yields the original value back.
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(len("65535.65535.65535") + len(v.Extra) + len(v.Commit) + 2)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if v.Extra != "" {
		sb.WriteByte('-')
		sb.WriteString(v.Extra)
	}
	if v.Commit != "" {
		sb.WriteByte('+')
		sb.WriteString(v.Commit)
	}
	return sb.String()
}

// IsZero reports whether v is the zero value "0.0.0" with no qualifier and
// no commit.
func (v Version) IsZero() bool {
	return v == Version{}
}

// IsPreRelease reports whether v carries a pre-release qualifier.
func (v Version) IsPreRelease() bool {
	return v.Extra != ""
}

// Validate reports whether the value satisfies the version grammar and the
// record field bounds. Valid means encodable: Validate fails exactly when
// EncodeRecord would. Parsed values always validate; check values built
// directly from fields before encoding or publishing them.
func (v Version) Validate() error {
	_, err := v.EncodeRecord()
	return err
}

// IsValid reports whether Validate returns nil.
func (v Version) IsValid() bool {
	return v.Validate() == nil
}

// MarshalText implements encoding.TextMarshaler. The value marshals as its
// String form, so it embeds as a plain string in JSON documents.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler. yaml.v3 ignores TextMarshaler, so
// the string form is spelled out for YAML documents too.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via Parse.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}
