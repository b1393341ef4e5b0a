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

// Package semver implements the canonical semantic version value used across
// the firmware-stamp toolchain: parsing, total ordering, and a fixed-size
// binary record suitable for embedding in firmware images.
//
// # Overview
//
// A Version is an immutable value of the form:
//
//	MAJOR.MINOR.PATCH[-EXTRA][+COMMIT]
//
//   - MAJOR, MINOR, PATCH are decimal numbers without leading zeros,
//     each in the range 0 through 65535.
//   - EXTRA is an optional pre-release qualifier: one or more non-empty
//     identifiers of [0-9A-Za-z-] joined by dots (e.g. "rc.1", "dev.14").
//   - COMMIT is an optional build identifier: a single non-empty identifier
//     of [0-9A-Za-z-] (e.g. "g1e6f2a9"). It is carried through parsing,
//     formatting, and encoding but never participates in ordering.
//
// A leading "v" is accepted on input and never produced on output.
//
// The package is purely functional: no I/O, no logging, no global state.
// Values are safe to copy and to share across goroutines.
//
// # Ordering
//
// Compare orders versions by major, then minor, then patch, numerically.
// Equal cores are ordered by the pre-release qualifier:
//
//   - An empty qualifier (a release) orders after any non-empty one.
//   - Non-empty qualifiers compare dot-segment by dot-segment: two numeric
//     segments compare numerically, a numeric segment orders below a
//     non-numeric one, and two non-numeric segments compare lexically.
//   - When one qualifier is a prefix of the other, the shorter orders first.
//
// This yields the usual pre-release chain:
//
//	1.0.0-alpha < 1.0.0-alpha.1 < 1.0.0-beta.2 < 1.0.0-beta.11
//	            < 1.0.0-rc.1 < 1.0.0
//
// Versions that differ only in Commit compare as equal.
//
// # Binary Record
//
// EncodeRecord produces the 64-byte record embedded in firmware images
// (layout version 1, little-endian):
//
//	offset  size  field
//	     0     2  major (uint16)
//	     2     2  minor (uint16)
//	     4     2  patch (uint16)
//	     6     2  reserved, must be zero
//	     8    32  extra, NUL-padded
//	    40    24  commit, NUL-padded
//
// Encoding rejects values that do not fit; it never truncates. Decoding
// rejects records with non-zero padding, non-zero reserved bytes, or field
// text outside the grammar; it never returns a partial value. For every
// valid value v, DecodeRecord(EncodeRecord(v)) returns v exactly, Commit
// included.
//
// # Error Handling
//
// Failures carry a typed error naming the position or field along with a
// sentinel reason usable with errors.Is:
//
//	v, err := semver.Parse("1.2.x")
//	if errors.Is(err, semver.ErrNonNumeric) {
//	    var perr *semver.ParseError
//	    errors.As(err, &perr) // perr.Pos == 4
//	}
//
// For constant initialization use MustParse, which panics on error:
//
//	var MinSupported = semver.MustParse("2.0.0")
package semver
