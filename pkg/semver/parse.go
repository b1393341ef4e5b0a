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
	"errors"
	"fmt"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion     = errors.New("version string is empty")
	ErrMissingComponent = errors.New("version must have major, minor, and patch components")
	ErrNonNumeric       = errors.New("version component is not numeric")
	ErrLeadingZero      = errors.New("version component has a leading zero")
	ErrComponentRange   = errors.New("version component out of range")
	ErrEmptyIdentifier  = errors.New("identifier is empty")
	ErrInvalidCharacter = errors.New("invalid character in version")
	ErrExtraTooLong     = errors.New("pre-release qualifier too long")
	ErrCommitTooLong    = errors.New("commit identifier too long")
)

// ParseError reports where and why parsing a version string failed.
// It wraps one of the Err sentinel values for errors.Is checks.
type ParseError struct {
	Input string
	Pos   int
	Err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q at %d: %v", e.Input, e.Pos, e.Err)
}

// Unwrap returns the sentinel reason for errors.Is and errors.As support.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses a version string of the form MAJOR.MINOR.PATCH[-EXTRA][+COMMIT].
// A leading "v" is accepted and stripped. Numeric components must not have
// leading zeros and must fit the binary record (0 through 65535). EXTRA is a
// dot-separated list of non-empty [0-9A-Za-z-] identifiers; COMMIT is a
// single such identifier. Whitespace is not trimmed. Every value returned by
// Parse satisfies Validate and therefore encodes.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, &ParseError{Input: s, Pos: 0, Err: ErrEmptyVersion}
	}

	pos := 0
	if s[pos] == 'v' {
		pos++
	}

	var v Version
	for i := 0; i < 3; i++ {
		if i > 0 {
			if pos >= len(s) || s[pos] != '.' {
				return Version{}, &ParseError{Input: s, Pos: pos, Err: ErrMissingComponent}
			}
			pos++
		}
		num, next, err := parseComponent(s, pos)
		if err != nil {
			if pos == len(s) {
				err = ErrMissingComponent
			}
			return Version{}, &ParseError{Input: s, Pos: next, Err: err}
		}
		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
		pos = next
	}

	if pos < len(s) && s[pos] == '-' {
		extra, next, err := parseExtra(s, pos+1)
		if err != nil {
			return Version{}, &ParseError{Input: s, Pos: next, Err: err}
		}
		v.Extra = extra
		pos = next
	}

	if pos < len(s) && s[pos] == '+' {
		commit, next, err := parseIdentifier(s, pos+1)
		if err != nil {
			return Version{}, &ParseError{Input: s, Pos: next, Err: err}
		}
		if len(commit) > MaxCommitLen {
			return Version{}, &ParseError{Input: s, Pos: pos + 1, Err: ErrCommitTooLong}
		}
		v.Commit = commit
		pos = next
	}

	if pos != len(s) {
		return Version{}, &ParseError{Input: s, Pos: pos, Err: ErrInvalidCharacter}
	}
	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Use it for hardcoded strings and test data only; for user input or
// runtime data, use Parse and handle errors explicitly.
//
// Example usage:
//
//	var minSupported = semver.MustParse("2.0.0") // OK in var blocks or tests
//	v, err := semver.Parse(userInput)            // Required for runtime data
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// parseComponent scans one numeric component starting at pos. On success the
// second return is the position after the last digit; on failure it is the
// position of the offending byte.
func parseComponent(s string, pos int) (int, int, error) {
	start := pos
	n := 0
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		n = n*10 + int(s[pos]-'0')
		if n > MaxComponent {
			return 0, start, ErrComponentRange
		}
		pos++
	}
	if pos == start {
		return 0, start, ErrNonNumeric
	}
	if s[start] == '0' && pos-start > 1 {
		return 0, start, ErrLeadingZero
	}
	return n, pos, nil
}

// parseExtra scans the dot-separated qualifier starting at pos (just past
// the '-'). The scan stops at the first byte that is neither an identifier
// character nor a dot; the caller decides whether that byte is valid there.
func parseExtra(s string, pos int) (string, int, error) {
	start := pos
	for {
		idStart := pos
		for pos < len(s) && isIdentChar(s[pos]) {
			pos++
		}
		if pos == idStart {
			return "", idStart, ErrEmptyIdentifier
		}
		if pos < len(s) && s[pos] == '.' {
			pos++
			continue
		}
		break
	}
	if pos-start > MaxExtraLen {
		return "", start, ErrExtraTooLong
	}
	return s[start:pos], pos, nil
}

// parseIdentifier scans a single identifier starting at pos (just past
// the '+').
func parseIdentifier(s string, pos int) (string, int, error) {
	start := pos
	for pos < len(s) && isIdentChar(s[pos]) {
		pos++
	}
	if pos == start {
		return "", start, ErrEmptyIdentifier
	}
	return s[start:pos], pos, nil
}

func isIdentChar(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c == '-'
}
