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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Record layout, version 1. All multi-byte fields are little-endian, the
// byte order of the firmware targets this record is embedded into. The
// reserved word keeps the string fields 4-byte aligned.
const (
	// RecordSize is the size of the binary version record in bytes.
	RecordSize = 64

	// RecordLayoutVersion identifies the field layout of Record. Any change
	// to sizes, offsets, or byte order requires a new layout version.
	RecordLayoutVersion = 1

	recMajorOff    = 0
	recMinorOff    = 2
	recPatchOff    = 4
	recReservedOff = 6
	recExtraOff    = 8
	recCommitOff   = recExtraOff + MaxExtraLen
)

// Error types for record encoding and decoding failures
var (
	ErrBadPadding = errors.New("non-zero byte in record padding")
	ErrRecordSize = errors.New("invalid record length")
)

// Record is the fixed-size binary form of a Version.
type Record [RecordSize]byte

// EncodeError reports a version field that cannot be represented in the
// record. It wraps a sentinel reason for errors.Is checks.
type EncodeError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *EncodeError) Error() string {
	return fmt.Sprintf("encoding field %s: %v", e.Field, e.Err)
}

// Unwrap returns the sentinel reason for errors.Is and errors.As support.
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// DecodeError reports a malformed record field. It wraps a sentinel reason
// for errors.Is checks.
type DecodeError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding field %s: %v", e.Field, e.Err)
}

// Unwrap returns the sentinel reason for errors.Is and errors.As support.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeRecord encodes the version into its fixed-size binary record.
// Values that do not fit are rejected with an *EncodeError naming the
// field; nothing is ever truncated to fit.
func (v Version) EncodeRecord() (Record, error) {
	var r Record
	if v.Major < 0 || v.Major > MaxComponent {
		return r, &EncodeError{Field: "major", Err: ErrComponentRange}
	}
	if v.Minor < 0 || v.Minor > MaxComponent {
		return r, &EncodeError{Field: "minor", Err: ErrComponentRange}
	}
	if v.Patch < 0 || v.Patch > MaxComponent {
		return r, &EncodeError{Field: "patch", Err: ErrComponentRange}
	}
	if v.Extra != "" {
		if err := validateExtra(v.Extra); err != nil {
			return r, &EncodeError{Field: "extra", Err: err}
		}
	}
	if v.Commit != "" {
		if err := validateCommit(v.Commit); err != nil {
			return r, &EncodeError{Field: "commit", Err: err}
		}
	}

	binary.LittleEndian.PutUint16(r[recMajorOff:], uint16(v.Major))
	binary.LittleEndian.PutUint16(r[recMinorOff:], uint16(v.Minor))
	binary.LittleEndian.PutUint16(r[recPatchOff:], uint16(v.Patch))
	copy(r[recExtraOff:recExtraOff+MaxExtraLen], v.Extra)
	copy(r[recCommitOff:recCommitOff+MaxCommitLen], v.Commit)
	return r, nil
}

// DecodeRecord decodes a binary record back into a Version. Records with
// non-zero reserved bytes, non-zero bytes after a field terminator, or field
// text outside the version grammar are rejected with a *DecodeError naming
// the field; a partial value is never returned. Decoding the result of
// EncodeRecord yields the original value exactly.
func DecodeRecord(r Record) (Version, error) {
	for i := recReservedOff; i < recExtraOff; i++ {
		if r[i] != 0 {
			return Version{}, &DecodeError{Field: "reserved", Err: ErrBadPadding}
		}
	}

	extra, err := decodeField(r[recExtraOff : recExtraOff+MaxExtraLen])
	if err != nil {
		return Version{}, &DecodeError{Field: "extra", Err: err}
	}
	if extra != "" {
		if err := validateExtra(extra); err != nil {
			return Version{}, &DecodeError{Field: "extra", Err: err}
		}
	}

	commit, err := decodeField(r[recCommitOff : recCommitOff+MaxCommitLen])
	if err != nil {
		return Version{}, &DecodeError{Field: "commit", Err: err}
	}
	if commit != "" {
		if err := validateCommit(commit); err != nil {
			return Version{}, &DecodeError{Field: "commit", Err: err}
		}
	}

	return Version{
		Major:  int(binary.LittleEndian.Uint16(r[recMajorOff:])),
		Minor:  int(binary.LittleEndian.Uint16(r[recMinorOff:])),
		Patch:  int(binary.LittleEndian.Uint16(r[recPatchOff:])),
		Extra:  extra,
		Commit: commit,
	}, nil
}

// DecodeRecordBytes decodes a record from a byte slice, which must be
// exactly RecordSize bytes long.
func DecodeRecordBytes(b []byte) (Version, error) {
	if len(b) != RecordSize {
		return Version{}, &DecodeError{Field: "record", Err: ErrRecordSize}
	}
	var r Record
	copy(r[:], b)
	return DecodeRecord(r)
}

// decodeField extracts a NUL-padded string field, rejecting any non-zero
// byte after the first NUL.
func decodeField(field []byte) (string, error) {
	n := bytes.IndexByte(field, 0)
	if n < 0 {
		return string(field), nil
	}
	for _, b := range field[n:] {
		if b != 0 {
			return "", ErrBadPadding
		}
	}
	return string(field[:n]), nil
}

// validateExtra checks a non-empty pre-release qualifier against the
// grammar and the record field bound.
func validateExtra(extra string) error {
	if len(extra) > MaxExtraLen {
		return ErrExtraTooLong
	}
	rest := extra
	for {
		seg, tail, more := strings.Cut(rest, ".")
		if seg == "" {
			return ErrEmptyIdentifier
		}
		if !isIdentifier(seg) {
			return ErrInvalidCharacter
		}
		if !more {
			return nil
		}
		rest = tail
	}
}

// validateCommit checks a non-empty commit identifier against the grammar
// and the record field bound.
func validateCommit(commit string) error {
	if len(commit) > MaxCommitLen {
		return ErrCommitTooLong
	}
	if !isIdentifier(commit) {
		return ErrInvalidCharacter
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentChar(s[i]) {
			return false
		}
	}
	return true
}
