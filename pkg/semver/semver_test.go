package semver

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Version
		expectedError bool
	}{
		{
			name:  "release",
			input: "1.2.3",
			expected: Version{
				Major: 1,
				Minor: 2,
				Patch: 3,
			},
			expectedError: false,
		},
		{
			name:  "release with v prefix",
			input: "v1.2.3",
			expected: Version{
				Major: 1,
				Minor: 2,
				Patch: 3,
			},
			expectedError: false,
		},
		{
			name:  "zero version",
			input: "0.0.0",
			expected: Version{
				Major: 0,
				Minor: 0,
				Patch: 0,
			},
			expectedError: false,
		},
		{
			name:  "max components",
			input: "65535.65535.65535",
			expected: Version{
				Major: 65535,
				Minor: 65535,
				Patch: 65535,
			},
			expectedError: false,
		},
		{
			name:  "pre-release",
			input: "1.0.0-alpha",
			expected: Version{
				Major: 1,
				Minor: 0,
				Patch: 0,
				Extra: "alpha",
			},
			expectedError: false,
		},
		{
			name:  "pre-release with numeric segment",
			input: "1.0.0-alpha.1",
			expected: Version{
				Major: 1,
				Minor: 0,
				Patch: 0,
				Extra: "alpha.1",
			},
			expectedError: false,
		},
		{
			name:  "pre-release with hyphenated identifier",
			input: "0.9.8-760-g58bf98c",
			expected: Version{
				Major: 0,
				Minor: 9,
				Patch: 8,
				Extra: "760-g58bf98c",
			},
			expectedError: false,
		},
		{
			name:  "commit only",
			input: "1.2.3+g1e6f2a9",
			expected: Version{
				Major:  1,
				Minor:  2,
				Patch:  3,
				Commit: "g1e6f2a9",
			},
			expectedError: false,
		},
		{
			name:  "commit with hyphen",
			input: "1.2.3+build-42",
			expected: Version{
				Major:  1,
				Minor:  2,
				Patch:  3,
				Commit: "build-42",
			},
			expectedError: false,
		},
		{
			name:  "pre-release and commit",
			input: "v2.0.0-rc.1+g1e6f2a9",
			expected: Version{
				Major:  2,
				Minor:  0,
				Patch:  0,
				Extra:  "rc.1",
				Commit: "g1e6f2a9",
			},
			expectedError: false,
		},
		{
			name:  "leading zeros allowed inside qualifier",
			input: "1.2.3-007",
			expected: Version{
				Major: 1,
				Minor: 2,
				Patch: 3,
				Extra: "007",
			},
			expectedError: false,
		},
		{
			name:          "invalid - empty string",
			input:         "",
			expectedError: true,
		},
		{
			name:          "invalid - major only",
			input:         "1",
			expectedError: true,
		},
		{
			name:          "invalid - major.minor only",
			input:         "1.2",
			expectedError: true,
		},
		{
			name:          "invalid - four components",
			input:         "1.2.3.4",
			expectedError: true,
		},
		{
			name:          "invalid - non-numeric patch",
			input:         "1.2.x",
			expectedError: true,
		},
		{
			name:          "invalid - leading zero in major",
			input:         "01.2.3",
			expectedError: true,
		},
		{
			name:          "invalid - leading zero in minor",
			input:         "1.02.3",
			expectedError: true,
		},
		{
			name:          "invalid - component out of range",
			input:         "65536.0.0",
			expectedError: true,
		},
		{
			name:          "invalid - huge component",
			input:         "99999999999999999999.0.0",
			expectedError: true,
		},
		{
			name:          "invalid - leading whitespace",
			input:         " 1.2.3",
			expectedError: true,
		},
		{
			name:          "invalid - trailing whitespace",
			input:         "1.2.3 ",
			expectedError: true,
		},
		{
			name:          "invalid - empty qualifier",
			input:         "1.2.3-",
			expectedError: true,
		},
		{
			name:          "invalid - empty qualifier segment",
			input:         "1.2.3-a..b",
			expectedError: true,
		},
		{
			name:          "invalid - bad character after qualifier",
			input:         "1.2.3-rc!",
			expectedError: true,
		},
		{
			name:          "invalid - empty commit",
			input:         "1.2.3+",
			expectedError: true,
		},
		{
			name:          "invalid - dotted commit",
			input:         "1.2.3+abc.def",
			expectedError: true,
		},
		{
			name:          "invalid - negative major",
			input:         "-1.2.3",
			expectedError: true,
		},
		{
			name:          "invalid - double v prefix",
			input:         "vv1.2.3",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input)
			if tt.expectedError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if result != tt.expected {
				t.Errorf("got %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
		expectedPos int
	}{
		{
			name:        "empty string",
			input:       "",
			expectedErr: ErrEmptyVersion,
			expectedPos: 0,
		},
		{
			name:        "missing minor and patch",
			input:       "1",
			expectedErr: ErrMissingComponent,
			expectedPos: 1,
		},
		{
			name:        "missing patch",
			input:       "1.2",
			expectedErr: ErrMissingComponent,
			expectedPos: 3,
		},
		{
			name:        "bare v",
			input:       "v",
			expectedErr: ErrMissingComponent,
			expectedPos: 1,
		},
		{
			name:        "non-numeric patch",
			input:       "1.2.x",
			expectedErr: ErrNonNumeric,
			expectedPos: 4,
		},
		{
			name:        "empty middle component",
			input:       "1..3",
			expectedErr: ErrNonNumeric,
			expectedPos: 2,
		},
		{
			name:        "leading zero",
			input:       "1.02.3",
			expectedErr: ErrLeadingZero,
			expectedPos: 2,
		},
		{
			name:        "component out of range",
			input:       "0.0.65536",
			expectedErr: ErrComponentRange,
			expectedPos: 4,
		},
		{
			name:        "fourth component",
			input:       "1.2.3.4",
			expectedErr: ErrInvalidCharacter,
			expectedPos: 5,
		},
		{
			name:        "empty qualifier",
			input:       "1.2.3-",
			expectedErr: ErrEmptyIdentifier,
			expectedPos: 6,
		},
		{
			name:        "empty qualifier segment",
			input:       "1.2.3-a..b",
			expectedErr: ErrEmptyIdentifier,
			expectedPos: 8,
		},
		{
			name:        "qualifier too long",
			input:       "1.2.3-" + strings.Repeat("a", 33),
			expectedErr: ErrExtraTooLong,
			expectedPos: 6,
		},
		{
			name:        "empty commit",
			input:       "1.2.3+",
			expectedErr: ErrEmptyIdentifier,
			expectedPos: 6,
		},
		{
			name:        "commit too long",
			input:       "1.2.3+" + strings.Repeat("c", 25),
			expectedErr: ErrCommitTooLong,
			expectedPos: 6,
		},
		{
			name:        "dotted commit",
			input:       "1.2.3+abc.def",
			expectedErr: ErrInvalidCharacter,
			expectedPos: 9,
		},
		{
			name:        "trailing garbage",
			input:       "1.2.3 ",
			expectedErr: ErrInvalidCharacter,
			expectedPos: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Pos != tt.expectedPos {
				t.Errorf("Pos: got %d, want %d", perr.Pos, tt.expectedPos)
			}
			if perr.Input != tt.input {
				t.Errorf("Input: got %q, want %q", perr.Input, tt.input)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  Version
		expected string
	}{
		{
			name:     "release",
			version:  Version{Major: 1, Minor: 2, Patch: 3},
			expected: "1.2.3",
		},
		{
			name:     "zero value",
			version:  Version{},
			expected: "0.0.0",
		},
		{
			name:     "pre-release",
			version:  Version{Major: 1, Minor: 0, Patch: 0, Extra: "rc.1"},
			expected: "1.0.0-rc.1",
		},
		{
			name:     "commit only",
			version:  Version{Major: 1, Minor: 2, Patch: 3, Commit: "g1e6f2a9"},
			expected: "1.2.3+g1e6f2a9",
		},
		{
			name:     "pre-release and commit",
			version:  Version{Major: 2, Minor: 0, Patch: 0, Extra: "rc.1", Commit: "g1e6f2a9"},
			expected: "2.0.0-rc.1+g1e6f2a9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.version.String()
			if result != tt.expected {
				t.Errorf("got %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	tests := []string{
		"0.0.0",
		"1.2.3",
		"v1.2.3",
		"65535.65535.65535",
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"0.9.8-760-g58bf98c",
		"1.2.3+g1e6f2a9",
		"2.0.0-rc.1+g1e6f2a9",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			v, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			v2, err := Parse(v.String())
			if err != nil {
				t.Fatalf("Parse round-trip failed: %v", err)
			}
			if v != v2 {
				t.Errorf("round-trip mismatch: %+v != %+v", v, v2)
			}
		})
	}
}

func TestNew(t *testing.T) {
	v := New(1, 2, 3)
	if v.Major != 1 || v.Minor != 2 || v.Patch != 3 {
		t.Errorf("New(1,2,3) = %+v, want Major:1 Minor:2 Patch:3", v)
	}
	if v.Extra != "" || v.Commit != "" {
		t.Errorf("New(1,2,3) carries qualifier or commit: %+v", v)
	}
	if v.IsPreRelease() {
		t.Error("New version reported as pre-release")
	}
}

func TestMustParse(t *testing.T) {
	// Should not panic on valid input
	v := MustParse("v1.2.3-rc.1")
	if v.Major != 1 || v.Minor != 2 || v.Patch != 3 || v.Extra != "rc.1" {
		t.Errorf("MustParse failed: got %+v", v)
	}

	// Should panic on invalid input
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	MustParse("invalid")
}

func TestIsZero(t *testing.T) {
	if !(Version{}).IsZero() {
		t.Error("zero value not reported as zero")
	}
	if MustParse("0.0.0-rc.1").IsZero() {
		t.Error("qualified zero version reported as zero")
	}
	if New(0, 0, 1).IsZero() {
		t.Error("0.0.1 reported as zero")
	}
}

func TestIsPreRelease(t *testing.T) {
	if !MustParse("1.0.0-rc.1").IsPreRelease() {
		t.Error("1.0.0-rc.1 not reported as pre-release")
	}
	if MustParse("1.0.0").IsPreRelease() {
		t.Error("1.0.0 reported as pre-release")
	}
	if MustParse("1.0.0+g1e6f2a9").IsPreRelease() {
		t.Error("commit identifier treated as pre-release")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		version     Version
		expectedErr error
	}{
		{
			name:    "valid release",
			version: Version{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:    "valid with qualifier and commit",
			version: Version{Major: 1, Minor: 2, Patch: 3, Extra: "rc.1", Commit: "g1e6f2a9"},
		},
		{
			name:        "negative major",
			version:     Version{Major: -1},
			expectedErr: ErrComponentRange,
		},
		{
			name:        "major above record range",
			version:     Version{Major: 65536},
			expectedErr: ErrComponentRange,
		},
		{
			name:        "qualifier too long",
			version:     Version{Extra: strings.Repeat("a", 33)},
			expectedErr: ErrExtraTooLong,
		},
		{
			name:        "qualifier with empty segment",
			version:     Version{Extra: "a..b"},
			expectedErr: ErrEmptyIdentifier,
		},
		{
			name:        "qualifier with invalid character",
			version:     Version{Extra: "rc_1"},
			expectedErr: ErrInvalidCharacter,
		},
		{
			name:        "commit too long",
			version:     Version{Commit: strings.Repeat("c", 25)},
			expectedErr: ErrCommitTooLong,
		},
		{
			name:        "dotted commit",
			version:     Version{Commit: "a.b"},
			expectedErr: ErrInvalidCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.version.Validate()
			if tt.expectedErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if !tt.version.IsValid() {
					t.Error("IsValid returned false for valid version")
				}
				return
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
			if tt.version.IsValid() {
				t.Error("IsValid returned true for invalid version")
			}
		})
	}
}

func TestMarshalText(t *testing.T) {
	v := MustParse("2.0.0-rc.1+g1e6f2a9")

	text, err := v.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "2.0.0-rc.1+g1e6f2a9" {
		t.Errorf("got %q, want %q", text, "2.0.0-rc.1+g1e6f2a9")
	}

	var parsed Version
	if err := parsed.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if parsed != v {
		t.Errorf("round-trip mismatch: %+v != %+v", parsed, v)
	}

	var bad Version
	if err := bad.UnmarshalText([]byte("not-a-version")); err == nil {
		t.Error("UnmarshalText accepted invalid input")
	}
}

func TestJSONEmbedding(t *testing.T) {
	type image struct {
		Name    string  `json:"name"`
		Version Version `json:"version"`
	}

	in := image{Name: "bmc", Version: MustParse("1.4.0-rc.2+g58bf98c")}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := `{"name":"bmc","version":"1.4.0-rc.2+g58bf98c"}`
	if string(data) != expected {
		t.Errorf("got %s, want %s", data, expected)
	}

	var out image
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out.Version != in.Version {
		t.Errorf("round-trip mismatch: %+v != %+v", out.Version, in.Version)
	}
}

func TestYAMLEmbedding(t *testing.T) {
	type image struct {
		Name    string  `yaml:"name"`
		Version Version `yaml:"version"`
	}

	in := image{Name: "bmc", Version: MustParse("1.4.0-rc.2+g58bf98c")}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := "name: bmc\nversion: 1.4.0-rc.2+g58bf98c\n"
	if string(data) != expected {
		t.Errorf("got %q, want %q", data, expected)
	}

	var out image
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out.Version != in.Version {
		t.Errorf("round-trip mismatch: %+v != %+v", out.Version, in.Version)
	}

	var bad image
	if err := yaml.Unmarshal([]byte("version: nope\n"), &bad); err == nil {
		t.Error("Unmarshal accepted invalid version")
	}
}

// ExampleParse demonstrates parsing a full version string
func ExampleParse() {
	v, _ := Parse("v2.0.0-rc.1+g1e6f2a9")
	fmt.Println(v.Major, v.Minor, v.Patch)
	fmt.Println(v.Extra)
	fmt.Println(v.Commit)
	fmt.Println(v.String())
	// Output:
	// 2 0 0
	// rc.1
	// g1e6f2a9
	// 2.0.0-rc.1+g1e6f2a9
}

// ExampleVersion_Compare demonstrates pre-release ordering
func ExampleVersion_Compare() {
	rc := MustParse("1.0.0-rc.1")
	release := MustParse("1.0.0")

	fmt.Println(rc.Compare(release))
	fmt.Println(release.Compare(rc))
	fmt.Println(MustParse("1.0.0+abc").Compare(MustParse("1.0.0+def")))
	// Output:
	// -1
	// 1
	// 0
}
