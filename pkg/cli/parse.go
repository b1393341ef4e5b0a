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

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/firmware-stamp/pkg/semver"
)

// parsedVersion is the parse command's output document.
type parsedVersion struct {
	Input      string `json:"input" yaml:"input"`
	Version    string `json:"version" yaml:"version"`
	Major      int    `json:"major" yaml:"major"`
	Minor      int    `json:"minor" yaml:"minor"`
	Patch      int    `json:"patch" yaml:"patch"`
	Extra      string `json:"extra,omitempty" yaml:"extra,omitempty"`
	Commit     string `json:"commit,omitempty" yaml:"commit,omitempty"`
	PreRelease bool   `json:"preRelease" yaml:"preRelease"`
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse a version string and print its fields",
		ArgsUsage:             "VERSION",
		Description: `Parse a semantic version string of the form MAJOR.MINOR.PATCH[-EXTRA][+COMMIT]
(a leading "v" is accepted) and print its components. Every parsed version
fits the fixed binary record; out-of-range components are rejected.

Examples:
  sigil parse 1.4.0
  sigil parse v2.0.0-rc.1+g1e6f2a --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one version argument")
			}
			input := cmd.Args().First()

			v, err := semver.Parse(input)
			if err != nil {
				return err
			}

			ser, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(ser)

			return ser.Serialize(ctx, parsedVersion{
				Input:      input,
				Version:    v.String(),
				Major:      v.Major,
				Minor:      v.Minor,
				Patch:      v.Patch,
				Extra:      v.Extra,
				Commit:     v.Commit,
				PreRelease: v.IsPreRelease(),
			})
		},
	}
}
