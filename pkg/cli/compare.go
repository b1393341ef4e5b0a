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

// comparison is the compare command's output document.
type comparison struct {
	A        string `json:"a" yaml:"a"`
	B        string `json:"b" yaml:"b"`
	Result   int    `json:"result" yaml:"result"`
	Relation string `json:"relation" yaml:"relation"`
	Equal    bool   `json:"equal" yaml:"equal"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Print the ordering relation between two versions",
		ArgsUsage:             "A B",
		Description: `Compare two versions by precedence: major, minor, patch, then the
pre-release qualifier. A release orders after its pre-releases, and the
commit identifier never affects ordering.

The result is -1 when A is older than B, 0 when they compare equal, and
1 when A is newer than B.

Examples:
  sigil compare 1.4.0 1.4.1
  sigil compare 2.0.0-rc.1 2.0.0 --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected exactly two version arguments")
			}

			a, err := semver.Parse(cmd.Args().Get(0))
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", cmd.Args().Get(0), err)
			}
			b, err := semver.Parse(cmd.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", cmd.Args().Get(1), err)
			}

			result := semver.Compare(a, b)
			relation := "equal"
			switch {
			case result < 0:
				relation = "older"
			case result > 0:
				relation = "newer"
			}

			ser, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(ser)

			return ser.Serialize(ctx, comparison{
				A:        a.String(),
				B:        b.String(),
				Result:   result,
				Relation: relation,
				Equal:    a.Equal(b),
			})
		},
	}
}
