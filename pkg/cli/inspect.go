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

	"github.com/NVIDIA/firmware-stamp/pkg/stamp"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "inspect",
		EnableShellCompletion: true,
		Usage:                 "Read the version record back out of an image",
		ArgsUsage:             "IMAGE",
		Description: `Read the version window of a firmware image and report its state: the
decoded version for a stamped image, or stamped: false when the window is
still zeroed. A window holding bytes that do not decode is an error.

Examples:
  sigil inspect firmware.bin --offset 4096
  sigil inspect firmware.bin --format json`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "offset",
				Usage:   "Byte offset of the version window in the image",
				Sources: cli.EnvVars("SIGIL_OFFSET"),
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one image argument")
			}

			s := stamp.New(stamp.WithOffset(int64(cmd.Int("offset"))))

			inspection, err := s.Inspect(ctx, cmd.Args().First())
			if err != nil {
				return err
			}

			ser, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(ser)

			return ser.Serialize(ctx, inspection)
		},
	}
}
