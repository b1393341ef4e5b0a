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
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/firmware-stamp/pkg/semver"
	"github.com/NVIDIA/firmware-stamp/pkg/stamp"
)

// decodedRecord is the decode command's output document.
type decodedRecord struct {
	Stamped bool   `json:"stamped" yaml:"stamped"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Major   int    `json:"major" yaml:"major"`
	Minor   int    `json:"minor" yaml:"minor"`
	Patch   int    `json:"patch" yaml:"patch"`
	Extra   string `json:"extra,omitempty" yaml:"extra,omitempty"`
	Commit  string `json:"commit,omitempty" yaml:"commit,omitempty"`
	Record  string `json:"record" yaml:"record"`
}

func decodeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "decode",
		EnableShellCompletion: true,
		Usage:                 "Decode a binary version record",
		ArgsUsage:             "[RECORD]",
		Description: `Decode a 64-byte version record given as hex or base64 text, or read it
out of an image file with --image and --offset. An all-zero record means
the image was never stamped.

Examples:
  sigil decode 01000100020003000000...
  sigil decode --image firmware.bin --offset 4096 --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "image",
				Usage: "Image file to read the record from",
			},
			&cli.IntFlag{
				Name:  "offset",
				Usage: "Byte offset of the record window in the image",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var raw []byte
			var err error

			if image := cmd.String("image"); image != "" {
				raw, err = readRecordFromImage(image, int64(cmd.Int("offset")))
			} else {
				if cmd.Args().Len() != 1 {
					return fmt.Errorf("expected a record argument (or --image)")
				}
				raw, err = stamp.DecodeRecordText(cmd.Args().First())
			}
			if err != nil {
				return err
			}

			doc := decodedRecord{Record: hex.EncodeToString(raw)}
			if !allZero(raw) {
				v, err := semver.DecodeRecordBytes(raw)
				if err != nil {
					return err
				}
				doc.Stamped = true
				doc.Version = v.String()
				doc.Major = v.Major
				doc.Minor = v.Minor
				doc.Patch = v.Patch
				doc.Extra = v.Extra
				doc.Commit = v.Commit
			}

			ser, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(ser)

			return ser.Serialize(ctx, doc)
		},
	}
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
