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
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/firmware-stamp/pkg/gitver"
	"github.com/NVIDIA/firmware-stamp/pkg/semver"
	"github.com/NVIDIA/firmware-stamp/pkg/serializer"
)

// Record encodings for the encode command.
const (
	encodingHex    = "hex"
	encodingBase64 = "base64"
	encodingRaw    = "raw"
)

// resolveVersion returns the version from the positional argument or, with
// --git, from git describe in --git-dir.
func resolveVersion(ctx context.Context, cmd *cli.Command) (semver.Version, error) {
	if cmd.Bool("git") {
		d, err := gitver.FromGit(ctx, cmd.String("git-dir"))
		if err != nil {
			return semver.Version{}, fmt.Errorf("failed to discover version from git: %w", err)
		}
		return d.Version()
	}

	if cmd.Args().Len() != 1 {
		return semver.Version{}, fmt.Errorf("expected a version argument (or --git)")
	}
	return semver.Parse(cmd.Args().First())
}

func encodeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "encode",
		EnableShellCompletion: true,
		Usage:                 "Encode a version into a binary record",
		ArgsUsage:             "[VERSION]",
		Description: `Encode a version into the fixed 64-byte binary record that gets stamped
into firmware images. The version comes from the argument or, with --git,
from git describe on a repository.

Examples:
  sigil encode 1.4.0
  sigil encode 1.4.0 --encoding base64
  sigil encode --git --git-dir ./firmware --encoding raw -o record.bin`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "git",
				Usage: "Derive the version from git describe instead of an argument",
			},
			&cli.StringFlag{
				Name:    "git-dir",
				Usage:   "Repository to run git describe in",
				Value:   ".",
				Sources: cli.EnvVars("SIGIL_GIT_DIR"),
			},
			&cli.StringFlag{
				Name:  "encoding",
				Usage: "Record encoding (hex, base64, raw)",
				Value: encodingHex,
			},
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			v, err := resolveVersion(ctx, cmd)
			if err != nil {
				return err
			}

			rec, err := v.EncodeRecord()
			if err != nil {
				return err
			}

			out := cmd.String("output")
			switch cmd.String("encoding") {
			case encodingHex:
				return writeText(out, hex.EncodeToString(rec[:]))
			case encodingBase64:
				return writeText(out, base64.StdEncoding.EncodeToString(rec[:]))
			case encodingRaw:
				if out == "" {
					return fmt.Errorf("--output is required for raw encoding")
				}
				return serializer.WriteToFile(out, rec[:])
			default:
				return fmt.Errorf("unknown encoding: %q", cmd.String("encoding"))
			}
		},
	}
}

// writeText writes a line to a file or stdout.
func writeText(path, text string) error {
	if path == "" {
		_, err := fmt.Println(text)
		return err
	}
	return serializer.WriteToFile(path, []byte(text+"\n"))
}

// readRecordFromImage reads the record window out of an image file.
func readRecordFromImage(path string, offset int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	raw := make([]byte, semver.RecordSize)
	if _, err := f.ReadAt(raw, offset); err != nil {
		return nil, fmt.Errorf("failed to read record at offset %d: %w", offset, err)
	}
	return raw, nil
}
