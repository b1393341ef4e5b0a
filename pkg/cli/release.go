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

	"github.com/NVIDIA/firmware-stamp/pkg/release"
	"github.com/NVIDIA/firmware-stamp/pkg/semver"
)

// Release query flags shared by the subcommands.
var (
	indexFlag = &cli.StringFlag{
		Name:     "index",
		Aliases:  []string{"i"},
		Usage:    "Release index path or HTTP/HTTPS URL",
		Sources:  cli.EnvVars("SIGIL_RELEASE_INDEX"),
		Required: true,
	}

	channelFlag = &cli.StringFlag{
		Name:    "channel",
		Aliases: []string{"c"},
		Usage:   "Release channel (default: stable)",
		Sources: cli.EnvVars("SIGIL_CHANNEL"),
	}
)

func releaseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "release",
		EnableShellCompletion: true,
		Usage:                 "Query a release index",
		Description: `Query a published release index for the releases visible on a channel,
the newest release, or an update decision for a device's running version.
The index is a YAML or JSON document, read from a local path or URL.`,
		Commands: []*cli.Command{
			releaseListCmd(),
			releaseLatestCmd(),
			releaseCheckCmd(),
		},
	}
}

func releaseListCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List the releases visible on a channel",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			indexFlag,
			channelFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ix, err := release.LoadIndex(cmd.String("index"))
			if err != nil {
				return err
			}

			ser, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(ser)

			releases := ix.OnChannel(cmd.String("channel"))
			return ser.Serialize(ctx, struct {
				Channel  string            `json:"channel" yaml:"channel"`
				Releases []release.Release `json:"releases" yaml:"releases"`
			}{
				Channel:  release.NormalizeChannel(cmd.String("channel")),
				Releases: releases,
			})
		},
	}
}

func releaseLatestCmd() *cli.Command {
	return &cli.Command{
		Name:      "latest",
		Usage:     "Print the newest release on a channel",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			indexFlag,
			channelFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ix, err := release.LoadIndex(cmd.String("index"))
			if err != nil {
				return err
			}

			latest := ix.Latest(cmd.String("channel"))
			if latest == nil {
				return fmt.Errorf("no releases on channel %q",
					release.NormalizeChannel(cmd.String("channel")))
			}

			ser, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(ser)

			return ser.Serialize(ctx, latest)
		},
	}
}

func releaseCheckCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Decide whether a device should update",
		ArgsUsage: "VERSION",
		Description: `Check a device's running version against the newest release on its
channel. The decision reports whether an update is available and what the
latest release is.

Examples:
  sigil release check 1.3.0 --index releases.yaml
  sigil release check 1.4.0-rc.1 -i https://firmware.example.com/releases.yaml -c beta`,
		Flags: []cli.Flag{
			indexFlag,
			channelFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one version argument")
			}

			current, err := semver.Parse(cmd.Args().First())
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", cmd.Args().First(), err)
			}

			ix, err := release.LoadIndex(cmd.String("index"))
			if err != nil {
				return err
			}

			ser, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(ser)

			return ser.Serialize(ctx, ix.Check(current, cmd.String("channel")))
		},
	}
}
