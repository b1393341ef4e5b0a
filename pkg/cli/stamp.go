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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/firmware-stamp/pkg/defaults"
	"github.com/NVIDIA/firmware-stamp/pkg/gitver"
	"github.com/NVIDIA/firmware-stamp/pkg/oci"
	"github.com/NVIDIA/firmware-stamp/pkg/semver"
	"github.com/NVIDIA/firmware-stamp/pkg/serializer"
	"github.com/NVIDIA/firmware-stamp/pkg/stamp"
)

// stampVersion resolves the version to stamp from --version or --git.
func stampVersion(ctx context.Context, cmd *cli.Command) (semver.Version, error) {
	if cmd.Bool("git") {
		d, err := gitver.FromGit(ctx, cmd.String("git-dir"))
		if err != nil {
			return semver.Version{}, fmt.Errorf("failed to discover version from git: %w", err)
		}
		return d.Version()
	}

	vs := cmd.String("version")
	if vs == "" {
		return semver.Version{}, fmt.Errorf("either --version or --git is required")
	}
	return semver.Parse(vs)
}

func stampCmd() *cli.Command {
	return &cli.Command{
		Name:                  "stamp",
		EnableShellCompletion: true,
		Usage:                 "Stamp version records into firmware images",
		ArgsUsage:             "IMAGE [IMAGE...]",
		Description: `Write the binary version record into each image's version window at the
given offset, then read it back and verify it decodes to the same value.
An image whose window is not zeroed fails unless --allow-restamp is set.

The run can emit a stamp manifest (--manifest) and push a single stamped
image, with its manifest, to an OCI registry (--push oci://...). When the
push target carries no tag, the stamped version is used.

Examples:
  sigil stamp firmware.bin --version 1.4.0 --offset 4096
  sigil stamp a.bin b.bin --git --manifest stamps.yaml
  sigil stamp firmware.bin --version 1.4.0 --push oci://ghcr.io/nvidia/bmc-firmware`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "Version to stamp (e.g., 1.4.0 or 2.0.0-rc.1+g1e6f2a)",
				Sources: cli.EnvVars("SIGIL_VERSION"),
			},
			&cli.BoolFlag{
				Name:  "git",
				Usage: "Derive the version from git describe instead of --version",
			},
			&cli.StringFlag{
				Name:    "git-dir",
				Usage:   "Repository to run git describe in",
				Value:   ".",
				Sources: cli.EnvVars("SIGIL_GIT_DIR"),
			},
			&cli.IntFlag{
				Name:    "offset",
				Usage:   "Byte offset of the version window in the image",
				Sources: cli.EnvVars("SIGIL_OFFSET"),
			},
			&cli.BoolFlag{
				Name:  "allow-restamp",
				Usage: "Permit overwriting a window that already holds a record",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Verify and encode without writing to the images",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Number of images stamped in parallel",
				Value: defaults.StampConcurrency,
			},
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "Write a stamp manifest (YAML) to this path",
			},
			&cli.StringFlag{
				Name:  "push",
				Usage: "Push the stamped image to an OCI registry (oci://registry/repo[:tag])",
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP for the registry connection",
			},
			&cli.BoolFlag{
				Name:  "insecure-tls",
				Usage: "Skip TLS certificate verification for the registry",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			images := cmd.Args().Slice()
			if len(images) == 0 {
				return fmt.Errorf("expected at least one image argument")
			}
			if cmd.String("push") != "" && len(images) != 1 {
				return fmt.Errorf("--push supports exactly one image")
			}

			v, err := stampVersion(ctx, cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIStampTimeout)
			defer cancel()

			s := stamp.New(
				stamp.WithOffset(int64(cmd.Int("offset"))),
				stamp.WithAllowRestamp(cmd.Bool("allow-restamp")),
				stamp.WithDryRun(cmd.Bool("dry-run")),
				stamp.WithConcurrency(int(cmd.Int("concurrency"))),
			)

			results, err := s.StampAll(ctx, images, v)
			if err != nil {
				return err
			}

			manifest := stamp.NewManifest(version, results)

			manifestPath := cmd.String("manifest")
			if manifestPath != "" {
				mw := serializer.NewFileWriterOrStdout(serializer.FormatYAML, manifestPath)
				if err := mw.Serialize(ctx, manifest); err != nil {
					return fmt.Errorf("failed to write stamp manifest: %w", err)
				}
				if err := mw.Close(); err != nil {
					return fmt.Errorf("failed to write stamp manifest: %w", err)
				}
				slog.Info("stamp manifest written", "path", manifestPath)
			}

			if push := cmd.String("push"); push != "" {
				if err := pushStamped(ctx, cmd, images[0], manifestPath, v); err != nil {
					return err
				}
			}

			ser, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(ser)

			return ser.Serialize(ctx, manifest)
		},
	}
}

// pushStamped pushes the stamped image (and manifest, when written) to the
// registry named by --push.
func pushStamped(ctx context.Context, cmd *cli.Command, image, manifestPath string, v semver.Version) error {
	target, err := oci.ParseTarget(cmd.String("push"))
	if err != nil {
		return err
	}
	if target.Tag == "" {
		// OCI tags cannot carry '+', so the default tag drops the commit.
		tagVersion := v
		tagVersion.Commit = ""
		target = target.WithTag(tagVersion.String())
	}

	res, err := oci.Push(ctx, oci.PushOptions{
		ImagePath:    image,
		ManifestPath: manifestPath,
		Target:       target,
		Version:      v,
		PlainHTTP:    cmd.Bool("plain-http"),
		InsecureTLS:  cmd.Bool("insecure-tls"),
	})
	if err != nil {
		return err
	}

	slog.Info("pushed stamped image",
		"reference", res.Reference,
		"digest", res.Digest,
	)
	return nil
}
