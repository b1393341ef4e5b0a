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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/firmware-stamp/pkg/logging"
	"github.com/NVIDIA/firmware-stamp/pkg/serializer"
)

const (
	name           = "sigil"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
		Sources: cli.EnvVars("SIGIL_OUTPUT"),
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
		Value:   string(serializer.FormatYAML),
		Sources: cli.EnvVars("SIGIL_FORMAT"),
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Firmware version stamping and release tooling",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `sigil parses, compares, and binary-encodes firmware versions, stamps
version records into firmware images at a fixed offset, and answers
release update queries from a published release index.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("SIGIL_LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			parseCmd(),
			compareCmd(),
			encodeCmd(),
			decodeCmd(),
			stampCmd(),
			inspectCmd(),
			releaseCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main() and handles
// SIGINT/SIGTERM for graceful cancellation.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newOutputWriter builds the serializer for a command's --format and
// --output flags.
func newOutputWriter(cmd *cli.Command) (*serializer.Writer, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return nil, fmt.Errorf("unknown output format: %q", outFormat)
	}
	return serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")), nil
}

// closeWriter closes the serializer, logging rather than failing on
// close errors.
func closeWriter(w *serializer.Writer) {
	if err := w.Close(); err != nil {
		slog.Warn("failed to close serializer", "error", err)
	}
}
