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
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/firmware-stamp/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the release-info HTTP service in-process",
		Description: `Run the same HTTP service as the sigild daemon: release queries, update
checks, and record decoding, with health and metrics endpoints.

The service reads PORT, LOG_LEVEL, and RELEASE_INDEX from the
environment; --index sets RELEASE_INDEX for this run.

Examples:
  sigil serve --index releases.yaml
  PORT=9090 sigil serve`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "index",
				Aliases: []string{"i"},
				Usage:   "Release index path or HTTP/HTTPS URL",
				Sources: cli.EnvVars("SIGIL_RELEASE_INDEX"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if index := cmd.String("index"); index != "" {
				if err := os.Setenv("RELEASE_INDEX", index); err != nil {
					return err
				}
			}
			return api.Serve()
		},
	}
}
