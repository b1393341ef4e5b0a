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

package gitver

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/NVIDIA/firmware-stamp/pkg/defaults"
)

// FromGit runs git describe in the given directory and parses the result.
// An empty dir means the current working directory. The repository must
// have at least one reachable tag.
func FromGit(ctx context.Context, dir string) (Describe, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return Describe{}, fmt.Errorf("git not found in PATH: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.GitDescribeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, gitPath, "describe", "--tags", "--long", "--dirty")
	if dir != "" {
		cmd.Dir = dir
	}

	output, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return Describe{}, fmt.Errorf("git describe failed: %s", strings.TrimSpace(string(ee.Stderr)))
		}
		return Describe{}, fmt.Errorf("failed to execute git describe: %w", err)
	}

	d, err := ParseDescribe(string(output))
	if err != nil {
		return Describe{}, err
	}

	slog.Debug("git describe",
		slog.String("tag", d.Tag.String()),
		slog.Int("distance", d.Distance),
		slog.String("commit", d.CommitID),
		slog.Bool("dirty", d.Dirty),
	)
	return d, nil
}
