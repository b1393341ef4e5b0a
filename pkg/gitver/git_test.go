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
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// git runs a git command in dir, failing the test on error.
func git(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@localhost",
		"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@localhost",
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

func TestFromGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	git(t, dir, "init")
	if err := os.WriteFile(filepath.Join(dir, "main.c"), []byte("int main(void) { return 0; }\n"), 0600); err != nil {
		t.Fatal(err)
	}
	git(t, dir, "add", ".")
	git(t, dir, "commit", "-m", "initial")
	git(t, dir, "tag", "v1.2.3")

	d, err := FromGit(context.Background(), dir)
	if err != nil {
		t.Fatalf("FromGit: %v", err)
	}

	if got, want := d.Tag.String(), "1.2.3"; got != want {
		t.Errorf("tag = %q, want %q", got, want)
	}
	if d.Distance != 0 {
		t.Errorf("distance = %d, want 0", d.Distance)
	}
	if d.CommitID == "" {
		t.Error("expected commit hash from --long output")
	}
	if d.Dirty {
		t.Error("fresh commit should not be dirty")
	}

	// A second commit moves us one past the tag.
	if err := os.WriteFile(filepath.Join(dir, "main.c"), []byte("int main(void) { return 1; }\n"), 0600); err != nil {
		t.Fatal(err)
	}
	git(t, dir, "commit", "-am", "change")

	d, err = FromGit(context.Background(), dir)
	if err != nil {
		t.Fatalf("FromGit after commit: %v", err)
	}
	if d.Distance != 1 {
		t.Errorf("distance = %d, want 1", d.Distance)
	}

	v, err := d.Version()
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if got, want := v.Extra, "dev.1"; got != want {
		t.Errorf("extra = %q, want %q", got, want)
	}
	if v.Patch != 4 {
		t.Errorf("patch = %d, want 4", v.Patch)
	}
}

func TestFromGitNotARepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	if _, err := FromGit(context.Background(), t.TempDir()); err == nil {
		t.Error("expected error outside a repository")
	}
}
