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

package oci

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/NVIDIA/firmware-stamp/pkg/errors"
	"github.com/NVIDIA/firmware-stamp/pkg/semver"
)

func TestPushRequiresTarget(t *testing.T) {
	_, err := Push(context.Background(), PushOptions{ImagePath: "firmware.bin"})
	if err == nil {
		t.Fatal("Push() with nil target should fail")
	}

	var serr *apperrors.StructuredError
	if !errors.As(err, &serr) || serr.Code != apperrors.ErrCodeInvalidRequest {
		t.Errorf("error = %v, want %s", err, apperrors.ErrCodeInvalidRequest)
	}
}

func TestPushRequiresTag(t *testing.T) {
	_, err := Push(context.Background(), PushOptions{
		ImagePath: "firmware.bin",
		Target:    &Reference{Registry: "ghcr.io", Repository: "nvidia/bmc-firmware"},
	})
	if err == nil {
		t.Fatal("Push() with untagged target should fail")
	}
}

func TestPushMissingImage(t *testing.T) {
	_, err := Push(context.Background(), PushOptions{
		ImagePath: filepath.Join(t.TempDir(), "missing.bin"),
		Target:    &Reference{Registry: "localhost:5000", Repository: "test/firmware", Tag: "1.0.0"},
		Version:   semver.New(1, 0, 0),
		PlainHTTP: true,
	})
	if err == nil {
		t.Fatal("Push() with missing image should fail")
	}
}

func TestPushUnreachableRegistry(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "firmware.bin")
	if err := os.WriteFile(image, make([]byte, 256), 0600); err != nil {
		t.Fatal(err)
	}

	// Port 1 is never a registry; the copy to the remote must fail after
	// local packaging succeeds.
	_, err := Push(context.Background(), PushOptions{
		ImagePath: image,
		Target:    &Reference{Registry: "localhost:1", Repository: "test/firmware", Tag: "1.0.0"},
		Version:   semver.New(1, 0, 0),
		PlainHTTP: true,
	})
	if err == nil {
		t.Fatal("Push() to unreachable registry should fail")
	}

	var serr *apperrors.StructuredError
	if !errors.As(err, &serr) || serr.Code != apperrors.ErrCodeUnavailable {
		t.Errorf("error = %v, want %s", err, apperrors.ErrCodeUnavailable)
	}
	if serr != nil && !serr.Retryable() {
		t.Error("registry unavailability should be retryable")
	}
}
