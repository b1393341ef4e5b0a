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

package stamp

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/firmware-stamp/pkg/defaults"
	apperrors "github.com/NVIDIA/firmware-stamp/pkg/errors"
	"github.com/NVIDIA/firmware-stamp/pkg/header"
	"github.com/NVIDIA/firmware-stamp/pkg/semver"
)

// Stamper writes version records into firmware images.
type Stamper struct {
	// Offset is the byte offset of the version window in the image.
	Offset int64

	// AllowRestamp permits overwriting a window that already holds a
	// record. By default a non-zero window fails the stamp.
	AllowRestamp bool

	// DryRun verifies the image and encodes the record without writing.
	DryRun bool

	// Concurrency bounds parallel stamping in StampAll.
	Concurrency int

	Logger *slog.Logger
}

// Option is a functional option for configuring a Stamper.
type Option func(*Stamper)

// WithOffset sets the byte offset of the version window.
func WithOffset(offset int64) Option {
	return func(s *Stamper) {
		s.Offset = offset
	}
}

// WithAllowRestamp permits overwriting an already-stamped window.
func WithAllowRestamp(allow bool) Option {
	return func(s *Stamper) {
		s.AllowRestamp = allow
	}
}

// WithDryRun verifies without writing.
func WithDryRun(dryRun bool) Option {
	return func(s *Stamper) {
		s.DryRun = dryRun
	}
}

// WithConcurrency bounds parallel stamping in StampAll.
func WithConcurrency(n int) Option {
	return func(s *Stamper) {
		s.Concurrency = n
	}
}

// New creates a Stamper with the provided options. The window defaults to
// offset zero, stamping one image at a time with restamping disallowed.
func New(opts ...Option) *Stamper {
	s := &Stamper{
		Concurrency: defaults.StampConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	return s
}

// Stamp encodes v and writes it into the image's version window, then reads
// the window back and verifies it decodes to the same value. The image is
// left untouched when any check fails.
func (s *Stamper) Stamp(ctx context.Context, path string, v semver.Version) (*Result, error) {
	start := time.Now()
	res, err := s.stamp(ctx, path, v)
	observeStamp(time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Stamper) stamp(ctx context.Context, path string, v semver.Version) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeTimeout,
			"stamping canceled", err, map[string]any{"image": path})
	}

	rec, err := v.EncodeRecord()
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"version does not fit the record layout", err,
			map[string]any{"version": v.String()})
	}

	flag := os.O_RDWR
	if s.DryRun {
		flag = os.O_RDONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNotFound, "failed to open image", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to stat image", err)
	}
	if err := s.checkWindowBounds(info.Size()); err != nil {
		return nil, err
	}

	window := make([]byte, semver.RecordSize)
	if _, err := f.ReadAt(window, s.Offset); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to read version window", err)
	}

	if !isZero(window) && !s.AllowRestamp {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"image is already stamped",
			map[string]any{"image": path, "offset": s.Offset})
	}

	if !s.DryRun {
		if _, err := f.WriteAt(rec[:], s.Offset); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write record", err)
		}
		if err := f.Sync(); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to sync image", err)
		}

		// Read the window back; what the image holds is what counts.
		if _, err := f.ReadAt(window, s.Offset); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to re-read version window", err)
		}
		decoded, err := semver.DecodeRecordBytes(window)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "stamped record failed verification", err)
		}
		if decoded != v {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInternal,
				"stamped record decodes to a different version",
				map[string]any{"expected": v.String(), "actual": decoded.String()})
		}
	}

	digest, size, err := digestFile(f)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to digest image", err)
	}

	s.Logger.Info("image stamped",
		slog.String("image", path),
		slog.String("version", v.String()),
		slog.Int64("offset", s.Offset),
		slog.Bool("dryRun", s.DryRun),
	)

	return &Result{
		ID:        uuid.New().String(),
		Image:     path,
		Size:      size,
		Digest:    digest,
		Version:   v,
		Offset:    s.Offset,
		Record:    hex.EncodeToString(rec[:]),
		Timestamp: time.Now().UTC(),
		DryRun:    s.DryRun,
	}, nil
}

// StampAll stamps the same version into every listed image, fanning out with
// bounded concurrency. It fails on the first error; results for images that
// completed before the failure are discarded with it.
func (s *Stamper) StampAll(ctx context.Context, paths []string, v semver.Version) ([]Result, error) {
	if len(paths) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "no images to stamp")
	}

	results := make([]Result, len(paths))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Concurrency)

	for i, path := range paths {
		g.Go(func() error {
			res, err := s.Stamp(ctx, path, v)
			if err != nil {
				return fmt.Errorf("stamping %s: %w", path, err)
			}
			mu.Lock()
			results[i] = *res
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Inspect reads the image's version window and decodes it. An all-zero
// window reports an unstamped image rather than an error; a window holding
// malformed data is an error.
func (s *Stamper) Inspect(ctx context.Context, path string) (*Inspection, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeTimeout,
			"inspection canceled", err, map[string]any{"image": path})
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNotFound, "failed to open image", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to stat image", err)
	}
	if err := s.checkWindowBounds(info.Size()); err != nil {
		return nil, err
	}

	window := make([]byte, semver.RecordSize)
	if _, err := f.ReadAt(window, s.Offset); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to read version window", err)
	}

	digest, size, err := digestFile(f)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to digest image", err)
	}

	insp := &Inspection{
		Image:  path,
		Size:   size,
		Digest: digest,
		Offset: s.Offset,
		Record: hex.EncodeToString(window),
	}
	insp.Init(header.KindInspection, APIVersion, "")

	if isZero(window) {
		return insp, nil
	}

	v, err := semver.DecodeRecordBytes(window)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"version window holds a malformed record", err,
			map[string]any{"image": path, "offset": s.Offset})
	}
	insp.Stamped = true
	insp.Version = v
	return insp, nil
}

// checkWindowBounds verifies the version window lies inside the image.
func (s *Stamper) checkWindowBounds(size int64) error {
	if s.Offset < 0 || s.Offset+semver.RecordSize > size {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"version window exceeds image bounds",
			map[string]any{
				"offset":    s.Offset,
				"window":    semver.RecordSize,
				"imageSize": size,
			})
	}
	return nil
}

// digestFile computes the sha256 of the whole file and returns it with its
// size.
func digestFile(f *os.File) (string, int64, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", 0, err
	}
	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return "sha256:" + hex.EncodeToString(h.Sum(nil)), n, nil
}

func isZero(b []byte) bool {
	return bytes.Count(b, []byte{0}) == len(b)
}
