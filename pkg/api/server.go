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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/NVIDIA/firmware-stamp/pkg/logging"
	"github.com/NVIDIA/firmware-stamp/pkg/release"
	"github.com/NVIDIA/firmware-stamp/pkg/server"
	"github.com/NVIDIA/firmware-stamp/pkg/stamp"
)

const (
	name           = "sigild"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/firmware-stamp/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads the release index, sets up routes, and
// handles graceful shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	provider, err := newProvider()
	if err != nil {
		slog.Error("failed to load release index", "error", err)
		return err
	}

	r := map[string]http.HandlerFunc{
		"/v1/releases":        provider.HandleReleases,
		"/v1/releases/latest": provider.HandleLatest,
		"/v1/releases/check":  provider.HandleCheck,
		"/v1/records/decode":  stamp.HandleDecodeRecord,
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// newProvider loads the release index from RELEASE_INDEX when set, and
// serves an empty index otherwise so the decode route still works.
func newProvider() (*release.Provider, error) {
	source := os.Getenv("RELEASE_INDEX")
	if source == "" {
		slog.Warn("RELEASE_INDEX not set, serving an empty release index")
		ix, err := release.NewIndex(version, nil)
		if err != nil {
			return nil, err
		}
		return release.NewProvider(ix), nil
	}

	slog.Info("loading release index", "source", source)
	return release.NewProviderFromSource(source)
}
