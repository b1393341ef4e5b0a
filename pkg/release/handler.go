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

package release

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/NVIDIA/firmware-stamp/pkg/semver"
	"github.com/NVIDIA/firmware-stamp/pkg/serializer"
)

// Provider serves release queries over HTTP from an in-memory index.
// The index can be swapped atomically with SetIndex, so a running service
// can pick up a republished index without restarting.
type Provider struct {
	mu sync.RWMutex
	ix *Index

	// Source is the path or URL the index was loaded from; used by Reload.
	Source string
}

// NewProvider creates a Provider serving the given index.
func NewProvider(ix *Index) *Provider {
	return &Provider{ix: ix}
}

// NewProviderFromSource loads the index from a path or URL.
func NewProviderFromSource(source string) (*Provider, error) {
	ix, err := LoadIndex(source)
	if err != nil {
		return nil, err
	}
	return &Provider{ix: ix, Source: source}, nil
}

// SetIndex swaps the served index.
func (p *Provider) SetIndex(ix *Index) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ix = ix
}

// Reload re-reads the index from its source.
func (p *Provider) Reload() error {
	if p.Source == "" {
		return fmt.Errorf("provider has no source to reload from")
	}
	ix, err := LoadIndex(p.Source)
	if err != nil {
		return err
	}
	p.SetIndex(ix)
	return nil
}

func (p *Provider) index() *Index {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ix
}

// HandleReleases handles GET /v1/releases, optionally filtered by
// ?channel=.
func (p *Provider) HandleReleases(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		slog.Error("method not allowed", "method", r.Method)
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	channel := r.URL.Query().Get("channel")
	releases := p.index().OnChannel(channel)

	resp := struct {
		Channel  string    `json:"channel"`
		Releases []Release `json:"releases"`
	}{
		Channel:  NormalizeChannel(channel),
		Releases: releases,
	}
	if resp.Releases == nil {
		resp.Releases = []Release{}
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleLatest handles GET /v1/releases/latest?channel=.
func (p *Provider) HandleLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		slog.Error("method not allowed", "method", r.Method)
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	channel := r.URL.Query().Get("channel")
	latest := p.index().Latest(channel)
	if latest == nil {
		http.Error(w, fmt.Sprintf("no releases on channel %q", NormalizeChannel(channel)), http.StatusNotFound)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, latest)
}

// HandleCheck handles GET /v1/releases/check?version=&channel=. The version
// parameter is the version the device is currently running.
func (p *Provider) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		slog.Error("method not allowed", "method", r.Method)
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	versionStr := r.URL.Query().Get("version")
	if versionStr == "" {
		http.Error(w, "Bad Request: version is required", http.StatusBadRequest)
		return
	}
	current, err := semver.Parse(versionStr)
	if err != nil {
		slog.Error("failed to parse device version", "error", err, "version", versionStr)
		http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		return
	}

	channel := r.URL.Query().Get("channel")
	d := p.index().Check(current, channel)
	observeCheck(d)

	serializer.RespondJSON(w, http.StatusOK, d)
}
