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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider(t *testing.T) *Provider {
	t.Helper()
	return NewProvider(testIndex(t))
}

func TestHandleReleases(t *testing.T) {
	p := testProvider(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/releases", nil)
	rr := httptest.NewRecorder()
	p.HandleReleases(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Channel  string    `json:"channel"`
		Releases []Release `json:"releases"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "stable", resp.Channel)
	assert.Len(t, resp.Releases, 3)
}

func TestHandleReleasesChannelFilter(t *testing.T) {
	p := testProvider(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/releases?channel=beta", nil)
	rr := httptest.NewRecorder()
	p.HandleReleases(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Releases []Release `json:"releases"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Releases, 5)
}

func TestHandleReleasesMethodNotAllowed(t *testing.T) {
	p := testProvider(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/releases", nil)
	rr := httptest.NewRecorder()
	p.HandleReleases(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodGet, rr.Header().Get("Allow"))
}

func TestHandleLatest(t *testing.T) {
	p := testProvider(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/releases/latest", nil)
	rr := httptest.NewRecorder()
	p.HandleLatest(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got Release
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "1.1.0", got.Version.String())
}

func TestHandleLatestEmptyChannel(t *testing.T) {
	p := testProvider(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/releases/latest?channel=nightly-only", nil)
	rr := httptest.NewRecorder()
	p.HandleLatest(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleCheck(t *testing.T) {
	p := testProvider(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/releases/check?version=1.0.0", nil)
	rr := httptest.NewRecorder()
	p.HandleCheck(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var d Decision
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &d))
	assert.True(t, d.UpdateAvailable)
	assert.Equal(t, "1.0.0", d.Current.String())
	require.NotNil(t, d.Latest)
	assert.Equal(t, "1.1.0", d.Latest.Version.String())
}

func TestHandleCheckBadVersion(t *testing.T) {
	p := testProvider(t)

	for _, q := range []string{"", "version=not-a-version", "version=1.2"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/releases/check?"+q, nil)
		rr := httptest.NewRecorder()
		p.HandleCheck(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, q)
	}
}

func TestProviderSetIndex(t *testing.T) {
	p := testProvider(t)

	ix, err := NewIndex("0.3.0", []Release{rel("9.0.0", "stable")})
	require.NoError(t, err)
	p.SetIndex(ix)

	latest := p.index().Latest("stable")
	require.NotNil(t, latest)
	assert.Equal(t, "9.0.0", latest.Version.String())
}

func TestProviderReloadRequiresSource(t *testing.T) {
	p := testProvider(t)
	assert.Error(t, p.Reload())
}
