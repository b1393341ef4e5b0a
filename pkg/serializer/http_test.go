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

package serializer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRespondJSONEncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	// Channels cannot be JSON-encoded.
	RespondJSON(rec, http.StatusOK, map[string]any{"ch": make(chan int)})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHttpReaderRead(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	r := NewHttpReader()
	data, err := r.Read(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.Equal(t, HttpReaderUserAgent, gotAgent)
}

func TestHttpReaderReadNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := NewHttpReader()
	_, err := r.Read(srv.URL)
	assert.Error(t, err)
}

func TestHttpReaderReadEmptyURL(t *testing.T) {
	r := NewHttpReader()
	_, err := r.Read("")
	assert.Error(t, err)
}

func TestHttpReaderOptions(t *testing.T) {
	r := NewHttpReader(
		WithUserAgent("custom-agent"),
		WithTotalTimeout(2*time.Second),
		WithInsecureSkipVerify(true),
	)
	assert.Equal(t, "custom-agent", r.UserAgent)
	assert.Equal(t, 2*time.Second, r.Client.Timeout)

	tr, ok := r.Client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.True(t, tr.TLSClientConfig.InsecureSkipVerify)
}

func TestHttpReaderDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("file-content"))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "out.bin")
	r := NewHttpReader()
	require.NoError(t, r.DownloadWithContext(context.Background(), srv.URL, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file-content", string(data))
}
