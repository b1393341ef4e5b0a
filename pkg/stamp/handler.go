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
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/NVIDIA/firmware-stamp/pkg/semver"
	"github.com/NVIDIA/firmware-stamp/pkg/serializer"
)

// DecodeRequest is the body of POST /v1/records/decode. Record holds the
// raw version record, hex- or base64-encoded.
type DecodeRequest struct {
	Record string `json:"record"`
}

// DecodeResponse is the decoded form of a version record.
type DecodeResponse struct {
	Version   semver.Version `json:"version"`
	Text      string         `json:"text"`
	Stamped   bool           `json:"stamped"`
	Timestamp time.Time      `json:"timestamp"`
}

// HandleDecodeRecord decodes a binary version record submitted by fleet
// tooling. The record travels hex- or base64-encoded in a JSON body; an
// all-zero record reports an unstamped window.
func HandleDecodeRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		slog.Error("method not allowed", "method", r.Method)
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("failed to parse decode request", "error", err)
		http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		return
	}

	raw, err := DecodeRecordText(req.Record)
	if err != nil {
		slog.Error("failed to decode record text", "error", err)
		http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		return
	}

	resp := DecodeResponse{Timestamp: time.Now().UTC()}
	if !isZero(raw) {
		v, err := semver.DecodeRecordBytes(raw)
		if err != nil {
			slog.Error("malformed record", "error", err)
			http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
			return
		}
		resp.Stamped = true
		resp.Version = v
		resp.Text = v.String()
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// DecodeRecordText accepts a record as hex or base64 and returns the raw
// bytes. Length is validated against the record size so a truncated payload
// fails here rather than in the codec.
func DecodeRecordText(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("record is required")
	}

	if raw, err := hex.DecodeString(s); err == nil {
		if len(raw) != semver.RecordSize {
			return nil, fmt.Errorf("record must be %d bytes, got %d", semver.RecordSize, len(raw))
		}
		return raw, nil
	}

	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("record is neither hex nor base64: %w", err)
	}
	if len(raw) != semver.RecordSize {
		return nil, fmt.Errorf("record must be %d bytes, got %d", semver.RecordSize, len(raw))
	}
	return raw, nil
}
