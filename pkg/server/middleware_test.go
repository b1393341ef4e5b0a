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

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddlewareGenerates(t *testing.T) {
	s := New()

	var seen string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if seen == "" {
		t.Fatal("expected a request ID in context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("request ID %q is not a UUID: %v", seen, err)
	}
	if got := w.Header().Get("X-Request-Id"); got != seen {
		t.Errorf("header X-Request-Id = %q, want %q", got, seen)
	}
}

func TestRequestIDMiddlewarePreservesValid(t *testing.T) {
	s := New()

	id := uuid.New().String()
	handler := s.requestIDMiddleware(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-Id", id)
	w := httptest.NewRecorder()
	handler(w, req)

	if got := w.Header().Get("X-Request-Id"); got != id {
		t.Errorf("header X-Request-Id = %q, want %q", got, id)
	}
}

func TestRequestIDMiddlewareReplacesInvalid(t *testing.T) {
	s := New()

	handler := s.requestIDMiddleware(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-Id", "definitely-not-a-uuid")
	w := httptest.NewRecorder()
	handler(w, req)

	got := w.Header().Get("X-Request-Id")
	if got == "definitely-not-a-uuid" {
		t.Error("invalid client request ID should be replaced")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("replacement %q is not a UUID: %v", got, err)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	s := New(WithRateLimit(1, 1))

	handler := s.withMiddleware(okHandler)

	// First request consumes the single token.
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first request: status = %d, want %d", w.Code, http.StatusOK)
	}

	// Second request must be rejected.
	w = httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on rejection")
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Code != ErrCodeRateLimitExceeded {
		t.Errorf("error code = %q, want %q", errResp.Code, ErrCodeRateLimitExceeded)
	}
	if !errResp.Retryable {
		t.Error("rate limit rejection should be retryable")
	}
}

func TestRateLimitHeaders(t *testing.T) {
	s := New()

	handler := s.rateLimitMiddleware(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
		if w.Header().Get(h) == "" {
			t.Errorf("expected header %s to be set", h)
		}
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := New()

	handler := s.requestIDMiddleware(s.panicRecoveryMiddleware(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Code != ErrCodeInternalError {
		t.Errorf("error code = %q, want %q", errResp.Code, ErrCodeInternalError)
	}
	if errResp.RequestID == "" {
		t.Error("expected a request ID in the error response")
	}
}

func TestVersionMiddlewareSetsHeader(t *testing.T) {
	s := New()

	handler := s.versionMiddleware(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if got := w.Header().Get("X-API-Version"); got != DefaultAPIVersion {
		t.Errorf("X-API-Version = %q, want %q", got, DefaultAPIVersion)
	}
}
