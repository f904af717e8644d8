// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := newEngineHandler(t, nil)
	mw := NewChiMiddlewareFromSecurity([]string{"*"}, 100, time.Minute, true)
	return NewRouter(h, mw).SetupChi()
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"liveness", http.MethodGet, "/api/v1/health/live", "", http.StatusOK},
		{"readiness", http.MethodGet, "/api/v1/health/ready", "", http.StatusOK},
		{"catalog", http.MethodGet, "/api/v1/segments/algorithms", "", http.StatusOK},
		{"segment", http.MethodPost, "/api/v1/segments", `{"prospects":[{"id":1},{"id":2}],"n_clusters":1}`, http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/nope", "", http.StatusNotFound},
		{"wrong method", http.MethodDelete, "/api/v1/segments/algorithms", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s: status = %d, want %d; body = %s", tt.method, tt.path, w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRouter_NotFoundEnvelope(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	resp := decodeEnvelope(t, w)
	if resp.Error == nil || resp.Error.Code != "NOT_FOUND" {
		t.Errorf("Error = %+v, want NOT_FOUND", resp.Error)
	}
}

func TestRouter_RequestIDPropagation(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/segments/algorithms", nil)
	req.Header.Set("X-Request-ID", "client-abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "client-abc" {
		t.Errorf("X-Request-ID = %q, want client-abc", got)
	}
	if resp := decodeEnvelope(t, w); resp.Metadata.RequestID != "client-abc" {
		t.Errorf("Metadata.RequestID = %q, want client-abc", resp.Metadata.RequestID)
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
}

func TestRouter_CompressesSegmentResponses(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/segments/algorithms", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)

	if got := w.Header().Get("Content-Encoding"); got != "gzip" {
		t.Errorf("Content-Encoding = %q, want gzip", got)
	}
}
