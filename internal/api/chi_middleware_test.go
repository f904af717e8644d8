// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/prospector/internal/metrics"
	"github.com/tomtom215/prospector/internal/models"
)

// =====================================================
// ChiMiddleware Configuration Tests
// =====================================================

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(nil)
	if m == nil || m.config == nil {
		t.Fatal("NewChiMiddleware(nil) should apply defaults")
	}
	if len(m.config.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want []", m.config.CORSAllowedOrigins)
	}
	if m.config.CORSMaxAge != 86400 {
		t.Errorf("CORSMaxAge = %d, want 86400", m.config.CORSMaxAge)
	}
}

func TestNewChiMiddlewareFromSecurity(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromSecurity([]string{"https://app.example.com"}, 50, 30*time.Second, true)

	if len(m.config.CORSAllowedOrigins) != 1 || m.config.CORSAllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("CORSAllowedOrigins = %v", m.config.CORSAllowedOrigins)
	}
	if m.config.RateLimitRequests != 50 {
		t.Errorf("RateLimitRequests = %d, want 50", m.config.RateLimitRequests)
	}
	if m.config.RateLimitWindow != 30*time.Second {
		t.Errorf("RateLimitWindow = %v, want 30s", m.config.RateLimitWindow)
	}
	if !m.config.RateLimitDisabled {
		t.Error("RateLimitDisabled should be true")
	}
	if len(m.config.CORSAllowedMethods) != 3 {
		t.Errorf("CORSAllowedMethods = %v, want defaults", m.config.CORSAllowedMethods)
	}
}

// =====================================================
// CORS Middleware Tests
// =====================================================

func TestChiMiddleware_CORS_WildcardOrigin(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromSecurity([]string{"*"}, 100, time.Minute, false)

	handlerCalled := false
	handler := m.CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if !handlerCalled {
		t.Error("Handler should be called")
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestChiMiddleware_CORS_SpecificOrigin(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromSecurity([]string{"https://allowed.com"}, 100, time.Minute, false)
	handler := m.CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("allowed origin is reflected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://allowed.com")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://allowed.com" {
			t.Errorf("Access-Control-Allow-Origin = %q, want https://allowed.com", got)
		}
		if w.Header().Get("Vary") == "" {
			t.Error("Vary header should be set for specific origins")
		}
	})

	t.Run("disallowed origin gets no headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://not-allowed.com")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
	})
}

func TestChiMiddleware_CORS_PreflightRequest(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromSecurity([]string{"*"}, 100, time.Minute, false)

	handlerCalled := false
	handler := m.CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK && w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 200 or 204", w.Code)
	}
	if handlerCalled {
		t.Error("Handler should not be called for OPTIONS preflight")
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Access-Control-Allow-Methods should be set")
	}
}

// =====================================================
// Rate Limiting Middleware Tests
// =====================================================

func TestChiMiddleware_RateLimit_Disabled(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromSecurity(nil, 3, time.Second, true)

	callCount := 0
	handler := m.RateLimit("test-disabled")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
	}))

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Request %d: status = %d, want %d", i, w.Code, http.StatusOK)
		}
	}
	if callCount != 10 {
		t.Errorf("callCount = %d, want 10", callCount)
	}
}

func TestChiMiddleware_RateLimit_Enabled(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromSecurity(nil, 3, time.Minute, false)
	handler := m.RateLimit("test-enabled")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	hits := metrics.APIRateLimitHits.WithLabelValues("test-enabled")
	before := testutil.ToFloat64(hits)

	successCount, limitedCount := 0, 0
	var lastLimited *httptest.ResponseRecorder
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		switch w.Code {
		case http.StatusOK:
			successCount++
		case http.StatusTooManyRequests:
			limitedCount++
			lastLimited = w
		}
	}

	if successCount != 3 {
		t.Errorf("successCount = %d, want 3", successCount)
	}
	if limitedCount != 2 {
		t.Fatalf("limitedCount = %d, want 2", limitedCount)
	}
	if got := testutil.ToFloat64(hits) - before; got != 2 {
		t.Errorf("rate limit hits recorded = %v, want 2", got)
	}

	var resp models.APIResponse
	if err := json.Unmarshal(lastLimited.Body.Bytes(), &resp); err != nil {
		t.Fatalf("limited response is not an envelope: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeRateLimited {
		t.Errorf("limited response error = %+v, want %s", resp.Error, ErrCodeRateLimited)
	}
}

func TestChiMiddleware_RateLimit_DifferentIPs(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromSecurity(nil, 2, time.Minute, false)
	handler := m.RateLimit("test-ips")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, ip := range []string{"192.168.1.1:12345", "192.168.1.2:12345", "192.168.1.3:12345"} {
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = ip
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("IP %s request %d: status = %d, want %d", ip, i, w.Code, http.StatusOK)
			}
		}
	}
}

// =====================================================
// Security Headers Tests
// =====================================================

func TestAPISecurityHeaders(t *testing.T) {
	t.Parallel()

	handler := APISecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	t.Run("plain http", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		want := map[string]string{
			"X-Content-Type-Options": "nosniff",
			"X-Frame-Options":        "DENY",
			"Cache-Control":          "no-store",
			"Referrer-Policy":        "strict-origin-when-cross-origin",
		}
		for k, v := range want {
			if got := w.Header().Get(k); got != v {
				t.Errorf("%s = %q, want %q", k, got, v)
			}
		}
		if w.Header().Get("Strict-Transport-Security") != "" {
			t.Error("HSTS should not be set over plain HTTP")
		}
	})

	t.Run("behind tls proxy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Header().Get("Strict-Transport-Security") == "" {
			t.Error("HSTS should be set behind a TLS-terminating proxy")
		}
	})
}
