// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/prospector/internal/middleware"
)

// compressionLevel is the gzip level for JSON responses.
const compressionLevel = 5

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil ChiMiddleware uses the defaults.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)        // X-Request-ID header and logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil, nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Segmentation Endpoints
	// ========================
	r.Route("/api/v1/segments", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("segments"))
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(chimiddleware.Compress(compressionLevel, "application/json"))

		r.Post("/", router.handler.CreateSegments)
		r.Get("/algorithms", router.handler.ListAlgorithms)
	})

	// ========================
	// Metrics
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
