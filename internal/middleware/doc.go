// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

/*
Package middleware provides chi-compatible HTTP middleware for Prospector.

Key Components:

  - RequestID: propagates or generates X-Request-ID and seeds the logging
    context with request and correlation IDs
  - PrometheusMetrics: request count, duration, and in-flight instrumentation
    labeled by chi route pattern

Both have the signature func(http.Handler) http.Handler and are installed
with chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
