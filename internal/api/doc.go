// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

/*
Package api provides the HTTP REST API layer for Prospector.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for segmentation, catalog, and health
  - ChiMiddleware: go-chi/cors and go-chi/httprate factories
  - Response formatting: the {status, data, metadata, error} envelope

Endpoints:

	GET  /api/v1/health/live          liveness probe
	GET  /api/v1/health/ready         readiness probe (503 while shutting down)
	POST /api/v1/segments             segment a batch of prospects
	GET  /api/v1/segments/algorithms  supported algorithms and defaults
	GET  /metrics                     Prometheus exposition

Error codes:

	VALIDATION_ERROR       400  malformed body, oversized batch, bad field
	UNSUPPORTED_ALGORITHM  400  unknown algorithm tag
	INVALID_PARAMETER      400  n_clusters, eps, or min_samples out of range
	RATE_LIMIT_EXCEEDED    429  per-client request budget spent
	BUSY                   503  no segmentation slot freed within the timeout
	SEGMENTATION_ERROR     500  unexpected engine failure

Usage:

	engine, _ := segment.NewEngine(cfg.Segment.EngineConfig(), logger)
	pool := segment.NewPool(engine, cfg.Segment.MaxConcurrent)
	handler := api.NewHandler(pool, engine.Config(), cfg.Server.Timeout)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromSecurity(
	    cfg.Security.CORSOrigins, cfg.Security.RateLimitReqs,
	    cfg.Security.RateLimitWindow, cfg.Security.RateLimitDisabled))
	http.ListenAndServe(":8080", router.SetupChi())
*/
package api
