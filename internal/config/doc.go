// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

/*
Package config provides centralized configuration management for Prospector.

Configuration is loaded in layers with koanf, each overriding the previous:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file, located via CONFIG_PATH or DefaultConfigPaths
 3. Mapped environment variables

# Configuration Structure

  - ServerConfig: HTTP bind address, port, timeouts, environment
  - SecurityConfig: CORS origins and rate limiting
  - LoggingConfig: zerolog level, format, caller info
  - SegmentConfig: k-means tuning, request defaults, operational limits

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Per-request timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown deadline (default: 10s)
  - DRAIN_DELAY: Time readiness reports 503 before the listener closes (default: 2s)
  - ENVIRONMENT: development, staging or production (default: production)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per client (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

Segmentation:
  - SEGMENT_SEED, SEGMENT_N_INIT, SEGMENT_MAX_ITERATIONS, SEGMENT_TOLERANCE
  - SEGMENT_DEFAULT_ALGORITHM, SEGMENT_DEFAULT_N_CLUSTERS
  - SEGMENT_DEFAULT_EPS, SEGMENT_DEFAULT_MIN_SAMPLES
  - SEGMENT_MAX_RECORDS, SEGMENT_MAX_HIERARCHICAL_RECORDS
  - SEGMENT_HIERARCHICAL_WARN_RECORDS, SEGMENT_SILHOUETTE_MAX_RECORDS
  - SEGMENT_MAX_CONCURRENT
  - SEGMENT_RESULT_CACHE_SIZE (0 disables), SEGMENT_RESULT_CACHE_TTL

Unmapped environment variables are ignored.

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	engine, err := segment.NewEngine(cfg.Segment.EngineConfig(), logger)
*/
package config
