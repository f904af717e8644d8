// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

/*
Package main is the entry point for the Prospector server.

Prospector segments batches of business-contact records into groups of
similar prospects with k-means, DBSCAN, or Ward hierarchical clustering,
names each group from its most distinctive attributes, and returns a 2-D
projection for scatter plots.

# Application Architecture

	RootSupervisor ("prospector")
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog, bridged to slog for supervisor events
 3. Engine: segment.Engine behind a bounded segment.Pool
 4. HTTP: chi router with CORS, rate limiting, and Prometheus metrics
 5. Supervision: suture tree running the HTTP server

# Configuration

Highest priority wins:
  - Environment variables (HTTP_PORT, LOG_LEVEL, SEGMENT_MAX_RECORDS, ...)
  - Config file (CONFIG_PATH, or config.yaml in the working directory)
  - Built-in defaults

See package config for the full list.

# Signal Handling

SIGINT and SIGTERM start a graceful shutdown: the readiness probe turns
503, new connections are refused, and in-flight segmentation calls run to
completion within SHUTDOWN_TIMEOUT.

# Example Usage

	export SEGMENT_DEFAULT_ALGORITHM=dbscan
	export CORS_ORIGINS=https://crm.example.com
	./prospector

	curl -s localhost:8080/api/v1/segments -d '{"prospects":[{"id":1,"industry":"Retail"}]}'
*/
package main
