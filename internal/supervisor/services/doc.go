// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

/*
Package services provides suture.Service wrappers for Prospector components.

Each wrapper implements the suture v4 Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and translates a component's own lifecycle into it.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Runs OnShutdown hooks (such as flipping readiness) before draining
  - Waits DrainDelay so load balancers see the readiness change
  - Configurable shutdown timeout for in-flight segmentation calls

# Error Semantics

Serve returns ctx.Err() after a graceful shutdown, which suture treats as
a clean stop. Any other error (bind failure, listener exiting on its own, failed
Shutdown) is reported
to the supervisor, which restarts the service with backoff.
*/
package services
