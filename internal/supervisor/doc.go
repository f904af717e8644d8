// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

/*
Package supervisor provides process supervision for Prospector using suture v4.

	RootSupervisor ("prospector")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with backoff governed by TreeConfig.
Supervisor events are logged through sutureslog, bridged to the
application's zerolog logger by logging.NewSlogLogger.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logging.WithComponent("supervisor")), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	httpSvc := services.NewHTTPServerService(server, services.HTTPServiceConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	    DrainDelay:      cfg.Server.DrainDelay,
	})
	httpSvc.OnShutdown(func() { handler.SetReady(false) })
	tree.AddAPIService(httpSvc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor tree stopped")
	}
*/
package supervisor
