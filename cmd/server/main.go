// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/prospector/internal/api"
	"github.com/tomtom215/prospector/internal/config"
	"github.com/tomtom215/prospector/internal/logging"
	"github.com/tomtom215/prospector/internal/segment"
	"github.com/tomtom215/prospector/internal/supervisor"
	"github.com/tomtom215/prospector/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.LoggerConfig())
	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Prospector with supervisor tree")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("============================================================")
		logging.Warn().Msg("  SECURITY WARNING: CORS is configured with wildcard origin (CORS_ORIGINS=*)")
		logging.Warn().Msg("  ")
		logging.Warn().Msg("  Any website can submit prospect data to this API.")
		logging.Warn().Msg("  RECOMMENDED: Set specific origins in production:")
		logging.Warn().Msg("    CORS_ORIGINS=https://yourdomain.com,https://app.yourdomain.com")
		logging.Warn().Msg("============================================================")
	}

	// === SEGMENTATION ENGINE ===

	engine, err := segment.NewEngine(cfg.Segment.EngineConfig(), logging.WithComponent("segment"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create segmentation engine")
	}
	engineCfg := engine.Config()
	pool := segment.NewPool(engine, engineCfg.Limits.MaxConcurrent)
	segmenter := segment.NewResultCache(pool, engineCfg.Cache)
	logging.Info().
		Str("default_algorithm", engineCfg.Defaults.Algorithm).
		Int("max_records", engineCfg.Limits.MaxRecords).
		Int("max_concurrent", engineCfg.Limits.MaxConcurrent).
		Int("result_cache_size", engineCfg.Cache.Size).
		Msg("Segmentation engine initialized")

	// === HTTP SERVER ===

	handler := api.NewHandler(segmenter, engineCfg, cfg.Server.Timeout)
	chiMW := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMW)

	// WriteTimeout leaves room for a request that waited the full timeout
	// for a pool slot and then ran.
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      2 * cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// === SUPERVISOR TREE ===

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logging.WithComponent("supervisor")), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	httpSvc := services.NewHTTPServerService(server, services.HTTPServiceConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		DrainDelay:      cfg.Server.DrainDelay,
	})
	httpSvc.OnShutdown(func() {
		handler.SetReady(false)
		logging.Info().Msg("Readiness probe disabled, draining HTTP server")
	})
	tree.AddAPIService(httpSvc)
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
