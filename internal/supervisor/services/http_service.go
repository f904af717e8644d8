// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/prospector/internal/logging"
)

// errListenerExited is returned when the listener stops without a shutdown
// request, so the supervisor restarts the service.
var errListenerExited = errors.New("http listener exited unexpectedly")

// HTTPServer is the lifecycle subset of *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServiceConfig controls how the API server stops.
type HTTPServiceConfig struct {
	// ShutdownTimeout bounds how long in-flight requests may take to
	// finish once draining starts. Non-positive values use 10s.
	ShutdownTimeout time.Duration

	// DrainDelay is the pause between the shutdown hooks (readiness off)
	// and closing the listener, giving load balancers time to stop routing.
	DrainDelay time.Duration
}

// HTTPServerService runs the segmentation API as a supervised service.
//
// On cancellation it runs the shutdown hooks, waits DrainDelay, then calls
// Shutdown so that every admitted segmentation run completes.
//
//	svc := services.NewHTTPServerService(server, services.HTTPServiceConfig{
//	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
//	    DrainDelay:      cfg.Server.DrainDelay,
//	})
//	svc.OnShutdown(func() { handler.SetReady(false) })
//	tree.AddAPIService(svc)
type HTTPServerService struct {
	server HTTPServer
	config HTTPServiceConfig
	hooks  []func()
	logger zerolog.Logger
}

// NewHTTPServerService wraps server for the supervisor tree.
func NewHTTPServerService(server HTTPServer, cfg HTTPServiceConfig) *HTTPServerService {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.DrainDelay < 0 {
		cfg.DrainDelay = 0
	}
	return &HTTPServerService{
		server: server,
		config: cfg,
		logger: logging.WithComponent("http-server"),
	}
}

// OnShutdown registers fn to run when draining starts. Hooks run in
// registration order. It must be called before Serve.
func (h *HTTPServerService) OnShutdown(fn func()) {
	h.hooks = append(h.hooks, fn)
}

// Serve implements suture.Service. It returns ctx.Err() after a clean
// drain, and an error when the listener fails or exits on its own.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	exited := make(chan error, 1)
	go func() {
		exited <- h.server.ListenAndServe()
	}()

	select {
	case err := <-exited:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return errListenerExited
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	h.logger.Info().Dur("drain_delay", h.config.DrainDelay).Msg("draining API server")
	for _, fn := range h.hooks {
		fn()
	}
	if h.config.DrainDelay > 0 {
		time.Sleep(h.config.DrainDelay)
	}

	// ctx is already done; the drain gets its own deadline.
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.config.ShutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	<-exited

	h.logger.Info().Msg("API server stopped")
	return ctx.Err()
}

// String names the service in supervisor events.
func (h *HTTPServerService) String() string {
	return "http-server"
}
