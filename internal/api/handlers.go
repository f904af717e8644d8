// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package api

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/prospector/internal/segment"
)

// defaultMaxBodyBytes bounds the segmentation request body.
const defaultMaxBodyBytes = 8 << 20

// Version is reported by the health endpoints; set at build time.
var Version = "dev"

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared response and decoding helpers
//   - handlers_health.go: Liveness and readiness probes
//   - handlers_segments.go: Segmentation and algorithm catalog endpoints
type Handler struct {
	segmenter    segment.Segmenter
	engineConfig *segment.Config
	timeout      time.Duration
	maxBodyBytes int64
	startTime    time.Time
	ready        atomic.Bool
}

// NewHandler creates an API handler.
//
// segmenter runs segmentation calls, usually the result cache in front of
// a *segment.Pool wrapping a *segment.Engine. engineConfig supplies the
// record cap and the defaults published by the catalog endpoint. timeout
// bounds how long a request may wait for a free segmentation slot.
//
// The handler starts ready; SetReady(false) flips the readiness probe
// during shutdown.
func NewHandler(segmenter segment.Segmenter, engineConfig *segment.Config, timeout time.Duration) *Handler {
	if engineConfig == nil {
		engineConfig = segment.DefaultConfig()
	}
	h := &Handler{
		segmenter:    segmenter,
		engineConfig: engineConfig,
		timeout:      timeout,
		maxBodyBytes: defaultMaxBodyBytes,
		startTime:    time.Now(),
	}
	h.ready.Store(true)
	return h
}

// SetReady sets the readiness probe result.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}
