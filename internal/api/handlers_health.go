// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/prospector/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Always returns 200 while the process is serving HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthResponse{
			Status:  "alive",
			Uptime:  time.Since(h.startTime),
			Version: Version,
		},
		Metadata: newMetadata(r, time.Time{}),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 once the server has begun shutting down.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.ready.Load() && h.segmenter != nil

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: models.HealthResponse{
			Status:  status,
			Uptime:  time.Since(h.startTime),
			Version: Version,
		},
		Metadata: newMetadata(r, time.Time{}),
	})
}
