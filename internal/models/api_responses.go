// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-01-12T12:00:00Z", "request_id": "..."},
//	  "error": {
//	    "code": "INVALID_PARAMETER",
//	    "message": "invalid parameter eps=-1: must be positive",
//	    "details": {"param": "eps", "value": -1}
//	  }
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	DurationMS int64     `json:"duration_ms,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: Malformed or oversized request body
//   - UNSUPPORTED_ALGORITHM: Unknown algorithm tag
//   - INVALID_PARAMETER: Out-of-range clustering parameter
//   - BUSY: No segmentation slot became free in time
//   - SEGMENTATION_ERROR: Unexpected failure during a run
//   - RATE_LIMIT_EXCEEDED: Too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthResponse is returned by the liveness and readiness endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  time.Duration `json:"uptime_ns"`
	Version string        `json:"version,omitempty"`
}
