// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/prospector/internal/segment"
	"github.com/tomtom215/prospector/internal/validation"
)

// API error codes
const (
	ErrCodeValidation           = validation.ErrorCode
	ErrCodeUnsupportedAlgorithm = "UNSUPPORTED_ALGORITHM"
	ErrCodeInvalidParameter     = "INVALID_PARAMETER"
	ErrCodeBusy                 = "BUSY"
	ErrCodeSegmentation         = "SEGMENTATION_ERROR"
	ErrCodeRateLimited          = "RATE_LIMIT_EXCEEDED"
)

// apiFailure is an engine error translated for the HTTP layer.
type apiFailure struct {
	status  int
	code    string
	message string
	details map[string]interface{}
}

// classifySegmentError maps an engine error to its status, code, and
// client-facing message. Unknown errors are not echoed to the client.
func classifySegmentError(err error) apiFailure {
	var paramErr *segment.ParameterError
	switch {
	case errors.Is(err, segment.ErrUnsupportedAlgorithm):
		supported := make([]string, 0, len(segment.Algorithms()))
		for _, a := range segment.Algorithms() {
			supported = append(supported, a.String())
		}
		return apiFailure{
			status:  http.StatusBadRequest,
			code:    ErrCodeUnsupportedAlgorithm,
			message: err.Error(),
			details: map[string]interface{}{"supported": supported},
		}
	case errors.As(err, &paramErr):
		return apiFailure{
			status:  http.StatusBadRequest,
			code:    ErrCodeInvalidParameter,
			message: paramErr.Error(),
			details: map[string]interface{}{
				"param": paramErr.Param,
				"value": paramErr.Value,
			},
		}
	case errors.Is(err, segment.ErrBusy):
		return apiFailure{
			status:  http.StatusServiceUnavailable,
			code:    ErrCodeBusy,
			message: "Segmentation capacity exhausted, retry later",
		}
	default:
		return apiFailure{
			status:  http.StatusInternalServerError,
			code:    ErrCodeSegmentation,
			message: "Segmentation failed",
		}
	}
}
