// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/prospector/internal/logging"
	"github.com/tomtom215/prospector/internal/models"
	"github.com/tomtom215/prospector/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// newMetadata builds response metadata for r. A zero start omits the duration.
func newMetadata(r *http.Request, start time.Time) models.Metadata {
	md := models.Metadata{Timestamp: time.Now().UTC()}
	if r != nil {
		md.RequestID = logging.RequestIDFromContext(r.Context())
	}
	if !start.IsZero() {
		md.DurationMS = time.Since(start).Milliseconds()
	}
	return md
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, start time.Time, data interface{}) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: newMetadata(r, start),
	})
}

// respondError sends an error envelope. err, when set, is logged but never
// returned to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}, err error) {
	if err != nil {
		log := logging.Logger()
		if r != nil {
			log = *logging.Ctx(r.Context())
		}
		event := log.Error()
		if status < http.StatusInternalServerError {
			event = log.Warn()
		}
		event.Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Data:     nil,
		Metadata: newMetadata(r, time.Time{}),
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondValidationError sends a 400 VALIDATION_ERROR envelope.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes.
func validateRequest(v interface{}) *validation.RequestValidationError {
	return validation.ValidateStruct(v)
}

// decodeJSONBody decodes a size-limited JSON request body into dst.
// Unknown fields are ignored.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, maxBytes int64, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}
