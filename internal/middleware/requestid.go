// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package middleware

import (
	"context"
	"net/http"

	"github.com/tomtom215/prospector/internal/logging"
)

// RequestIDHeader is the header carrying the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength caps upstream-supplied IDs before they reach logs.
const maxRequestIDLength = 128

// RequestID middleware reuses an upstream X-Request-ID or generates a new
// one, echoes it in the response, and stores it in the request context
// together with a fresh correlation ID and a request-scoped logger carrying
// the method and path. logging.Ctx adds the IDs to that logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithCorrelationID(ctx, logging.GenerateCorrelationID())
		ctx = logging.ContextWithLogger(ctx, logging.With().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	return logging.RequestIDFromContext(ctx)
}
