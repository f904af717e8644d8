// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

// Package validation provides request validation using go-playground/validator v10.
//
// A single validator instance is built on first use and shared; it caches
// struct metadata and is safe for concurrent use. Field names in errors are
// taken from json tags, so messages name the wire field ("n_clusters")
// rather than the Go field.
//
// # Usage
//
//	type SegmentRequest struct {
//	    Prospects []ProspectInput `json:"prospects" validate:"required,dive"`
//	    NClusters int             `json:"n_clusters" validate:"min=0,max=1000"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// Checks that depend on runtime configuration, such as the record cap,
// use NewFieldError to produce the same VALIDATION_ERROR shape.
package validation
