// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/prospector/internal/logging"
	"github.com/tomtom215/prospector/internal/models"
	"github.com/tomtom215/prospector/internal/segment"
	"github.com/tomtom215/prospector/internal/validation"
)

// CreateSegments handles POST /api/v1/segments.
//
// The body is decoded and validated, the record cap is enforced, and the
// request is handed to the segmenter. The request waits at most the
// handler timeout for a free slot; a started run always completes.
func (h *Handler) CreateSegments(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body models.SegmentRequest
	if err := decodeJSONBody(w, r, h.maxBodyBytes, &body); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation,
			"Request body must be a valid JSON segmentation request", nil, err)
		return
	}

	if verr := validateRequest(&body); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	if maxRecords := h.engineConfig.Limits.MaxRecords; len(body.Prospects) > maxRecords {
		respondValidationError(w, r, validation.NewRequestValidationError(
			validation.NewFieldError(
				"prospects", "max", strconv.Itoa(maxRecords), len(body.Prospects),
				fmt.Sprintf("prospects must contain at most %d records", maxRecords),
			),
		))
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := h.segmenter.Segment(ctx, toSegmentRequest(&body))
	if err != nil {
		f := classifySegmentError(err)
		if f.code == ErrCodeBusy {
			w.Header().Set("Retry-After", "1")
		}
		respondError(w, r, f.status, f.code, f.message, f.details, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("component", "api").
		Str("algorithm", result.Algorithm).
		Int("records", len(body.Prospects)).
		Int("segments", len(result.Segments)).
		Dur("duration", time.Since(start)).
		Msg("Segmentation request served")

	respondSuccess(w, r, start, result)
}

// ListAlgorithms handles GET /api/v1/segments/algorithms.
func (h *Handler) ListAlgorithms(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, time.Time{}, buildCatalog(h.engineConfig))
}

// buildCatalog lists every supported algorithm with the defaults it uses.
func buildCatalog(cfg *segment.Config) models.AlgorithmCatalog {
	algs := segment.Algorithms()
	infos := make([]models.AlgorithmInfo, 0, len(algs))
	for _, a := range algs {
		info := models.AlgorithmInfo{
			Name:             a.String(),
			UsesClusterCount: a.UsesClusterCount(),
		}
		if a.UsesClusterCount() {
			info.Parameters = map[string]float64{
				"n_clusters": float64(cfg.Defaults.NClusters),
			}
		} else {
			info.Parameters = map[string]float64{
				"eps":         cfg.Defaults.Eps,
				"min_samples": float64(cfg.Defaults.MinSamples),
			}
		}
		infos = append(infos, info)
	}

	return models.AlgorithmCatalog{
		Algorithms:       infos,
		DefaultAlgorithm: cfg.Defaults.Algorithm,
		DefaultNClusters: cfg.Defaults.NClusters,
		MaxRecords:       cfg.Limits.MaxRecords,
	}
}

// toSegmentRequest converts the wire request into an engine request.
func toSegmentRequest(body *models.SegmentRequest) segment.Request {
	prospects := make([]segment.Prospect, len(body.Prospects))
	for i, p := range body.Prospects {
		prospects[i] = segment.Prospect{
			ID:          p.ID,
			CompanySize: p.CompanySize,
			Industry:    p.Industry,
			JobTitle:    p.JobTitle,
			Seniority:   p.Seniority,
			Location:    p.Location,
		}
	}

	return segment.Request{
		Prospects: prospects,
		Algorithm: body.Algorithm,
		NClusters: body.NClusters,
		Params: segment.Params{
			Eps:        body.Params.Eps,
			MinSamples: body.Params.MinSamples,
		},
	}
}
