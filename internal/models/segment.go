// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package models

// ProspectInput is one prospect as received over HTTP. Missing or null
// attributes are treated as unknown.
type ProspectInput struct {
	ID          int     `json:"id"`
	CompanySize *string `json:"company_size,omitempty" validate:"omitempty,max=256"`
	Industry    *string `json:"industry,omitempty" validate:"omitempty,max=256"`
	JobTitle    *string `json:"job_title,omitempty" validate:"omitempty,max=256"`
	Seniority   *string `json:"seniority,omitempty" validate:"omitempty,max=256"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=256"`
}

// ParamsInput carries algorithm-specific parameters.
type ParamsInput struct {
	Eps        *float64 `json:"eps,omitempty"`
	MinSamples *int     `json:"min_samples,omitempty"`
}

// SegmentRequest is the body of POST /api/v1/segments.
type SegmentRequest struct {
	Prospects []ProspectInput `json:"prospects" validate:"required,dive"`
	Algorithm string          `json:"algorithm,omitempty" validate:"max=64"`
	NClusters int             `json:"n_clusters,omitempty"`
	Params    ParamsInput     `json:"params"`
}

// AlgorithmInfo describes one supported clustering algorithm.
type AlgorithmInfo struct {
	Name             string             `json:"name"`
	UsesClusterCount bool               `json:"uses_cluster_count"`
	Parameters       map[string]float64 `json:"parameters,omitempty"`
}

// AlgorithmCatalog lists the supported algorithms and request defaults.
type AlgorithmCatalog struct {
	Algorithms       []AlgorithmInfo `json:"algorithms"`
	DefaultAlgorithm string          `json:"default_algorithm"`
	DefaultNClusters int             `json:"default_n_clusters"`
	MaxRecords       int             `json:"max_records"`
}
