// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

/*
Package models defines the HTTP wire structures for Prospector.

  - APIResponse, Metadata, APIError: the envelope every endpoint returns
  - SegmentRequest, ProspectInput, ParamsInput: the segmentation request body
  - AlgorithmInfo, AlgorithmCatalog: the algorithm catalog
  - HealthResponse: liveness and readiness payloads

Segmentation results are returned as segment.Result inside the envelope's
data field; their shape is owned by the segment package.
*/
package models
