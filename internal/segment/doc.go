// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

// Package segment turns batches of business-contact records into labeled
// segments with a two-dimensional projection for plotting.
//
// # Pipeline
//
// Every call runs the same stages over the submitted batch:
//
//  1. Feature extraction: ordinal encoding of company size and seniority,
//     TF-IDF encoding of industry, job title and location.
//  2. Standardization with the batch's population mean and deviation.
//  3. Clustering with the requested algorithm (see package algorithms).
//  4. Projection onto the two leading principal components.
//  5. Segment synthesis: size, members and the three features whose cluster
//     center deviates most from the batch mean.
//
// Feature names travel with the matrix in a FeatureSet, so descriptions are
// resolved by name rather than by column position.
//
// # Algorithms
//
// The algorithm tag is a closed set (see Algorithm). Unknown tags fail with
// ErrUnsupportedAlgorithm before any numeric work; out-of-range parameters
// fail with a *ParameterError that matches ErrInvalidParameter.
//
// # Usage
//
//	engine, err := segment.NewEngine(segment.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	result, err := engine.Segment(ctx, segment.Request{
//	    Prospects: prospects,
//	    Algorithm: "kmeans",
//	    NClusters: 3,
//	})
//
// # Thread Safety
//
// Engine keeps no per-call state and is safe for concurrent use. Pool bounds
// how many runs execute at once, and ResultCache in front of it serves
// repeated requests without another run:
//
//	var s segment.Segmenter = segment.NewPool(engine, cfg.Limits.MaxConcurrent)
//	s = segment.NewResultCache(s, cfg.Cache)
package segment
