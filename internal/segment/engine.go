// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package segment

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/tomtom215/prospector/internal/logging"
	"github.com/tomtom215/prospector/internal/metrics"
	"github.com/tomtom215/prospector/internal/segment/algorithms"
)

// Run outcomes reported to metrics.
const (
	outcomeSuccess  = "success"
	outcomeEmpty    = "empty"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// Engine runs the segmentation pipeline. It holds no per-call state and is
// safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a segmentation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "segment").Logger(),
	}, nil
}

// Config returns the engine configuration. Callers must not modify it.
func (e *Engine) Config() *Config {
	return e.config
}

// Segment clusters req.Prospects and returns the segments with their
// projection.
//
// The algorithm tag is resolved first; an unknown tag fails with
// ErrUnsupportedAlgorithm before anything else is examined. An empty batch
// returns an empty result without running the pipeline. Parameters are
// validated next and reported as *ParameterError.
func (e *Engine) Segment(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	tag := req.Algorithm
	if tag == "" {
		tag = e.config.Defaults.Algorithm
	}
	alg, err := ParseAlgorithm(tag)
	if err != nil {
		metrics.RecordSegmentation("unknown", outcomeRejected, time.Since(start), len(req.Prospects), 0, 0)
		return nil, err
	}
	tag = alg.String()

	log := e.logger.With().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("algorithm", tag).
		Int("records", len(req.Prospects)).
		Logger()

	if len(req.Prospects) == 0 {
		metrics.RecordSegmentation(tag, outcomeEmpty, time.Since(start), 0, 0, 0)
		log.Debug().Msg("empty batch, nothing to segment")
		return &Result{
			Segments:  []Segment{},
			NClusters: 0,
			Algorithm: tag,
		}, nil
	}

	clusterer, err := e.newClusterer(alg, &req, &log)
	if err != nil {
		metrics.RecordSegmentation(tag, outcomeRejected, time.Since(start), len(req.Prospects), 0, 0)
		log.Debug().Err(err).Msg("request rejected")
		return nil, err
	}

	result, noise, err := e.run(clusterer, req.Prospects, &log)
	if err != nil {
		metrics.RecordSegmentation(tag, outcomeError, time.Since(start), len(req.Prospects), 0, 0)
		log.Error().Err(err).Msg("segmentation failed")
		return nil, err
	}
	result.Algorithm = tag

	duration := time.Since(start)
	metrics.RecordSegmentation(tag, outcomeSuccess, duration, len(req.Prospects), result.NClusters, noise)
	log.Info().
		Int("clusters", result.NClusters).
		Int("noise", noise).
		Dur("duration", duration).
		Msg("segmentation completed")

	return result, nil
}

// run executes the numeric pipeline and returns the result along with the
// number of noise points.
func (e *Engine) run(clusterer algorithms.Clusterer, prospects []Prospect, log *zerolog.Logger) (*Result, int, error) {
	features := ExtractFeatures(prospects)
	scaled := Standardize(features.Matrix)

	if km, ok := clusterer.(*algorithms.KMeans); ok {
		if eff := km.EffectiveK(scaled); eff < km.K() {
			log.Warn().
				Int("requested", km.K()).
				Int("effective", eff).
				Msg("fewer distinct records than requested clusters, reducing cluster count")
		}
	}

	clustering, err := clusterer.Cluster(scaled)
	if err != nil {
		return nil, 0, fmt.Errorf("cluster: %w", err)
	}

	proj, err := Project(scaled, clustering.Centers)
	if err != nil {
		return nil, 0, fmt.Errorf("project: %w", err)
	}

	noise := 0
	for _, l := range clustering.Labels {
		if l == algorithms.NoiseLabel {
			noise++
		}
	}

	e.scoreQuality(scaled, clustering, clusterer.Name(), log)

	return &Result{
		Segments:          synthesizeSegments(prospects, scaled, features.Names, clustering),
		VisualizationData: buildVisualization(clustering.Labels, proj, clustering.Centers),
		NClusters:         clustering.NumClusters(),
	}, noise, nil
}

// scoreQuality logs and exports the silhouette coefficient when the batch is
// small enough for the quadratic computation.
func (e *Engine) scoreQuality(x *mat.Dense, res *algorithms.Result, name string, log *zerolog.Logger) {
	rows, _ := x.Dims()
	limit := e.config.Limits.SilhouetteMaxRecords
	if limit == 0 || rows > limit {
		return
	}
	score, ok := algorithms.Silhouette(x, res.Labels)
	if !ok {
		return
	}
	metrics.SetSilhouetteScore(name, score)
	log.Debug().Float64("silhouette", score).Msg("cluster quality")
}

// newClusterer resolves request parameters against the configured defaults,
// validates them for a batch of len(req.Prospects) records and builds the
// clusterer for alg.
func (e *Engine) newClusterer(alg Algorithm, req *Request, log *zerolog.Logger) (algorithms.Clusterer, error) {
	n := len(req.Prospects)
	if n > e.config.Limits.MaxRecords {
		return nil, &ParameterError{
			Param:  "prospects",
			Value:  n,
			Reason: fmt.Sprintf("at most %d records per request", e.config.Limits.MaxRecords),
		}
	}

	switch alg {
	case KMeans:
		k, err := e.clusterCount(req.NClusters, n)
		if err != nil {
			return nil, err
		}
		return algorithms.NewKMeans(algorithms.KMeansConfig{
			K:             k,
			Seed:          e.config.KMeans.Seed,
			NumInit:       e.config.KMeans.NInit,
			MaxIterations: e.config.KMeans.MaxIterations,
			Tolerance:     e.config.KMeans.Tolerance,
		}), nil

	case DBSCAN:
		cfg := algorithms.DBSCANConfig{
			Eps:        e.config.Defaults.Eps,
			MinSamples: e.config.Defaults.MinSamples,
		}
		if req.Params.Eps != nil {
			cfg.Eps = *req.Params.Eps
		}
		if req.Params.MinSamples != nil {
			cfg.MinSamples = *req.Params.MinSamples
		}
		if !(cfg.Eps > 0) || math.IsInf(cfg.Eps, 0) {
			return nil, &ParameterError{Param: "eps", Value: cfg.Eps, Reason: "must be a positive finite number"}
		}
		if cfg.MinSamples < 1 {
			return nil, &ParameterError{Param: "min_samples", Value: cfg.MinSamples, Reason: "must be at least 1"}
		}
		return algorithms.NewDBSCAN(cfg), nil

	case Hierarchical:
		if n > e.config.Limits.MaxHierarchicalRecords {
			return nil, &ParameterError{
				Param:  "prospects",
				Value:  n,
				Reason: fmt.Sprintf("hierarchical accepts at most %d records", e.config.Limits.MaxHierarchicalRecords),
			}
		}
		k, err := e.clusterCount(req.NClusters, n)
		if err != nil {
			return nil, err
		}
		if n > e.config.Limits.HierarchicalWarnRecords {
			log.Warn().
				Int("threshold", e.config.Limits.HierarchicalWarnRecords).
				Msg("large batch for hierarchical clustering, expect quadratic memory use")
		}
		return algorithms.NewHierarchical(algorithms.HierarchicalConfig{K: k}), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}
}

// clusterCount applies the default to an unset count and checks it against
// the batch size.
func (e *Engine) clusterCount(requested, n int) (int, error) {
	k := requested
	if k == 0 {
		k = e.config.Defaults.NClusters
	}
	if k < 1 || k > n {
		return 0, &ParameterError{
			Param:  "n_clusters",
			Value:  k,
			Reason: fmt.Sprintf("must be between 1 and the record count (%d)", n),
		}
	}
	return k, nil
}
