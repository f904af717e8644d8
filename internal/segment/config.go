// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package segment

import (
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/prospector/internal/segment/algorithms"
)

// Config contains all configuration for the segmentation engine.
type Config struct {
	// KMeans tunes the k-means restarts and convergence.
	KMeans KMeansConfig `json:"kmeans"`

	// Defaults apply to requests that leave a parameter unset.
	Defaults DefaultsConfig `json:"defaults"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Cache controls the result cache in front of the pool.
	Cache CacheConfig `json:"cache"`
}

// KMeansConfig tunes k-means.
type KMeansConfig struct {
	// Seed is the random seed for deterministic initialization.
	Seed int64 `json:"seed"`

	// NInit is the number of restarts.
	NInit int `json:"n_init"`

	// MaxIterations caps Lloyd iterations per restart.
	MaxIterations int `json:"max_iterations"`

	// Tolerance is the relative convergence threshold.
	Tolerance float64 `json:"tolerance"`
}

// DefaultsConfig holds request defaults.
type DefaultsConfig struct {
	// Algorithm is used when a request names none.
	Algorithm string `json:"algorithm"`

	// NClusters is used when a request asks for 0 clusters.
	NClusters int `json:"n_clusters"`

	// Eps and MinSamples fill an empty dbscan parameter bag.
	Eps        float64 `json:"eps"`
	MinSamples int     `json:"min_samples"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// MaxRecords is the largest accepted batch.
	MaxRecords int `json:"max_records"`

	// MaxHierarchicalRecords is the largest batch accepted by the
	// hierarchical algorithm, whose memory grows quadratically. It may not
	// exceed MaxRecords.
	MaxHierarchicalRecords int `json:"max_hierarchical_records"`

	// HierarchicalWarnRecords logs a warning above this batch size.
	HierarchicalWarnRecords int `json:"hierarchical_warn_records"`

	// SilhouetteMaxRecords skips the quality score above this batch size.
	// Zero disables the score.
	SilhouetteMaxRecords int `json:"silhouette_max_records"`

	// MaxConcurrent is the number of runs allowed at once.
	MaxConcurrent int `json:"max_concurrent"`
}

// CacheConfig sizes the result cache.
type CacheConfig struct {
	// Size is the number of results kept. Zero disables the cache.
	Size int `json:"size"`

	// TTL is how long a result stays valid.
	TTL time.Duration `json:"ttl"`
}

// DefaultConfig returns production-ready default configuration.
func DefaultConfig() *Config {
	km := algorithms.DefaultKMeansConfig()
	db := algorithms.DefaultDBSCANConfig()
	return &Config{
		KMeans: KMeansConfig{
			Seed:          km.Seed,
			NInit:         km.NumInit,
			MaxIterations: km.MaxIterations,
			Tolerance:     km.Tolerance,
		},
		Defaults: DefaultsConfig{
			Algorithm:  KMeans.String(),
			NClusters:  km.K,
			Eps:        db.Eps,
			MinSamples: db.MinSamples,
		},
		Limits: LimitsConfig{
			MaxRecords:              1000,
			MaxHierarchicalRecords:  1000,
			HierarchicalWarnRecords: 500,
			SilhouetteMaxRecords:    2000,
			MaxConcurrent:           4,
		},
		Cache: CacheConfig{
			Size: 256,
			TTL:  10 * time.Minute,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.KMeans.NInit <= 0 {
		return fmt.Errorf("kmeans.n_init must be positive, got %d", c.KMeans.NInit)
	}
	if c.KMeans.MaxIterations <= 0 {
		return fmt.Errorf("kmeans.max_iterations must be positive, got %d", c.KMeans.MaxIterations)
	}
	if c.KMeans.Tolerance <= 0 {
		return fmt.Errorf("kmeans.tolerance must be positive, got %g", c.KMeans.Tolerance)
	}

	if _, err := ParseAlgorithm(c.Defaults.Algorithm); err != nil {
		return fmt.Errorf("defaults.algorithm: %w", err)
	}
	if c.Defaults.NClusters <= 0 {
		return fmt.Errorf("defaults.n_clusters must be positive, got %d", c.Defaults.NClusters)
	}
	if !(c.Defaults.Eps > 0) || math.IsInf(c.Defaults.Eps, 0) {
		return fmt.Errorf("defaults.eps must be a positive finite number, got %g", c.Defaults.Eps)
	}
	if c.Defaults.MinSamples < 1 {
		return fmt.Errorf("defaults.min_samples must be at least 1, got %d", c.Defaults.MinSamples)
	}

	if c.Limits.MaxRecords <= 0 {
		return fmt.Errorf("limits.max_records must be positive, got %d", c.Limits.MaxRecords)
	}
	if c.Limits.MaxHierarchicalRecords <= 0 || c.Limits.MaxHierarchicalRecords > c.Limits.MaxRecords {
		return fmt.Errorf("limits.max_hierarchical_records must be in [1, %d], got %d",
			c.Limits.MaxRecords, c.Limits.MaxHierarchicalRecords)
	}
	if c.Limits.HierarchicalWarnRecords < 0 || c.Limits.HierarchicalWarnRecords > c.Limits.MaxHierarchicalRecords {
		return fmt.Errorf("limits.hierarchical_warn_records must be in [0, %d], got %d",
			c.Limits.MaxHierarchicalRecords, c.Limits.HierarchicalWarnRecords)
	}
	if c.Limits.SilhouetteMaxRecords < 0 {
		return fmt.Errorf("limits.silhouette_max_records must be non-negative, got %d", c.Limits.SilhouetteMaxRecords)
	}
	if c.Limits.MaxConcurrent <= 0 {
		return fmt.Errorf("limits.max_concurrent must be positive, got %d", c.Limits.MaxConcurrent)
	}

	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must be non-negative, got %d", c.Cache.Size)
	}
	if c.Cache.Size > 0 && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when the cache is enabled, got %v", c.Cache.TTL)
	}
	return nil
}
