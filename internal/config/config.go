// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package config

import (
	"time"

	"github.com/tomtom215/prospector/internal/logging"
	"github.com/tomtom215/prospector/internal/segment"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Segment  SegmentConfig  `koanf:"segment"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	DrainDelay      time.Duration `koanf:"drain_delay"` // readiness-off period before the listener closes
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json, console
	Caller bool   `koanf:"caller"` // include file:line in log output
}

// SegmentConfig holds segmentation engine settings.
type SegmentConfig struct {
	// k-means tuning
	Seed          int64   `koanf:"seed"`
	NInit         int     `koanf:"n_init"`
	MaxIterations int     `koanf:"max_iterations"`
	Tolerance     float64 `koanf:"tolerance"`

	// Request defaults
	DefaultAlgorithm  string  `koanf:"default_algorithm"`
	DefaultNClusters  int     `koanf:"default_n_clusters"`
	DefaultEps        float64 `koanf:"default_eps"`
	DefaultMinSamples int     `koanf:"default_min_samples"`

	// Operational limits
	MaxRecords              int `koanf:"max_records"`
	MaxHierarchicalRecords  int `koanf:"max_hierarchical_records"`
	HierarchicalWarnRecords int `koanf:"hierarchical_warn_records"`
	SilhouetteMaxRecords    int `koanf:"silhouette_max_records"`
	MaxConcurrent           int `koanf:"max_concurrent"`

	// Result cache
	ResultCacheSize int           `koanf:"result_cache_size"`
	ResultCacheTTL  time.Duration `koanf:"result_cache_ttl"`
}

// Load reads configuration from defaults, an optional config file, and
// environment variables. See LoadWithKoanf for precedence rules.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// EngineConfig converts the segment section into the engine's configuration.
func (s SegmentConfig) EngineConfig() *segment.Config {
	return &segment.Config{
		KMeans: segment.KMeansConfig{
			Seed:          s.Seed,
			NInit:         s.NInit,
			MaxIterations: s.MaxIterations,
			Tolerance:     s.Tolerance,
		},
		Defaults: segment.DefaultsConfig{
			Algorithm:  s.DefaultAlgorithm,
			NClusters:  s.DefaultNClusters,
			Eps:        s.DefaultEps,
			MinSamples: s.DefaultMinSamples,
		},
		Limits: segment.LimitsConfig{
			MaxRecords:              s.MaxRecords,
			MaxHierarchicalRecords:  s.MaxHierarchicalRecords,
			HierarchicalWarnRecords: s.HierarchicalWarnRecords,
			SilhouetteMaxRecords:    s.SilhouetteMaxRecords,
			MaxConcurrent:           s.MaxConcurrent,
		},
		Cache: segment.CacheConfig{
			Size: s.ResultCacheSize,
			TTL:  s.ResultCacheTTL,
		},
	}
}

// LoggerConfig converts the logging section into a logging.Config.
func (l LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}
