// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/prospector/internal/segment"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/prospector/config.yaml",
	"/etc/prospector/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	eng := segment.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			DrainDelay:      2 * time.Second,
			Environment:     "production",
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Segment: SegmentConfig{
			Seed:                    eng.KMeans.Seed,
			NInit:                   eng.KMeans.NInit,
			MaxIterations:           eng.KMeans.MaxIterations,
			Tolerance:               eng.KMeans.Tolerance,
			DefaultAlgorithm:        eng.Defaults.Algorithm,
			DefaultNClusters:        eng.Defaults.NClusters,
			DefaultEps:              eng.Defaults.Eps,
			DefaultMinSamples:       eng.Defaults.MinSamples,
			MaxRecords:              eng.Limits.MaxRecords,
			MaxHierarchicalRecords:  eng.Limits.MaxHierarchicalRecords,
			HierarchicalWarnRecords: eng.Limits.HierarchicalWarnRecords,
			SilhouetteMaxRecords:    eng.Limits.SilhouetteMaxRecords,
			MaxConcurrent:           eng.Limits.MaxConcurrent,
			ResultCacheSize:         eng.Cache.Size,
			ResultCacheTTL:          eng.Cache.TTL,
		},
	}
}

// LoadWithKoanf loads configuration using a layered approach:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// Precedence is ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// HTTP_PORT -> server.port
	// SEGMENT_MAX_RECORDS -> segment.max_records
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML file or defaults)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"drain_delay":      "server.drain_delay",
	"environment":      "server.environment",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Segmentation engine
	"segment_seed":                      "segment.seed",
	"segment_n_init":                    "segment.n_init",
	"segment_max_iterations":            "segment.max_iterations",
	"segment_tolerance":                 "segment.tolerance",
	"segment_default_algorithm":         "segment.default_algorithm",
	"segment_default_n_clusters":        "segment.default_n_clusters",
	"segment_default_eps":               "segment.default_eps",
	"segment_default_min_samples":       "segment.default_min_samples",
	"segment_max_records":               "segment.max_records",
	"segment_max_hierarchical_records":  "segment.max_hierarchical_records",
	"segment_hierarchical_warn_records": "segment.hierarchical_warn_records",
	"segment_silhouette_max_records":    "segment.silhouette_max_records",
	"segment_max_concurrent":            "segment.max_concurrent",
	"segment_result_cache_size":         "segment.result_cache_size",
	"segment_result_cache_ttl":          "segment.result_cache_ttl",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DISABLE_RATE_LIMIT -> security.rate_limit_disabled
//   - SEGMENT_DEFAULT_EPS -> segment.default_eps
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so unrelated environment variables
	// never reach the config tree.
	return ""
}
