// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Segmentation Run Metrics
	SegmentationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "segmentation_runs_total",
			Help: "Total number of segmentation runs by algorithm and outcome",
		},
		[]string{"algorithm", "outcome"}, // outcome: "success", "empty", "rejected", "error"
	)

	SegmentationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "segmentation_duration_seconds",
			Help:    "Duration of segmentation runs in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"algorithm"},
	)

	SegmentationRecords = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "segmentation_records",
			Help:    "Number of records per segmentation run",
			Buckets: []float64{1, 10, 50, 100, 250, 500, 1000, 2500, 5000},
		},
	)

	SegmentationClusters = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "segmentation_clusters",
			Help:    "Number of non-noise clusters produced per run",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 50},
		},
		[]string{"algorithm"},
	)

	SegmentationNoisePoints = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "segmentation_noise_points_total",
			Help: "Total number of records labeled as outliers",
		},
	)

	SegmentationSilhouette = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "segmentation_silhouette_score",
			Help: "Silhouette coefficient of the most recent run",
		},
		[]string{"algorithm"},
	)

	// Worker Pool Metrics
	PoolInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "segmentation_pool_in_flight",
			Help: "Number of segmentation runs currently executing",
		},
	)

	PoolWaitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "segmentation_pool_wait_seconds",
			Help:    "Time spent waiting for a free segmentation slot",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	PoolRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "segmentation_pool_rejected_total",
			Help: "Total number of requests that gave up waiting for a slot",
		},
	)

	// Result Cache Metrics
	ResultCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "segmentation_result_cache_lookups_total",
			Help: "Result cache lookups by outcome",
		},
		[]string{"result"}, // result: "hit", "miss", "shared", "abandoned"
	)

	ResultCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "segmentation_result_cache_entries",
			Help: "Number of cached segmentation results",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordSegmentation records the outcome of one segmentation run. Size
// metrics are only observed for successful runs.
func RecordSegmentation(algorithm, outcome string, duration time.Duration, records, clusters, noise int) {
	SegmentationRunsTotal.WithLabelValues(algorithm, outcome).Inc()
	if outcome != "success" {
		return
	}
	SegmentationDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	SegmentationRecords.Observe(float64(records))
	SegmentationClusters.WithLabelValues(algorithm).Observe(float64(clusters))
	if noise > 0 {
		SegmentationNoisePoints.Add(float64(noise))
	}
}

// SetSilhouetteScore publishes the latest cluster quality score
func SetSilhouetteScore(algorithm string, score float64) {
	SegmentationSilhouette.WithLabelValues(algorithm).Set(score)
}

// RecordPoolWait records how long a caller waited for a run slot
func RecordPoolWait(wait time.Duration, acquired bool) {
	PoolWaitDuration.Observe(wait.Seconds())
	if !acquired {
		PoolRejected.Inc()
	}
}

// TrackPoolInFlight tracks executing segmentation runs
func TrackPoolInFlight(inc bool) {
	if inc {
		PoolInFlight.Inc()
	} else {
		PoolInFlight.Dec()
	}
}

// RecordCacheLookup records a result cache lookup. result is "hit",
// "miss", "shared" for a caller that joined an identical in-flight run, or
// "abandoned" for a caller whose context ended while waiting.
func RecordCacheLookup(result string, entries int) {
	ResultCacheLookups.WithLabelValues(result).Inc()
	ResultCacheEntries.Set(float64(entries))
}
