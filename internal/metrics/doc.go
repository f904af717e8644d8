// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Segmentation Metrics:
  - segmentation_runs_total: Runs by outcome (counter)
    Labels: algorithm, outcome (success, empty, rejected, error)
  - segmentation_duration_seconds: Successful run duration (histogram)
    Labels: algorithm
  - segmentation_records: Records per successful run (histogram)
  - segmentation_clusters: Clusters per successful run (histogram)
    Labels: algorithm
  - segmentation_noise_points_total: Records labeled as outliers (counter)
  - segmentation_silhouette_score: Quality of the latest run (gauge)
    Labels: algorithm

Pool Metrics:
  - segmentation_pool_in_flight: Executing runs (gauge)
  - segmentation_pool_wait_seconds: Wait for a free slot (histogram)
  - segmentation_pool_rejected_total: Callers that gave up waiting (counter)

Result Cache Metrics:
  - segmentation_result_cache_lookups_total: Lookups by outcome (counter)
    Labels: result (hit, miss, shared, abandoned)
  - segmentation_result_cache_entries: Cached results (gauge)

# Usage

	start := time.Now()
	// ... run ...
	metrics.RecordSegmentation("kmeans", "success", time.Since(start), 120, 5, 0)

# Example Queries

	# p95 segmentation latency per algorithm
	histogram_quantile(0.95, sum by (le, algorithm) (rate(segmentation_duration_seconds_bucket[5m])))

	# Share of rejected requests
	sum(rate(segmentation_runs_total{outcome="rejected"}[5m])) / sum(rate(segmentation_runs_total[5m]))

# Thread Safety

All metric operations are thread-safe and can be called concurrently.
*/
package metrics
