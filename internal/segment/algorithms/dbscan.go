// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package algorithms

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DBSCANConfig contains configuration for DBSCAN.
type DBSCANConfig struct {
	// Eps is the neighborhood radius (Euclidean, inclusive).
	Eps float64

	// MinSamples is the minimum neighborhood size, counting the point
	// itself, for a point to be a core point.
	MinSamples int
}

// DefaultDBSCANConfig returns default DBSCAN configuration.
func DefaultDBSCANConfig() DBSCANConfig {
	return DBSCANConfig{
		Eps:        0.5,
		MinSamples: 5,
	}
}

// DBSCAN implements density-based clustering.
// Reference: "A Density-Based Algorithm for Discovering Clusters in Large
// Spatial Databases with Noise" (Ester, Kriegel, Sander, Xu, 1996)
//
// Clusters are numbered in the order their first core point is reached
// when scanning rows in input order. A border point reachable from several
// clusters joins the first one to expand into it. Points reachable from no
// core point are labeled NoiseLabel.
type DBSCAN struct {
	config DBSCANConfig
}

// NewDBSCAN creates a DBSCAN clusterer. The configuration is validated by
// Cluster, not here, so callers can surface parameter errors per request.
func NewDBSCAN(cfg DBSCANConfig) *DBSCAN {
	return &DBSCAN{config: cfg}
}

// Name returns the algorithm identifier.
func (d *DBSCAN) Name() string {
	return "dbscan"
}

// Cluster labels every row as a cluster member or noise.
func (d *DBSCAN) Cluster(x *mat.Dense) (*Result, error) {
	rows, _ := x.Dims()
	if rows == 0 {
		return nil, fmt.Errorf("dbscan: empty input")
	}
	if !(d.config.Eps > 0) || math.IsInf(d.config.Eps, 0) {
		return nil, fmt.Errorf("dbscan: eps must be positive, got %g", d.config.Eps)
	}
	if d.config.MinSamples < 1 {
		return nil, fmt.Errorf("dbscan: min_samples must be at least 1, got %d", d.config.MinSamples)
	}

	tree := newKDTree(x)

	labels := make([]int, rows)
	for i := range labels {
		labels[i] = NoiseLabel
	}
	visited := make([]bool, rows)
	cluster := 0

	for i := 0; i < rows; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true

		neighbors := tree.radius(x.RawRowView(i), d.config.Eps)
		if len(neighbors) < d.config.MinSamples {
			continue
		}

		labels[i] = cluster
		d.expand(x, tree, neighbors, cluster, labels, visited)
		cluster++
	}

	return newResult(x, labels), nil
}

// expand grows a cluster breadth-first from the neighborhood of a core point.
func (d *DBSCAN) expand(x *mat.Dense, tree *kdTree, seeds []int, cluster int, labels []int, visited []bool) {
	queue := append([]int(nil), seeds...)
	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]

		if !visited[j] {
			visited[j] = true
			if next := tree.radius(x.RawRowView(j), d.config.Eps); len(next) >= d.config.MinSamples {
				queue = append(queue, next...)
			}
		}
		if labels[j] == NoiseLabel {
			labels[j] = cluster
		}
	}
}
