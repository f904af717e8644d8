// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package algorithms

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NoiseLabel marks points that belong to no dense region. Only DBSCAN
// produces it.
const NoiseLabel = -1

// Clusterer partitions the rows of a matrix into labeled groups.
type Clusterer interface {
	// Name returns the algorithm identifier (e.g., "kmeans", "dbscan").
	Name() string

	// Cluster assigns a label to every row of x and computes one center per
	// distinct label. x must have at least one row.
	Cluster(x *mat.Dense) (*Result, error)
}

// Center is the representative point of one label in the input space.
type Center struct {
	// Label is the cluster label, or NoiseLabel for the synthetic noise center.
	Label int

	// Point has one coordinate per input column.
	Point []float64
}

// Result is the output of a clustering run.
type Result struct {
	// Labels has one entry per input row.
	Labels []int

	// Centers is sorted by ascending label. When noise is present the first
	// entry carries NoiseLabel and holds the mean of all rows.
	Centers []Center
}

// NumClusters returns the number of distinct non-noise labels.
func (r *Result) NumClusters() int {
	n := 0
	for _, c := range r.Centers {
		if c.Label != NoiseLabel {
			n++
		}
	}
	return n
}

// HasNoise reports whether any row was labeled as noise.
func (r *Result) HasNoise() bool {
	return len(r.Centers) > 0 && r.Centers[0].Label == NoiseLabel
}

// Center returns the center for a label.
func (r *Result) Center(label int) ([]float64, bool) {
	for _, c := range r.Centers {
		if c.Label == label {
			return c.Point, true
		}
	}
	return nil, false
}

// newResult computes member-mean centers for labels and packages them.
// The noise center is the mean of every row, not only the noise rows.
func newResult(x *mat.Dense, labels []int) *Result {
	rows, cols := x.Dims()

	sums := make(map[int][]float64)
	counts := make(map[int]int)
	all := make([]float64, cols)
	hasNoise := false

	for i := 0; i < rows; i++ {
		row := x.RawRowView(i)
		floats.Add(all, row)

		label := labels[i]
		if label == NoiseLabel {
			hasNoise = true
			continue
		}
		sum, ok := sums[label]
		if !ok {
			sum = make([]float64, cols)
			sums[label] = sum
		}
		floats.Add(sum, row)
		counts[label]++
	}

	keys := make([]int, 0, len(sums))
	for label := range sums {
		keys = append(keys, label)
	}
	sort.Ints(keys)

	centers := make([]Center, 0, len(keys)+1)
	if hasNoise {
		floats.Scale(1/float64(rows), all)
		centers = append(centers, Center{Label: NoiseLabel, Point: all})
	}
	for _, label := range keys {
		sum := sums[label]
		floats.Scale(1/float64(counts[label]), sum)
		centers = append(centers, Center{Label: label, Point: sum})
	}

	return &Result{Labels: labels, Centers: centers}
}

// relabelByFirstAppearance renumbers non-noise labels to 0..m-1 in the order
// they first occur. Noise labels are preserved.
func relabelByFirstAppearance(labels []int) []int {
	mapping := make(map[int]int)
	out := make([]int, len(labels))
	for i, label := range labels {
		if label == NoiseLabel {
			out[i] = NoiseLabel
			continue
		}
		next, ok := mapping[label]
		if !ok {
			next = len(mapping)
			mapping[label] = next
		}
		out[i] = next
	}
	return out
}

// sqDist returns the squared Euclidean distance between a and b.
func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// countDistinctRows returns the number of distinct rows in x, stopping early
// once limit is reached.
func countDistinctRows(x *mat.Dense, limit int) int {
	rows, _ := x.Dims()
	seen := make([][]float64, 0, limit)
	for i := 0; i < rows && len(seen) < limit; i++ {
		row := x.RawRowView(i)
		dup := false
		for _, s := range seen {
			if floats.Equal(s, row) {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, row)
		}
	}
	return len(seen)
}
