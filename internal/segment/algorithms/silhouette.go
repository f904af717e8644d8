// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package algorithms

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Silhouette returns the mean silhouette coefficient of the non-noise rows
// of x under labels. ok is false when fewer than two clusters exist, in
// which case the coefficient is undefined.
//
// For each row, a is the mean distance to the other members of its cluster
// and b the lowest mean distance to any other cluster; the coefficient is
// (b-a)/max(a,b), and 0 for singleton clusters. Runs in O(n^2).
func Silhouette(x *mat.Dense, labels []int) (score float64, ok bool) {
	rows, _ := x.Dims()

	clusters := make(map[int]int)
	for _, l := range labels {
		if l != NoiseLabel {
			clusters[l]++
		}
	}
	if len(clusters) < 2 {
		return 0, false
	}

	var total float64
	var counted int
	sums := make(map[int]float64, len(clusters))

	for i := 0; i < rows; i++ {
		li := labels[i]
		if li == NoiseLabel {
			continue
		}
		counted++
		if clusters[li] == 1 {
			continue
		}

		for l := range sums {
			delete(sums, l)
		}
		ri := x.RawRowView(i)
		for j := 0; j < rows; j++ {
			if j == i || labels[j] == NoiseLabel {
				continue
			}
			sums[labels[j]] += floats.Distance(ri, x.RawRowView(j), 2)
		}

		a := sums[li] / float64(clusters[li]-1)
		b := math.Inf(1)
		for l, s := range sums {
			if l == li {
				continue
			}
			b = math.Min(b, s/float64(clusters[l]))
		}

		if denom := math.Max(a, b); denom > 0 {
			total += (b - a) / denom
		}
	}

	if counted == 0 {
		return 0, false
	}
	return total / float64(counted), true
}
