// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package algorithms

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

// blobs returns perPoint points around each center, laid out on a small
// deterministic ring so tests do not depend on a random source.
func blobs(centers [][]float64, perCenter int, spread float64) *mat.Dense {
	cols := len(centers[0])
	data := make([]float64, 0, len(centers)*perCenter*cols)
	for _, c := range centers {
		for p := 0; p < perCenter; p++ {
			for d := 0; d < cols; d++ {
				offset := spread * float64((p+d)%5-2) / 2
				data = append(data, c[d]+offset)
			}
		}
	}
	return mat.NewDense(len(centers)*perCenter, cols, data)
}

// assertGroupsMatch checks that labels partition rows into the given
// consecutive groups, allowing any permutation of label values.
func assertGroupsMatch(t *testing.T, labels []int, groupSize, groups int) {
	t.Helper()

	seen := make(map[int]int)
	for g := 0; g < groups; g++ {
		want := labels[g*groupSize]
		for i := g * groupSize; i < (g+1)*groupSize; i++ {
			if labels[i] != want {
				t.Fatalf("row %d label = %d, want %d (same as group %d)", i, labels[i], want, g)
			}
		}
		if prev, dup := seen[want]; dup {
			t.Fatalf("groups %d and %d share label %d", prev, g, want)
		}
		seen[want] = g
	}
}

func distinctLabels(labels []int) map[int]int {
	out := make(map[int]int)
	for _, l := range labels {
		out[l]++
	}
	return out
}
