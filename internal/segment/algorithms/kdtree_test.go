// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package algorithms

import (
	"math/rand"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestKDTree_RadiusMatchesBruteForce(t *testing.T) {
	t.Parallel()

	//nolint:gosec // deterministic test data
	rng := rand.New(rand.NewSource(1))
	const rows, cols = 300, 4
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	x := mat.NewDense(rows, cols, data)
	tree := newKDTree(x)

	for _, r := range []float64{0.1, 0.5, 1, 2.5} {
		for q := 0; q < rows; q += 37 {
			query := x.RawRowView(q)

			var want []int
			for i := 0; i < rows; i++ {
				if sqDist(query, x.RawRowView(i)) <= r*r {
					want = append(want, i)
				}
			}

			got := tree.radius(query, r)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("radius(row %d, %g) = %v, want %v", q, r, got, want)
			}
		}
	}
}

func TestKDTree_DuplicatePoints(t *testing.T) {
	t.Parallel()

	data := make([]float64, 40)
	x := mat.NewDense(40, 1, data)
	got := newKDTree(x).radius([]float64{0}, 0.1)
	if len(got) != 40 {
		t.Errorf("len(radius) = %d, want 40", len(got))
	}
}

func TestKDTree_ZeroColumns(t *testing.T) {
	t.Parallel()

	x := mat.NewDense(5, 1, nil).Slice(0, 5, 0, 0).(*mat.Dense)
	got := newKDTree(x).radius(nil, 0.5)
	if want := []int{0, 1, 2, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("radius() = %v, want %v", got, want)
	}
}

func TestKDTree_InclusiveBoundary(t *testing.T) {
	t.Parallel()

	x := mat.NewDense(3, 1, []float64{0, 1, 2})
	got := newKDTree(x).radius([]float64{0}, 1)
	if want := []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("radius() = %v, want %v", got, want)
	}
}
