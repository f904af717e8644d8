// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package algorithms

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestHierarchical_SeparatedGroups(t *testing.T) {
	t.Parallel()

	x := blobs([][]float64{{0, 0}, {10, 10}, {-10, 10}}, 10, 0.5)

	res, err := NewHierarchical(HierarchicalConfig{K: 3}).Cluster(x)
	if err != nil {
		t.Fatalf("Cluster() error = %v", err)
	}
	if res.NumClusters() != 3 {
		t.Fatalf("NumClusters() = %d, want 3", res.NumClusters())
	}
	assertGroupsMatch(t, res.Labels, 10, 3)

	want := []int{0, 1, 2}
	got := []int{res.Labels[0], res.Labels[10], res.Labels[20]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("group labels = %v, want %v", got, want)
	}
}

func TestHierarchical_KEqualsRows(t *testing.T) {
	t.Parallel()

	x := mat.NewDense(4, 1, []float64{0, 1, 3, 7})
	res, err := NewHierarchical(HierarchicalConfig{K: 4}).Cluster(x)
	if err != nil {
		t.Fatalf("Cluster() error = %v", err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Labels, want) {
		t.Errorf("Labels = %v, want %v", res.Labels, want)
	}
}

func TestHierarchical_SingleCluster(t *testing.T) {
	t.Parallel()

	x := mat.NewDense(3, 1, []float64{0, 1, 3})
	res, err := NewHierarchical(HierarchicalConfig{K: 1}).Cluster(x)
	if err != nil {
		t.Fatalf("Cluster() error = %v", err)
	}
	if want := []int{0, 0, 0}; !reflect.DeepEqual(res.Labels, want) {
		t.Errorf("Labels = %v, want %v", res.Labels, want)
	}
}

func TestHierarchical_WardMergeOrder(t *testing.T) {
	t.Parallel()

	// 0 and 1 merge first, then {0,1} with 4, leaving 20 alone at k=2.
	x := mat.NewDense(4, 1, []float64{0, 1, 4, 20})
	res, err := NewHierarchical(HierarchicalConfig{K: 2}).Cluster(x)
	if err != nil {
		t.Fatalf("Cluster() error = %v", err)
	}
	if want := []int{0, 0, 0, 1}; !reflect.DeepEqual(res.Labels, want) {
		t.Errorf("Labels = %v, want %v", res.Labels, want)
	}
}

func TestHierarchical_InvalidK(t *testing.T) {
	t.Parallel()

	x := mat.NewDense(3, 1, []float64{0, 1, 2})
	for _, k := range []int{0, -1, 4} {
		if _, err := NewHierarchical(HierarchicalConfig{K: k}).Cluster(x); err == nil {
			t.Errorf("Cluster() with k=%d error = nil, want error", k)
		}
	}
}

func TestWardChain_MergeCount(t *testing.T) {
	t.Parallel()

	x := blobs([][]float64{{0, 0}, {5, 5}}, 7, 1)
	merges := wardChain(x)
	if len(merges) != 13 {
		t.Fatalf("len(merges) = %d, want 13", len(merges))
	}
	for _, m := range merges {
		if m.a >= m.b {
			t.Errorf("merge %+v: keep slot must be the lower index", m)
		}
		if m.height < 0 {
			t.Errorf("merge %+v: negative height", m)
		}
	}
}

func TestCondensedIndex(t *testing.T) {
	t.Parallel()

	c := newCondensed(4)
	seen := make(map[int]bool)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			idx := c.index(i, j)
			if idx != c.index(j, i) {
				t.Errorf("index(%d,%d) != index(%d,%d)", i, j, j, i)
			}
			if seen[idx] {
				t.Errorf("index(%d,%d) = %d collides", i, j, idx)
			}
			seen[idx] = true
		}
	}
	if len(seen) != len(c.data) {
		t.Errorf("covered %d slots, want %d", len(seen), len(c.data))
	}
}
