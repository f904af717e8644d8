// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package algorithms

import (
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// kdPoint is one matrix row tagged with its row index.
type kdPoint struct {
	idx int
	v   []float64
}

func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.v[d] - c.(kdPoint).v[d]
}

func (p kdPoint) Dims() int { return len(p.v) }

// Distance is the squared Euclidean distance, as kdtree expects.
func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	return sqDist(p.v, c.(kdPoint).v)
}

type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p kdPoints) Len() int                              { return len(p) }
func (p kdPoints) Pivot(d kdtree.Dim) int                { return kdPlane{kdPoints: p, Dim: d}.Pivot() }
func (p kdPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// kdPlane orders points along one axis for median selection.
type kdPlane struct {
	kdtree.Dim
	kdPoints
}

func (p kdPlane) Less(i, j int) bool { return p.kdPoints[i].v[p.Dim] < p.kdPoints[j].v[p.Dim] }
func (p kdPlane) Swap(i, j int)      { p.kdPoints[i], p.kdPoints[j] = p.kdPoints[j], p.kdPoints[i] }
func (p kdPlane) Pivot() int         { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.kdPoints = p.kdPoints[start:end]
	return p
}

// kdTree answers fixed-radius neighbor queries over the rows of a matrix.
type kdTree struct {
	rows int
	tree *kdtree.Tree
}

// newKDTree indexes every row of x.
func newKDTree(x *mat.Dense) *kdTree {
	rows, cols := x.Dims()
	t := &kdTree{rows: rows}
	if cols == 0 {
		return t
	}
	pts := make(kdPoints, rows)
	for i := range pts {
		pts[i] = kdPoint{idx: i, v: x.RawRowView(i)}
	}
	t.tree = kdtree.New(pts, false)
	return t
}

// radius returns the indices of all rows within Euclidean distance r of q
// (inclusive), in ascending index order.
func (t *kdTree) radius(q []float64, r float64) []int {
	if t.tree == nil {
		// Zero-width rows all sit at the origin.
		out := make([]int, t.rows)
		for i := range out {
			out[i] = i
		}
		return out
	}

	keep := kdtree.NewDistKeeper(r * r)
	t.tree.NearestSet(keep, kdPoint{idx: -1, v: q})

	out := make([]int, 0, keep.Len())
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		out = append(out, c.Comparable.(kdPoint).idx)
	}
	sort.Ints(out)
	return out
}
