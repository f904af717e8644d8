// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package algorithms

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// HierarchicalConfig contains configuration for agglomerative clustering.
type HierarchicalConfig struct {
	// K is the number of clusters to cut the dendrogram into.
	K int
}

// Hierarchical implements Ward-linkage agglomerative clustering using the
// nearest-neighbor chain algorithm.
// Reference: "Modern hierarchical, agglomerative clustering algorithms"
// (Müllner, 2011)
//
// Distances are squared Euclidean and updated with the Lance-Williams
// recurrence for Ward's criterion:
//
//	d(k, i+j) = ((ni+nk)d(k,i) + (nj+nk)d(k,j) - nk*d(i,j)) / (ni+nj+nk)
//
// Ward linkage is reducible, so the chain produces the same dendrogram as
// greedy agglomeration. Merges are sorted by height and the first n-k are
// applied to obtain the flat clustering.
type Hierarchical struct {
	config HierarchicalConfig
}

// NewHierarchical creates an agglomerative clusterer.
func NewHierarchical(cfg HierarchicalConfig) *Hierarchical {
	return &Hierarchical{config: cfg}
}

// Name returns the algorithm identifier.
func (h *Hierarchical) Name() string {
	return "hierarchical"
}

// merge records one agglomeration step between two slots. A slot always
// contains the original point with the same index, so a and b double as
// representative points.
type merge struct {
	a, b   int
	height float64
}

// Cluster builds the Ward dendrogram and cuts it into K clusters.
func (h *Hierarchical) Cluster(x *mat.Dense) (*Result, error) {
	rows, _ := x.Dims()
	if rows == 0 {
		return nil, fmt.Errorf("hierarchical: empty input")
	}
	if h.config.K < 1 || h.config.K > rows {
		return nil, fmt.Errorf("hierarchical: k must be in [1, %d], got %d", rows, h.config.K)
	}

	merges := wardChain(x)
	sort.SliceStable(merges, func(i, j int) bool {
		return merges[i].height < merges[j].height
	})

	uf := newUnionFind(rows)
	for _, m := range merges[:rows-h.config.K] {
		uf.union(m.a, m.b)
	}

	labels := make([]int, rows)
	for i := range labels {
		labels[i] = uf.find(i)
	}

	return newResult(x, relabelByFirstAppearance(labels)), nil
}

// wardChain runs the nearest-neighbor chain over a condensed distance matrix
// and returns the n-1 merges in the order they were performed.
func wardChain(x *mat.Dense) []merge {
	n, _ := x.Dims()
	if n < 2 {
		return nil
	}

	dist := newCondensed(n)
	for i := 0; i < n; i++ {
		ri := x.RawRowView(i)
		for j := i + 1; j < n; j++ {
			dist.set(i, j, sqDist(ri, x.RawRowView(j)))
		}
	}

	size := make([]int, n)
	active := make([]bool, n)
	for i := range size {
		size[i] = 1
		active[i] = true
	}

	merges := make([]merge, 0, n-1)
	chain := make([]int, 0, n)
	next := 0 // lowest slot that may still be active

	for len(merges) < n-1 {
		if len(chain) == 0 {
			for !active[next] {
				next++
			}
			chain = append(chain, next)
		}

		a := chain[len(chain)-1]
		prev := -1
		if len(chain) > 1 {
			prev = chain[len(chain)-2]
		}

		// Nearest active neighbor of a; prefer prev on ties so the chain
		// terminates, otherwise the lowest index.
		b := -1
		best := math.Inf(1)
		if prev >= 0 {
			b, best = prev, dist.get(a, prev)
		}
		for k := 0; k < n; k++ {
			if !active[k] || k == a {
				continue
			}
			if d := dist.get(a, k); d < best {
				b, best = k, d
			}
		}

		if b != prev {
			chain = append(chain, b)
			continue
		}

		chain = chain[:len(chain)-2]
		keep, drop := a, b
		if drop < keep {
			keep, drop = drop, keep
		}
		merges = append(merges, merge{a: keep, b: drop, height: best})

		ni, nj := float64(size[keep]), float64(size[drop])
		for k := 0; k < n; k++ {
			if !active[k] || k == keep || k == drop {
				continue
			}
			nk := float64(size[k])
			d := ((ni+nk)*dist.get(k, keep) + (nj+nk)*dist.get(k, drop) - nk*best) / (ni + nj + nk)
			dist.set(k, keep, d)
		}
		size[keep] += size[drop]
		active[drop] = false
	}

	return merges
}

// condensed stores the upper triangle of a symmetric n*n matrix.
type condensed struct {
	n    int
	data []float64
}

func newCondensed(n int) *condensed {
	return &condensed{n: n, data: make([]float64, n*(n-1)/2)}
}

func (c *condensed) index(i, j int) int {
	if i > j {
		i, j = j, i
	}
	return i*c.n - i*(i+1)/2 + (j - i - 1)
}

func (c *condensed) get(i, j int) float64 {
	return c.data[c.index(i, j)]
}

func (c *condensed) set(i, j int, v float64) {
	c.data[c.index(i, j)] = v
}

type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
}
