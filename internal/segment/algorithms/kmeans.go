// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package algorithms

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// KMeansConfig contains configuration for k-means.
type KMeansConfig struct {
	// K is the requested number of clusters.
	K int

	// Seed initializes the random source used for k-means++ seeding.
	// Zero selects the default seed (42).
	Seed int64

	// NumInit is the number of seeded restarts; the run with the lowest
	// inertia wins.
	// Typical range: 1-20.
	NumInit int

	// MaxIterations caps Lloyd iterations per restart.
	MaxIterations int

	// Tolerance is the convergence threshold on the squared center shift,
	// relative to the mean per-column variance of the input.
	Tolerance float64
}

// DefaultKMeansConfig returns default k-means configuration.
func DefaultKMeansConfig() KMeansConfig {
	return KMeansConfig{
		K:             5,
		Seed:          42,
		NumInit:       10,
		MaxIterations: 300,
		Tolerance:     1e-4,
	}
}

// KMeans implements Lloyd's algorithm with k-means++ initialization.
type KMeans struct {
	config KMeansConfig
}

// NewKMeans creates a k-means clusterer. Zero-valued tuning fields fall back
// to defaults; K is taken as given and validated by Cluster.
func NewKMeans(cfg KMeansConfig) *KMeans {
	def := DefaultKMeansConfig()
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}
	if cfg.NumInit <= 0 {
		cfg.NumInit = def.NumInit
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = def.MaxIterations
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = def.Tolerance
	}
	return &KMeans{config: cfg}
}

// Name returns the algorithm identifier.
func (k *KMeans) Name() string {
	return "kmeans"
}

// K returns the requested number of clusters.
func (k *KMeans) K() int {
	return k.config.K
}

// EffectiveK returns the number of clusters the run will actually produce
// for x: the requested K, reduced to the number of distinct rows when the
// batch cannot fill K non-empty clusters.
func (k *KMeans) EffectiveK(x *mat.Dense) int {
	return countDistinctRows(x, k.config.K)
}

// Cluster runs NumInit seeded restarts and keeps the lowest-inertia result.
func (k *KMeans) Cluster(x *mat.Dense) (*Result, error) {
	rows, _ := x.Dims()
	if rows == 0 {
		return nil, fmt.Errorf("kmeans: empty input")
	}
	if k.config.K < 1 || k.config.K > rows {
		return nil, fmt.Errorf("kmeans: k must be in [1, %d], got %d", rows, k.config.K)
	}

	effK := k.EffectiveK(x)
	tol := k.config.Tolerance * meanColumnVariance(x)

	//nolint:gosec // math/rand is fine for deterministic seeding
	rng := rand.New(rand.NewSource(k.config.Seed))

	var bestLabels []int
	bestInertia := math.Inf(1)

	for run := 0; run < k.config.NumInit; run++ {
		centers := k.seedPlusPlus(x, effK, rng)
		labels, inertia := k.lloyd(x, centers, tol)
		if inertia < bestInertia {
			bestInertia = inertia
			bestLabels = labels
		}
	}

	return newResult(x, relabelByFirstAppearance(bestLabels)), nil
}

// seedPlusPlus picks k initial centers using greedy k-means++: each step
// samples 2+ln(k) candidates proportionally to squared distance and keeps
// the one that most reduces the potential.
func (k *KMeans) seedPlusPlus(x *mat.Dense, numClusters int, rng *rand.Rand) [][]float64 {
	rows, _ := x.Dims()
	trials := 2 + int(math.Log(float64(numClusters)))

	centers := make([][]float64, 0, numClusters)
	first := rng.Intn(rows)
	centers = append(centers, cloneRow(x, first))

	closest := make([]float64, rows)
	for i := 0; i < rows; i++ {
		closest[i] = sqDist(x.RawRowView(i), centers[0])
	}
	potential := floats.Sum(closest)

	candidate := make([]float64, rows)
	for len(centers) < numClusters {
		bestIdx := -1
		bestPotential := math.Inf(1)

		for t := 0; t < trials; t++ {
			idx := sampleWeighted(closest, potential, rng)
			c := x.RawRowView(idx)

			var p float64
			for i := 0; i < rows; i++ {
				d := sqDist(x.RawRowView(i), c)
				candidate[i] = math.Min(closest[i], d)
				p += candidate[i]
			}
			if p < bestPotential {
				bestPotential = p
				bestIdx = idx
			}
		}

		c := cloneRow(x, bestIdx)
		centers = append(centers, c)
		for i := 0; i < rows; i++ {
			closest[i] = math.Min(closest[i], sqDist(x.RawRowView(i), c))
		}
		potential = floats.Sum(closest)
	}

	return centers
}

// sampleWeighted draws an index with probability weights[i]/total. Points
// with zero weight (already a center) are never chosen unless every weight
// is zero.
func sampleWeighted(weights []float64, total float64, rng *rand.Rand) int {
	if total <= 0 {
		return rng.Intn(len(weights))
	}
	r := rng.Float64() * total
	var acc float64
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		last = i
		if r < acc {
			return i
		}
	}
	return last
}

// lloyd refines centers until the squared shift drops to tol or the
// iteration cap is hit. Returns the final labels and inertia.
func (k *KMeans) lloyd(x *mat.Dense, centers [][]float64, tol float64) ([]int, float64) {
	rows, cols := x.Dims()
	labels := make([]int, rows)
	dists := make([]float64, rows)

	for iter := 0; iter < k.config.MaxIterations; iter++ {
		assign(x, centers, labels, dists)

		next := make([][]float64, len(centers))
		counts := make([]int, len(centers))
		for c := range next {
			next[c] = make([]float64, cols)
		}
		for i := 0; i < rows; i++ {
			floats.Add(next[labels[i]], x.RawRowView(i))
			counts[labels[i]]++
		}

		k.reseedEmpty(x, next, counts, labels, dists)

		var shift float64
		for c := range next {
			if counts[c] > 0 {
				floats.Scale(1/float64(counts[c]), next[c])
			}
			shift += sqDist(centers[c], next[c])
		}
		centers = next

		if shift <= tol {
			break
		}
	}

	inertia := assign(x, centers, labels, dists)
	return labels, inertia
}

// reseedEmpty moves each empty cluster onto the point currently farthest
// from its assigned center. next holds unnormalized sums when called.
func (k *KMeans) reseedEmpty(x *mat.Dense, next [][]float64, counts, labels []int, dists []float64) {
	for c := range next {
		if counts[c] > 0 {
			continue
		}

		far := -1
		for i, d := range dists {
			if counts[labels[i]] <= 1 {
				continue
			}
			if far < 0 || d > dists[far] {
				far = i
			}
		}
		if far < 0 {
			continue
		}

		row := x.RawRowView(far)
		floats.Sub(next[labels[far]], row)
		counts[labels[far]]--
		copy(next[c], row)
		counts[c] = 1
		labels[far] = c
		dists[far] = 0
	}
}

// assign labels every row with its nearest center and returns the inertia.
// Ties go to the lowest center index.
func assign(x *mat.Dense, centers [][]float64, labels []int, dists []float64) float64 {
	rows, _ := x.Dims()
	var inertia float64
	for i := 0; i < rows; i++ {
		row := x.RawRowView(i)
		best := 0
		bestDist := sqDist(row, centers[0])
		for c := 1; c < len(centers); c++ {
			if d := sqDist(row, centers[c]); d < bestDist {
				best = c
				bestDist = d
			}
		}
		labels[i] = best
		dists[i] = bestDist
		inertia += bestDist
	}
	return inertia
}

// meanColumnVariance returns the average population variance of x's columns.
func meanColumnVariance(x *mat.Dense) float64 {
	rows, cols := x.Dims()
	if cols == 0 {
		return 0
	}
	col := make([]float64, rows)
	var sum float64
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		_, std := stat.PopMeanStdDev(col, nil)
		sum += std * std
	}
	return sum / float64(cols)
}

func cloneRow(x *mat.Dense, i int) []float64 {
	row := x.RawRowView(i)
	out := make([]float64, len(row))
	copy(out, row)
	return out
}
