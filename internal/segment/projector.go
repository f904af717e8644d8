// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package segment

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/prospector/internal/segment/algorithms"
)

// projectionDims is the number of principal components kept.
const projectionDims = 2

const noiseColor = "rgba(0, 0, 0, 0.3)"

// Projection holds 2-D coordinates for every record and every center.
type Projection struct {
	Points  [][projectionDims]float64
	Centers [][projectionDims]float64
}

// Project maps x and the cluster centers onto the two leading principal
// components of x. Both are centered on the row mean of x.
//
// Each component's sign is chosen so that its largest-magnitude loading is
// positive. With fewer than two rows, or when x has fewer columns than
// components, the missing coordinates are zero.
func Project(x *mat.Dense, centers []algorithms.Center) (*Projection, error) {
	rows, cols := x.Dims()
	p := &Projection{
		Points:  make([][projectionDims]float64, rows),
		Centers: make([][projectionDims]float64, len(centers)),
	}
	if rows < 2 {
		return p, nil
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)

	var eig mat.EigenSym
	if !eig.Factorize(&cov, true) {
		return nil, errors.New("projection: eigendecomposition did not converge")
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	ncomp := cols
	if ncomp > projectionDims {
		ncomp = projectionDims
	}

	// Eigenvalues are ascending, so the leading components are the last
	// columns.
	components := make([][]float64, ncomp)
	for c := 0; c < ncomp; c++ {
		comp := mat.Col(nil, cols-1-c, &vecs)
		flipSign(comp)
		components[c] = comp
	}

	mean := make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		mean[j] = stat.Mean(col, nil)
	}

	for i := 0; i < rows; i++ {
		p.Points[i] = projectRow(x.RawRowView(i), mean, components)
	}
	for i, c := range centers {
		if len(c.Point) != cols {
			return nil, fmt.Errorf("projection: center %d has %d dims, want %d", c.Label, len(c.Point), cols)
		}
		p.Centers[i] = projectRow(c.Point, mean, components)
	}
	return p, nil
}

func projectRow(row, mean []float64, components [][]float64) [projectionDims]float64 {
	var out [projectionDims]float64
	for c, comp := range components {
		var v float64
		for j, w := range comp {
			v += (row[j] - mean[j]) * w
		}
		out[c] = v
	}
	return out
}

// flipSign negates v in place if its largest-magnitude entry is negative.
// The first entry wins among equal magnitudes.
func flipSign(v []float64) {
	best := 0
	for i := range v {
		if math.Abs(v[i]) > math.Abs(v[best]) {
			best = i
		}
	}
	if len(v) > 0 && v[best] < 0 {
		for i := range v {
			v[i] = -v[i]
		}
	}
}

// buildVisualization groups projected points into one dataset per label in
// ascending label order, noise first. Points keep input order within a
// dataset. Centers follow the same label order.
func buildVisualization(labels []int, proj *Projection, centers []algorithms.Center) Visualization {
	byLabel := make(map[int][]Point)
	for i, l := range labels {
		pt := proj.Points[i]
		byLabel[l] = append(byLabel[l], Point{X: pt[0], Y: pt[1]})
	}

	keys := make([]int, 0, len(byLabel))
	for l := range byLabel {
		keys = append(keys, l)
	}
	sort.Ints(keys)

	v := Visualization{
		Datasets: make([]Dataset, 0, len(keys)),
		Centers:  make([]Point, 0, len(centers)),
	}
	for _, l := range keys {
		v.Datasets = append(v.Datasets, Dataset{
			Label:           segmentName(l),
			Data:            byLabel[l],
			BackgroundColor: segmentColor(l),
		})
	}
	for i := range centers {
		c := proj.Centers[i]
		v.Centers = append(v.Centers, Point{X: c[0], Y: c[1]})
	}
	return v
}

func segmentName(label int) string {
	if label == algorithms.NoiseLabel {
		return "Outliers"
	}
	return fmt.Sprintf("Segment %d", label+1)
}

func segmentColor(label int) string {
	if label == algorithms.NoiseLabel {
		return noiseColor
	}
	return fmt.Sprintf("rgba(%d, %d, %d, 0.5)", (label*50)%256, (label*100)%256, (label*150)%256)
}
