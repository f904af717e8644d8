// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package segment

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Scaler standardizes columns to zero mean and unit variance.
type Scaler struct {
	// Mean and Std hold the population statistics of each fitted column.
	Mean []float64
	Std  []float64
}

// FitScaler computes per-column population mean and standard deviation.
func FitScaler(x *mat.Dense) *Scaler {
	rows, cols := x.Dims()
	s := &Scaler{
		Mean: make([]float64, cols),
		Std:  make([]float64, cols),
	}
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		s.Mean[j], s.Std[j] = stat.PopMeanStdDev(col, nil)
	}
	return s
}

// Transform returns a standardized copy of x. Zero-variance columns are
// only centered.
func (s *Scaler) Transform(x *mat.Dense) *mat.Dense {
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols, nil)
	out.Apply(func(_, j int, v float64) float64 {
		v -= s.Mean[j]
		if s.Std[j] > 0 {
			v /= s.Std[j]
		}
		return v
	}, x)
	return out
}

// Standardize fits a scaler on x and applies it.
func Standardize(x *mat.Dense) *mat.Dense {
	return FitScaler(x).Transform(x)
}
