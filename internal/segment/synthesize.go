// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package segment

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/prospector/internal/segment/algorithms"
)

// topFeatureCount is the number of features named in a segment description.
const topFeatureCount = 3

const outlierDescription = "Prospects that don't fit well into other segments"

// synthesizeSegments builds one segment per label in ascending label order.
// x is the standardized matrix the clustering ran on; names labels its
// columns.
func synthesizeSegments(prospects []Prospect, x *mat.Dense, names []string, res *algorithms.Result) []Segment {
	members := make(map[int][]int)
	for i, l := range res.Labels {
		members[l] = append(members[l], prospects[i].ID)
	}

	rows, cols := x.Dims()
	mean := make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		mean[j] = stat.Mean(col, nil)
	}

	segments := make([]Segment, 0, len(res.Centers))
	for _, c := range res.Centers {
		ids := members[c.Label]
		seg := Segment{
			SegmentID: c.Label,
			Name:      segmentName(c.Label),
			Size:      len(ids),
			Prospects: ids,
		}
		if c.Label == algorithms.NoiseLabel {
			seg.Description = outlierDescription
		} else {
			seg.Description = describe(topFeatures(c.Point, mean, names, topFeatureCount))
		}
		segments = append(segments, seg)
	}
	return segments
}

// topFeatures returns the names of the n features whose center value is
// farthest from the batch mean, largest first. Equal scores keep column
// order.
func topFeatures(center, mean []float64, names []string, n int) []string {
	idx := make([]int, len(center))
	score := make([]float64, len(center))
	for j := range center {
		idx[j] = j
		score[j] = math.Abs(center[j] - mean[j])
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return score[idx[a]] > score[idx[b]]
	})
	if len(idx) > n {
		idx = idx[:n]
	}

	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = names[j]
	}
	return out
}

func describe(features []string) string {
	return "Characterized by " + strings.Join(features, ", ")
}
