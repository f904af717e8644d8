// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package segment

import (
	"fmt"
	"strings"
)

// Prospect is one business-contact record. Nil attributes are treated as the
// category "unknown".
type Prospect struct {
	ID          int     `json:"id"`
	CompanySize *string `json:"company_size,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	JobTitle    *string `json:"job_title,omitempty"`
	Seniority   *string `json:"seniority,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// Algorithm identifies a clustering strategy.
type Algorithm int

const (
	// KMeans partitions into a fixed number of clusters.
	KMeans Algorithm = iota + 1

	// DBSCAN finds dense regions and labels the rest as outliers.
	DBSCAN

	// Hierarchical merges records bottom-up with Ward linkage.
	Hierarchical
)

// String returns the wire tag of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case KMeans:
		return "kmeans"
	case DBSCAN:
		return "dbscan"
	case Hierarchical:
		return "hierarchical"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// UsesClusterCount reports whether the algorithm takes a requested cluster
// count.
func (a Algorithm) UsesClusterCount() bool {
	return a == KMeans || a == Hierarchical
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{KMeans, DBSCAN, Hierarchical}
}

// ParseAlgorithm resolves a wire tag. Matching is exact.
func ParseAlgorithm(tag string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if a.String() == tag {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedAlgorithm, tag, supportedTags())
}

func supportedTags() string {
	tags := make([]string, 0, len(Algorithms()))
	for _, a := range Algorithms() {
		tags = append(tags, a.String())
	}
	return strings.Join(tags, ", ")
}

// Params is the parameter bag for the density algorithm. Nil fields take
// the configured defaults.
type Params struct {
	Eps        *float64 `json:"eps,omitempty"`
	MinSamples *int     `json:"min_samples,omitempty"`
}

// Request is one segmentation call.
type Request struct {
	// Prospects is the ordered batch to segment.
	Prospects []Prospect

	// Algorithm is the wire tag. Empty selects the configured default.
	Algorithm string

	// NClusters is the requested cluster count for kmeans and hierarchical.
	// Zero selects the configured default.
	NClusters int

	// Params holds dbscan parameters.
	Params Params
}

// Result is the output of a segmentation call.
type Result struct {
	Segments          []Segment     `json:"segments"`
	VisualizationData Visualization `json:"visualization_data"`
	NClusters         int           `json:"n_clusters"`
	Algorithm         string        `json:"algorithm"`
}

// Segment describes one cluster, or the outliers when SegmentID is -1.
type Segment struct {
	SegmentID   int    `json:"segment_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Size        int    `json:"size"`
	Prospects   []int  `json:"prospects"`
}

// Visualization is the 2-D projection of a run. The zero value marshals to
// an empty object.
type Visualization struct {
	Datasets []Dataset `json:"datasets,omitempty"`
	Centers  []Point   `json:"centers,omitempty"`
}

// Dataset holds the projected points of one label.
type Dataset struct {
	Label           string  `json:"label"`
	Data            []Point `json:"data"`
	BackgroundColor string  `json:"backgroundColor"`
}

// Point is a projected coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
