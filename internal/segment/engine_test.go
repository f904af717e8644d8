// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package segment

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func TestNewEngine(t *testing.T) {
	t.Parallel()

	t.Run("nil config uses defaults", func(t *testing.T) {
		t.Parallel()
		e, err := NewEngine(nil, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewEngine(nil) error = %v", err)
		}
		if e.Config().Defaults.Algorithm != "kmeans" {
			t.Errorf("default algorithm = %q, want kmeans", e.Config().Defaults.Algorithm)
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.KMeans.NInit = 0
		if _, err := NewEngine(cfg, zerolog.Nop()); err == nil {
			t.Error("NewEngine() error = nil, want error")
		}
	})
}

func TestEngine_KMeansRecoversGroups(t *testing.T) {
	t.Parallel()

	prospects := threeGroups()
	res, err := newTestEngine(t).Segment(context.Background(), Request{
		Prospects: prospects,
		Algorithm: "kmeans",
		NClusters: 3,
	})
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}

	if res.NClusters != 3 {
		t.Errorf("NClusters = %d, want 3", res.NClusters)
	}
	if res.Algorithm != "kmeans" {
		t.Errorf("Algorithm = %q, want kmeans", res.Algorithm)
	}
	if len(res.Segments) != 3 {
		t.Fatalf("len(Segments) = %d, want 3", len(res.Segments))
	}

	for i, s := range res.Segments {
		if s.SegmentID != i {
			t.Errorf("Segments[%d].SegmentID = %d, want %d", i, s.SegmentID, i)
		}
		if s.Size != 10 {
			t.Errorf("Segments[%d].Size = %d, want 10", i, s.Size)
		}
		// Each block of IDs must land in one segment.
		block := (s.Prospects[0] - 100) / 10
		for _, id := range s.Prospects {
			if (id-100)/10 != block {
				t.Errorf("segment %d mixes blocks: %v", s.SegmentID, s.Prospects)
				break
			}
		}
	}
	assertPartition(t, prospects, res.Segments)

	if got := countPoints(res.VisualizationData); got != len(prospects) {
		t.Errorf("visualization points = %d, want %d", got, len(prospects))
	}
	if got := len(res.VisualizationData.Centers); got != 3 {
		t.Errorf("visualization centers = %d, want 3", got)
	}
}

func TestEngine_DBSCANOutliers(t *testing.T) {
	t.Parallel()

	prospects := denseWithOutliers()
	res, err := newTestEngine(t).Segment(context.Background(), Request{
		Prospects: prospects,
		Algorithm: "dbscan",
	})
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}

	if res.NClusters != 1 {
		t.Errorf("NClusters = %d, want 1", res.NClusters)
	}
	if len(res.Segments) != 2 {
		t.Fatalf("len(Segments) = %d, want 2", len(res.Segments))
	}

	outliers, dense := res.Segments[0], res.Segments[1]
	if outliers.SegmentID != -1 || outliers.Name != "Outliers" || outliers.Size != 5 {
		t.Errorf("outlier segment = %+v, want id -1, name Outliers, size 5", outliers)
	}
	if outliers.Description != "Prospects that don't fit well into other segments" {
		t.Errorf("outlier description = %q", outliers.Description)
	}
	if want := []int{21, 22, 23, 24, 25}; !reflect.DeepEqual(outliers.Prospects, want) {
		t.Errorf("outlier prospects = %v, want %v", outliers.Prospects, want)
	}
	if dense.SegmentID != 0 || dense.Name != "Segment 1" || dense.Size != 20 {
		t.Errorf("dense segment = %+v, want id 0, name Segment 1, size 20", dense)
	}
	assertPartition(t, prospects, res.Segments)

	vis := res.VisualizationData
	if len(vis.Datasets) != 2 {
		t.Fatalf("len(Datasets) = %d, want 2", len(vis.Datasets))
	}
	if vis.Datasets[0].Label != "Outliers" || vis.Datasets[0].BackgroundColor != "rgba(0, 0, 0, 0.3)" {
		t.Errorf("Datasets[0] = %q %q, want Outliers rgba(0, 0, 0, 0.3)",
			vis.Datasets[0].Label, vis.Datasets[0].BackgroundColor)
	}
	if vis.Datasets[1].Label != "Segment 1" || vis.Datasets[1].BackgroundColor != "rgba(0, 0, 0, 0.5)" {
		t.Errorf("Datasets[1] = %q %q, want Segment 1 rgba(0, 0, 0, 0.5)",
			vis.Datasets[1].Label, vis.Datasets[1].BackgroundColor)
	}
	if got := countPoints(vis); got != len(prospects) {
		t.Errorf("visualization points = %d, want %d", got, len(prospects))
	}
	// One center per cluster plus the synthetic noise center.
	if len(vis.Centers) != 2 {
		t.Errorf("len(Centers) = %d, want 2", len(vis.Centers))
	}
}

func TestEngine_Hierarchical(t *testing.T) {
	t.Parallel()

	prospects := threeGroups()
	res, err := newTestEngine(t).Segment(context.Background(), Request{
		Prospects: prospects,
		Algorithm: "hierarchical",
		NClusters: 3,
	})
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if res.NClusters != 3 {
		t.Errorf("NClusters = %d, want 3", res.NClusters)
	}
	// Labels follow first appearance, so the blocks keep their order.
	for i, s := range res.Segments {
		if s.Prospects[0] != 100+i*10 {
			t.Errorf("Segments[%d] starts with %d, want %d", i, s.Prospects[0], 100+i*10)
		}
	}
	assertPartition(t, prospects, res.Segments)
}

func TestEngine_UnsupportedAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
	}{
		{"with records", Request{Prospects: threeGroups(), Algorithm: "spectral", NClusters: 3}},
		{"empty records", Request{Algorithm: "spectral"}},
		{"before parameter checks", Request{Prospects: threeGroups(), Algorithm: "spectral", NClusters: -4}},
		{"case sensitive", Request{Prospects: threeGroups(), Algorithm: "KMeans"}},
	}

	e := newTestEngine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := e.Segment(context.Background(), tt.req)
			if !errors.Is(err, ErrUnsupportedAlgorithm) {
				t.Fatalf("Segment() error = %v, want ErrUnsupportedAlgorithm", err)
			}
			if res != nil {
				t.Errorf("Segment() result = %+v, want nil", res)
			}
		})
	}
}

func TestEngine_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, alg := range []string{"kmeans", "dbscan", "hierarchical"} {
		t.Run(alg, func(t *testing.T) {
			t.Parallel()
			// Invalid parameters are not examined for an empty batch.
			res, err := newTestEngine(t).Segment(context.Background(), Request{
				Algorithm: alg,
				NClusters: -1,
			})
			if err != nil {
				t.Fatalf("Segment() error = %v", err)
			}

			got, err := json.Marshal(res)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			want := `{"segments":[],"visualization_data":{},"n_clusters":0,"algorithm":"` + alg + `"}`
			if string(got) != want {
				t.Errorf("Marshal() = %s, want %s", got, want)
			}
		})
	}
}

func TestEngine_InvalidParameters(t *testing.T) {
	t.Parallel()

	negEps, zeroEps := -0.1, 0.0
	nanEps, infEps := math.NaN(), math.Inf(1)
	zeroSamples := 0

	tests := []struct {
		name      string
		req       Request
		wantParam string
	}{
		{"k above record count", Request{Prospects: threeGroups()[:4], Algorithm: "kmeans", NClusters: 5}, "n_clusters"},
		{"negative k", Request{Prospects: threeGroups(), Algorithm: "kmeans", NClusters: -1}, "n_clusters"},
		{"default k above record count", Request{Prospects: threeGroups()[:2], Algorithm: "hierarchical"}, "n_clusters"},
		{"negative eps", Request{Prospects: threeGroups(), Algorithm: "dbscan", Params: Params{Eps: &negEps}}, "eps"},
		{"zero eps", Request{Prospects: threeGroups(), Algorithm: "dbscan", Params: Params{Eps: &zeroEps}}, "eps"},
		{"nan eps", Request{Prospects: threeGroups(), Algorithm: "dbscan", Params: Params{Eps: &nanEps}}, "eps"},
		{"infinite eps", Request{Prospects: threeGroups(), Algorithm: "dbscan", Params: Params{Eps: &infEps}}, "eps"},
		{"zero min_samples", Request{Prospects: threeGroups(), Algorithm: "dbscan", Params: Params{MinSamples: &zeroSamples}}, "min_samples"},
	}

	e := newTestEngine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := e.Segment(context.Background(), tt.req)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("Segment() error = %v, want ErrInvalidParameter", err)
			}
			var pe *ParameterError
			if !errors.As(err, &pe) {
				t.Fatalf("Segment() error %T is not *ParameterError", err)
			}
			if pe.Param != tt.wantParam {
				t.Errorf("Param = %q, want %q", pe.Param, tt.wantParam)
			}
			if res != nil {
				t.Errorf("Segment() result = %+v, want nil", res)
			}
		})
	}
}

func TestEngine_RecordLimits(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Limits.MaxRecords = 20
	cfg.Limits.MaxHierarchicalRecords = 10
	cfg.Limits.HierarchicalWarnRecords = 5
	e, err := NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	_, err = e.Segment(context.Background(), Request{Prospects: threeGroups(), Algorithm: "kmeans", NClusters: 3})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("30 records over limit 20: error = %v, want ErrInvalidParameter", err)
	}

	_, err = e.Segment(context.Background(), Request{Prospects: threeGroups()[:15], Algorithm: "hierarchical", NClusters: 2})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("15 records over hierarchical limit 10: error = %v, want ErrInvalidParameter", err)
	}

	if _, err = e.Segment(context.Background(), Request{Prospects: threeGroups()[:8], Algorithm: "hierarchical", NClusters: 1}); err != nil {
		t.Errorf("8 records above warn threshold: error = %v, want nil", err)
	}
}

func TestEngine_Defaults(t *testing.T) {
	t.Parallel()

	prospects := append(threeGroups(), denseWithOutliers()...)
	res, err := newTestEngine(t).Segment(context.Background(), Request{Prospects: prospects})
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if res.Algorithm != "kmeans" {
		t.Errorf("Algorithm = %q, want kmeans", res.Algorithm)
	}
	if res.NClusters != 5 {
		t.Errorf("NClusters = %d, want 5", res.NClusters)
	}
	assertPartition(t, prospects, res.Segments)
}

func TestEngine_DuplicateRecordsReduceClusters(t *testing.T) {
	t.Parallel()

	prospects := threeGroups()[:4] // four identical records
	res, err := newTestEngine(t).Segment(context.Background(), Request{
		Prospects: prospects,
		Algorithm: "kmeans",
		NClusters: 3,
	})
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if res.NClusters != 1 {
		t.Errorf("NClusters = %d, want 1", res.NClusters)
	}
	assertPartition(t, prospects, res.Segments)
	if got := countPoints(res.VisualizationData); got != 4 {
		t.Errorf("visualization points = %d, want 4", got)
	}
}

func TestEngine_SingleRecord(t *testing.T) {
	t.Parallel()

	prospects := []Prospect{{ID: 7}}
	res, err := newTestEngine(t).Segment(context.Background(), Request{
		Prospects: prospects,
		Algorithm: "kmeans",
		NClusters: 1,
	})
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if len(res.Segments) != 1 || !reflect.DeepEqual(res.Segments[0].Prospects, []int{7}) {
		t.Errorf("Segments = %+v, want one segment with prospect 7", res.Segments)
	}
	if want := (Point{}); res.VisualizationData.Datasets[0].Data[0] != want {
		t.Errorf("single record projected to %+v, want origin", res.VisualizationData.Datasets[0].Data[0])
	}
}

func TestEngine_Deterministic(t *testing.T) {
	t.Parallel()

	prospects := append(threeGroups(), denseWithOutliers()...)
	req := Request{Prospects: prospects, Algorithm: "kmeans", NClusters: 4}

	e := newTestEngine(t)
	first, err := e.Segment(context.Background(), req)
	if err != nil {
		t.Fatalf("first Segment() error = %v", err)
	}
	second, err := e.Segment(context.Background(), req)
	if err != nil {
		t.Fatalf("second Segment() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated runs with identical input produced different results")
	}

	// A separate engine with the same seed must agree as well.
	third, err := newTestEngine(t).Segment(context.Background(), req)
	if err != nil {
		t.Fatalf("third Segment() error = %v", err)
	}
	if !reflect.DeepEqual(first, third) {
		t.Error("engines with the same seed produced different results")
	}
}
