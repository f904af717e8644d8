// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package segment

import (
	"testing"

	"github.com/rs/zerolog"
)

func strPtr(s string) *string { return &s }

func prospect(id int, size, industry, title, seniority, location string) Prospect {
	return Prospect{
		ID:          id,
		CompanySize: strPtr(size),
		Industry:    strPtr(industry),
		JobTitle:    strPtr(title),
		Seniority:   strPtr(seniority),
		Location:    strPtr(location),
	}
}

// threeGroups returns 30 prospects in three blocks of 10 identical records.
// IDs start at 100.
func threeGroups() []Prospect {
	profiles := [][5]string{
		{"1-10", "Retail", "Store Clerk", "entry", "Ohio"},
		{"1001-5000", "Banking", "Finance Director", "executive", "London"},
		{"10001+", "Software", "Staff Engineer", "c-level", "Tokyo"},
	}
	out := make([]Prospect, 0, 30)
	for g, p := range profiles {
		for i := 0; i < 10; i++ {
			out = append(out, prospect(100+g*10+i, p[0], p[1], p[2], p[3], p[4]))
		}
	}
	return out
}

// denseWithOutliers returns 20 identical prospects followed by 5 prospects
// that share nothing with them or with each other.
func denseWithOutliers() []Prospect {
	out := make([]Prospect, 0, 25)
	for i := 0; i < 20; i++ {
		out = append(out, prospect(i+1, "10001+", "Healthcare", "Nurse", "mid", "Boston"))
	}
	outliers := [][5]string{
		{"1-10", "Mining", "Geologist", "entry", "Perth"},
		{"11-50", "Fashion", "Designer", "junior", "Milan"},
		{"51-200", "Aviation", "Pilot", "senior", "Dubai"},
		{"201-500", "Farming", "Agronomist", "executive", "Iowa"},
		{"501-1000", "Shipping", "Captain", "c-level", "Rotterdam"},
	}
	for i, p := range outliers {
		out = append(out, prospect(21+i, p[0], p[1], p[2], p[3], p[4]))
	}
	return out
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

// assertPartition checks that every prospect id appears in exactly one
// segment.
func assertPartition(t *testing.T, prospects []Prospect, segments []Segment) {
	t.Helper()
	seen := make(map[int]int)
	for _, s := range segments {
		if s.Size != len(s.Prospects) {
			t.Errorf("segment %d: Size = %d, len(Prospects) = %d", s.SegmentID, s.Size, len(s.Prospects))
		}
		for _, id := range s.Prospects {
			seen[id]++
		}
	}
	for _, p := range prospects {
		if seen[p.ID] != 1 {
			t.Errorf("prospect %d appears in %d segments, want 1", p.ID, seen[p.ID])
		}
	}
	if len(seen) != len(prospects) {
		t.Errorf("segments reference %d ids, want %d", len(seen), len(prospects))
	}
}

func countPoints(v Visualization) int {
	n := 0
	for _, d := range v.Datasets {
		n += len(d.Data)
	}
	return n
}
