// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package segment

import (
	"gonum.org/v1/gonum/mat"
)

// unknownCategory replaces every missing attribute.
const unknownCategory = "unknown"

// maxTermsPerAttribute caps the TF-IDF vocabulary of each text attribute.
const maxTermsPerAttribute = 10

// companySizeLevels and seniorityLevels are ordinal scales; a value's index
// is its encoding. Values not listed encode as 0, the same as "unknown".
var (
	companySizeLevels = []string{
		unknownCategory, "1-10", "11-50", "51-200", "201-500",
		"501-1000", "1001-5000", "5001-10000", "10001+",
	}
	seniorityLevels = []string{
		unknownCategory, "entry", "junior", "mid", "senior", "executive", "c-level",
	}
)

var (
	companySizeOrdinal = ordinalIndex(companySizeLevels)
	seniorityOrdinal   = ordinalIndex(seniorityLevels)
)

func ordinalIndex(levels []string) map[string]float64 {
	m := make(map[string]float64, len(levels))
	for i, v := range levels {
		m[v] = float64(i)
	}
	return m
}

// textAttribute is one TF-IDF encoded column group.
type textAttribute struct {
	prefix string
	value  func(p *Prospect) *string
}

var textAttributes = []textAttribute{
	{prefix: "industry", value: func(p *Prospect) *string { return p.Industry }},
	{prefix: "job_title", value: func(p *Prospect) *string { return p.JobTitle }},
	{prefix: "location", value: func(p *Prospect) *string { return p.Location }},
}

// FeatureSet is a feature matrix with one name per column.
type FeatureSet struct {
	Matrix *mat.Dense
	Names  []string
}

// Index returns the column holding the named feature.
func (f *FeatureSet) Index(name string) (int, bool) {
	for i, n := range f.Names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// ExtractFeatures encodes prospects as one row each. Columns are
// company_size_num, seniority_num, then the retained TF-IDF terms of
// industry, job_title and location, each prefixed with the attribute name.
// prospects must not be empty.
func ExtractFeatures(prospects []Prospect) *FeatureSet {
	rows := len(prospects)

	names := []string{"company_size_num", "seniority_num"}
	columns := [][]float64{
		make([]float64, rows),
		make([]float64, rows),
	}
	for i := range prospects {
		columns[0][i] = companySizeOrdinal[orUnknown(prospects[i].CompanySize)]
		columns[1][i] = seniorityOrdinal[orUnknown(prospects[i].Seniority)]
	}

	docs := make([]string, rows)
	for _, attr := range textAttributes {
		for i := range prospects {
			docs[i] = orUnknown(attr.value(&prospects[i]))
		}
		enc := fitTFIDF(docs, maxTermsPerAttribute)
		for t, term := range enc.terms {
			names = append(names, attr.prefix+"_"+term)
			col := make([]float64, rows)
			for i := range col {
				col[i] = enc.weights[i][t]
			}
			columns = append(columns, col)
		}
	}

	m := mat.NewDense(rows, len(columns), nil)
	for j, col := range columns {
		m.SetCol(j, col)
	}
	return &FeatureSet{Matrix: m, Names: names}
}

func orUnknown(s *string) string {
	if s == nil {
		return unknownCategory
	}
	return *s
}
