// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package segment

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

// tfidfEncoding is a fitted TF-IDF vocabulary and the weights of the
// documents it was fitted on.
type tfidfEncoding struct {
	// terms is sorted alphabetically.
	terms []string

	// weights has one L2-normalized row per document, aligned with terms.
	weights [][]float64
}

func tokenize(doc string) []string {
	return tokenPattern.FindAllString(strings.ToLower(doc), -1)
}

// fitTFIDF builds a vocabulary of at most maxTerms terms from docs and
// weights each document against it.
//
// The vocabulary keeps the terms with the highest total count over all
// documents, ties broken alphabetically. Weights use raw term counts and
// smoothed idf, ln((1+n)/(1+df)) + 1, and each row is scaled to unit length.
// A document with no retained term gets a zero row.
func fitTFIDF(docs []string, maxTerms int) tfidfEncoding {
	counts := make([]map[string]int, len(docs))
	total := make(map[string]int)
	df := make(map[string]int)

	for i, doc := range docs {
		c := make(map[string]int)
		for _, tok := range tokenize(doc) {
			c[tok]++
		}
		for tok, n := range c {
			total[tok] += n
			df[tok]++
		}
		counts[i] = c
	}

	terms := make([]string, 0, len(total))
	for tok := range total {
		terms = append(terms, tok)
	}
	sort.Slice(terms, func(a, b int) bool {
		if total[terms[a]] != total[terms[b]] {
			return total[terms[a]] > total[terms[b]]
		}
		return terms[a] < terms[b]
	})
	if len(terms) > maxTerms {
		terms = terms[:maxTerms]
	}
	sort.Strings(terms)

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for t, term := range terms {
		idf[t] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	weights := make([][]float64, len(docs))
	for i, c := range counts {
		row := make([]float64, len(terms))
		var norm float64
		for t, term := range terms {
			w := float64(c[term]) * idf[t]
			row[t] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for t := range row {
				row[t] /= norm
			}
		}
		weights[i] = row
	}

	return tfidfEncoding{terms: terms, weights: weights}
}
