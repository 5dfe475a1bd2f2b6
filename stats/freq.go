// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"strconv"
)

// A Freq is the number of occurrences of one exact value in a sample.
type Freq struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Label returns the value formatted for use as a category label.
func (f Freq) Label() string {
	return formatLabel(f.Value)
}

// Frequencies groups the values of s by exact numeric value and
// returns the count of each distinct value, in ascending order of
// value. Weights are ignored.
func Frequencies(s Sample) []Freq {
	counts := make(map[float64]int)
	for _, x := range s.Xs {
		counts[x]++
	}
	freqs := make([]Freq, 0, len(counts))
	for x, c := range counts {
		freqs = append(freqs, Freq{x, c})
	}
	sort.Slice(freqs, func(i, j int) bool {
		return freqs[i].Value < freqs[j].Value
	})
	return freqs
}

// formatLabel formats x in the shortest form that round-trips, using
// exponent notation only for very large or very small magnitudes.
func formatLabel(x float64) string {
	if ax := math.Abs(x); ax != 0 && (ax >= 1e21 || ax < 1e-6) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
