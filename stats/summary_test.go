// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var exampleData = []float64{7, 8, 5, 9, 10, 10, 6, 6, 8, 9, 7, 7, 5, 6, 10}

func TestSummarize(t *testing.T) {
	xs := append([]float64(nil), exampleData...)
	s, err := Summarize(Sample{Xs: xs})
	if err != nil {
		t.Fatal(err)
	}
	if s.N != 15 {
		t.Errorf("N = %d, want 15", s.N)
	}
	if !veq(113.0/15, s.Mean) {
		t.Errorf("Mean = %v, want %v", valueString(s.Mean), 113.0/15)
	}
	if s.Median != Defined(7) {
		t.Errorf("Median = %v, want 7", valueString(s.Median))
	}
	if diff := cmp.Diff([]float64{6, 7, 10}, s.Modes); diff != "" {
		t.Errorf("Modes (-want +got):\n%s", diff)
	}
	if s.Min != 5 || s.Max != 10 || s.Range != Defined(5) {
		t.Errorf("Min, Max, Range = %v, %v, %v, want 5, 10, 5", s.Min, s.Max, valueString(s.Range))
	}

	mean := 113.0 / 15
	ssd := 0.0
	for _, x := range exampleData {
		ssd += (x - mean) * (x - mean)
	}
	if !veq(ssd/15, s.PopVariance) || !veq(math.Sqrt(ssd/15), s.PopStdDev) {
		t.Errorf("PopVariance, PopStdDev = %v, %v", valueString(s.PopVariance), valueString(s.PopStdDev))
	}
	if !s.Variance.OK || !aeq(ssd/14, s.Variance.X) {
		t.Errorf("Variance = %v, want %v", valueString(s.Variance), ssd/14)
	}
	if !s.CV.OK || !aeq(math.Sqrt(ssd/14)/mean*100, s.CV.X) {
		t.Errorf("CV = %v", valueString(s.CV))
	}
	if !s.PopCV.OK || !aeq(math.Sqrt(ssd/15)/mean*100, s.PopCV.X) {
		t.Errorf("PopCV = %v", valueString(s.PopCV))
	}

	want := []float64{5, 5, 6, 6, 6, 7, 7, 7, 8, 8, 9, 9, 10, 10, 10}
	if diff := cmp.Diff(want, s.Sorted); diff != "" {
		t.Errorf("Sorted (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(exampleData, xs); diff != "" {
		t.Errorf("Summarize modified its input (-want +got):\n%s", diff)
	}
}

func TestSummarizeMedianCI(t *testing.T) {
	var xs []float64
	for i := 10; i >= 1; i-- {
		xs = append(xs, float64(i))
	}
	s, err := Summarize(Sample{Xs: xs})
	if err != nil {
		t.Fatal(err)
	}
	ci := s.MedianCI
	if !ci.Lo.OK || ci.Lo.X != 2 || !ci.Hi.OK || ci.Hi.X != 9 {
		t.Errorf("MedianCI = [%v, %v], want [2, 9]", valueString(ci.Lo), valueString(ci.Hi))
	}
	if ci.Confidence < medianConfidence {
		t.Errorf("MedianCI.Confidence = %v, want >= %v", ci.Confidence, medianConfidence)
	}
}

func TestSummarizeSingle(t *testing.T) {
	s, err := Summarize(Sample{Xs: []float64{4}})
	if err != nil {
		t.Fatal(err)
	}
	if s.Mean != Defined(4) || s.Median != Defined(4) || s.PopVariance != Defined(0) || s.Range != Defined(0) {
		t.Errorf("Mean, Median, PopVariance, Range = %v, %v, %v, %v, want 4, 4, 0, 0",
			valueString(s.Mean), valueString(s.Median), valueString(s.PopVariance), valueString(s.Range))
	}
	if s.Variance.OK || s.StdDev.OK || s.CV.OK {
		t.Errorf("Variance, StdDev, CV = %v, %v, %v, want undefined",
			valueString(s.Variance), valueString(s.StdDev), valueString(s.CV))
	}
	if !s.PopCV.OK || s.PopCV.X != 0 {
		t.Errorf("PopCV = %v, want 0", valueString(s.PopCV))
	}
	if s.Modes == nil || len(s.Modes) != 0 {
		t.Errorf("Modes = %#v, want empty", s.Modes)
	}
	if s.MedianCI.Lo.OK || s.MedianCI.Hi.OK {
		t.Errorf("MedianCI = [%v, %v], want unbounded",
			valueString(s.MedianCI.Lo), valueString(s.MedianCI.Hi))
	}
}

func TestSummarizeZeroMean(t *testing.T) {
	s, err := Summarize(Sample{Xs: []float64{-1, 1, -2, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if s.Mean != Defined(0) || s.CV.OK || s.PopCV.OK {
		t.Errorf("Mean, CV, PopCV = %v, %v, %v, want 0, undefined, undefined",
			valueString(s.Mean), valueString(s.CV), valueString(s.PopCV))
	}
}

func TestSummarizeOverflow(t *testing.T) {
	// Finite values whose sum overflows.
	s, err := Summarize(Sample{Xs: []float64{1e308, 1e308, -1e308}})
	if err != nil {
		t.Fatal(err)
	}
	for name, v := range map[string]Value{
		"Mean":        s.Mean,
		"PopVariance": s.PopVariance,
		"PopStdDev":   s.PopStdDev,
		"Range":       s.Range,
		"PopCV":       s.PopCV,
		"CV":          s.CV,
	} {
		if v.OK {
			t.Errorf("%s = %v, want undefined", name, valueString(v))
		}
	}
	if s.Median != Defined(1e308) {
		t.Errorf("Median = %v, want 1e308", valueString(s.Median))
	}
	if s.Min != -1e308 || s.Max != 1e308 {
		t.Errorf("Min, Max = %v, %v", s.Min, s.Max)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(Sample{}); err != ErrEmptySample {
		t.Errorf("err = %v, want %v", err, ErrEmptySample)
	}
}
