// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSampleQuantile(t *testing.T) {
	s := Sample{Xs: []float64{15, 20, 35, 40, 50}}
	testFunc(t, "Quantile", s.Quantile, map[float64]float64{
		-1:  15,
		0:   15,
		.05: 15,
		.30: 19.666666666666666,
		.40: 27,
		.95: 50,
		1:   50,
		2:   50,
	})
}

func TestSampleMeanTimesN(t *testing.T) {
	samples := [][]float64{
		{1},
		{-3, 3},
		{5, 7, 7, 6, 8, 9, 10, 10, 6, 7, 9, 8, 5, 6, 10},
		{1000000, 1, 2, 3, -999999},
	}
	for _, xs := range samples {
		s := Sample{Xs: xs}
		sum := 0.0
		for _, x := range xs {
			sum += x
		}
		if got := s.Mean() * float64(len(xs)); !aeq(sum, got) {
			t.Errorf("%v: mean·n = %v, want %v", xs, got, sum)
		}
	}
}

func TestSampleMedian(t *testing.T) {
	xs := []float64{5, 7, 7, 6, 8, 9, 10, 10, 6, 7, 9, 8, 5, 6, 10}
	orig := append([]float64(nil), xs...)
	s := Sample{Xs: xs}
	if got := s.Median(); got != 7 {
		t.Errorf("Median = %v, want 7", got)
	}
	if diff := cmp.Diff(orig, xs); diff != "" {
		t.Errorf("Median modified its input (-want +got):\n%s", diff)
	}

	testFunc(t, "Median", func(n float64) float64 {
		var s Sample
		for i := n; i >= 1; i-- {
			s.Xs = append(s.Xs, i)
		}
		return s.Median()
	}, map[float64]float64{
		0: math.NaN(),
		1: 1,
		2: 1.5,
		3: 2,
		4: 2.5,
	})
}

func TestSampleModes(t *testing.T) {
	for _, test := range []struct {
		xs   []float64
		want []float64
	}{
		{[]float64{1, 2, 3}, nil},
		{[]float64{1, 1, 2, 2, 3}, []float64{1, 2}},
		{[]float64{3, 2, 2, 3, 1, 1, 4}, []float64{1, 2, 3}},
		{[]float64{7}, nil},
		{[]float64{-0.5, 4, -0.5}, []float64{-0.5}},
		{nil, nil},
	} {
		got := Sample{Xs: test.xs}.Modes()
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Modes(%v) (-want +got):\n%s", test.xs, diff)
		}
	}
}

func TestSampleVariance(t *testing.T) {
	one := Sample{Xs: []float64{42}}
	if v := one.Variance(); !math.IsNaN(v) {
		t.Errorf("sample variance of one value = %v, want NaN", v)
	}
	if v := one.PopVariance(); v != 0 {
		t.Errorf("population variance of one value = %v, want 0", v)
	}

	constant := Sample{Xs: []float64{3, 3, 3, 3}}
	if v := constant.PopVariance(); v != 0 {
		t.Errorf("population variance of constant sample = %v, want 0", v)
	}
	if v := constant.Variance(); v != 0 {
		t.Errorf("sample variance of constant sample = %v, want 0", v)
	}

	s := Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	if v := s.PopVariance(); !aeq(4, v) {
		t.Errorf("PopVariance = %v, want 4", v)
	}
	if v := s.PopStdDev(); !aeq(2, v) {
		t.Errorf("PopStdDev = %v, want 2", v)
	}
	if v := s.Variance(); !aeq(32.0/7, v) {
		t.Errorf("Variance = %v, want %v", v, 32.0/7)
	}
	if v := s.StdDev(); !aeq(math.Sqrt(32.0/7), v) {
		t.Errorf("StdDev = %v, want %v", v, math.Sqrt(32.0/7))
	}

	var empty Sample
	if v := empty.PopVariance(); !math.IsNaN(v) {
		t.Errorf("population variance of empty sample = %v, want NaN", v)
	}
}

func TestSampleWeighted(t *testing.T) {
	s := Sample{Xs: []float64{1.5, 3.5, 5.5}, Weights: []float64{10, 20, 30}}
	if got := s.Weight(); got != 60 {
		t.Errorf("Weight = %v, want 60", got)
	}
	if got, want := s.Mean(), (1.5*10+3.5*20+5.5*30)/60; !aeq(want, got) {
		t.Errorf("Mean = %v, want %v", got, want)
	}
	// Same as the unweighted sample with each value repeated.
	var flat Sample
	for i, x := range s.Xs {
		for j := 0; j < int(s.Weights[i]); j++ {
			flat.Xs = append(flat.Xs, x)
		}
	}
	if got, want := s.PopVariance(), flat.PopVariance(); !aeq(want, got) {
		t.Errorf("PopVariance = %v, want %v", got, want)
	}
	if got, want := s.Variance(), flat.Variance(); !aeq(want, got) {
		t.Errorf("Variance = %v, want %v", got, want)
	}
}

func TestSampleRangeBounds(t *testing.T) {
	s := Sample{Xs: []float64{4, -2, 9.5, 0}}
	if lo, hi := s.Bounds(); lo != -2 || hi != 9.5 {
		t.Errorf("Bounds = %v, %v, want -2, 9.5", lo, hi)
	}
	if r := s.Range(); r != 11.5 {
		t.Errorf("Range = %v, want 11.5", r)
	}
	if lo, hi := (Sample{}).Bounds(); !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Errorf("Bounds of empty sample = %v, %v, want NaN, NaN", lo, hi)
	}
}

func TestSampleSortCopy(t *testing.T) {
	s := Sample{Xs: []float64{3, 1, 2}, Weights: []float64{30, 10, 20}}
	c := s.Copy().Sort()
	want := &Sample{Xs: []float64{1, 2, 3}, Weights: []float64{10, 20, 30}, Sorted: true}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Copy().Sort() (-want +got):\n%s", diff)
	}
	if s.Xs[0] != 3 || s.Weights[0] != 30 {
		t.Errorf("Sort of a copy modified the original: %+v", s)
	}
}
