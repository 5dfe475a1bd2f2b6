// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values, in input order unless
	// Sorted is set.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length of Xs and all values must be non-negative.
	//
	// Grouped data is represented as a weighted sample of class
	// midpoints, weighted by class frequency.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Bounds returns the minimum and maximum values of xs, or NaN, NaN if
// xs is empty.
func Bounds(xs []float64) (min float64, max float64) {
	if len(xs) == 0 {
		return nan, nan
	}
	return floats.Min(xs), floats.Max(xs)
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is empty, Bounds returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 || !s.Sorted {
		return Bounds(s.Xs)
	}
	return s.Xs[0], s.Xs[len(s.Xs)-1]
}

// Range returns max - min of the Sample, or NaN if it is empty.
func (s Sample) Range() float64 {
	min, max := s.Bounds()
	return max - min
}

// Sum returns the (possibly weighted) sum of the Sample.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	return floats.Dot(s.Xs, s.Weights)
}

// Weight returns the total weight of the Sample.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

func (s Sample) check() {
	if s.Weights != nil && len(s.Xs) != len(s.Weights) {
		panic("len(xs) != len(weights)")
	}
}

// Mean returns the arithmetic mean of the Sample, or NaN if it is
// empty.
func (s Sample) Mean() float64 {
	s.check()
	if len(s.Xs) == 0 || s.Weight() == 0 {
		return nan
	}
	return stat.Mean(s.Xs, s.Weights)
}

// PopVariance returns the population variance of the Sample: the
// mean squared deviation from the mean. It returns NaN if the Sample
// is empty.
func (s Sample) PopVariance() float64 {
	s.check()
	if len(s.Xs) == 0 || s.Weight() == 0 {
		return nan
	}
	return stat.PopVariance(s.Xs, s.Weights)
}

// PopStdDev returns the population standard deviation of the Sample.
func (s Sample) PopStdDev() float64 {
	return math.Sqrt(s.PopVariance())
}

// Variance returns the sample variance of the Sample: the sum of
// squared deviations divided by N-1, where N is the Sample's weight.
// It returns NaN if N < 2.
func (s Sample) Variance() float64 {
	s.check()
	if len(s.Xs) == 0 || s.Weight() < 2 {
		return nan
	}
	return stat.Variance(s.Xs, s.Weights)
}

// StdDev returns the sample standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Median returns the middle value of the sorted Sample, or the mean
// of the two middle values if the Sample has an even number of
// values. It returns NaN if the Sample is empty. s is not modified.
func (s Sample) Median() float64 {
	if s.Weights != nil {
		panic("Median of a weighted sample")
	}
	n := len(s.Xs)
	if n == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	m := n / 2
	if n%2 == 0 {
		return s.Xs[m-1]/2 + s.Xs[m]/2
	}
	return s.Xs[m]
}

// Modes returns the values that occur most often in the Sample, in
// ascending order. If no value occurs more than once, the Sample has
// no mode and Modes returns nil.
func (s Sample) Modes() []float64 {
	if s.Weights != nil {
		panic("Modes of a weighted sample")
	}
	freqs := Frequencies(s)
	max := 0
	for _, f := range freqs {
		if f.Count > max {
			max = f.Count
		}
	}
	if max <= 1 {
		return nil
	}
	var modes []float64
	for _, f := range freqs {
		if f.Count == max {
			modes = append(modes, f.Value)
		}
	}
	return modes
}

// Quantile returns the sample value X at which q*weight of the sample
// is <= X. This uses interpolation method R8 from Hyndman and Fan
// (1996).
//
// q will be capped to the range [0, 1]. If len(xs) == 0 or all
// weights are 0, returns NaN.
//
// Quantile(0.5) is the median. Quantile(0.25) and Quantile(0.75) are
// the lower and upper quartiles.
//
// This does not support weighted samples.
func (s Sample) Quantile(q float64) float64 {
	if s.Weights != nil {
		panic("Quantile of a weighted sample")
	}
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	n := float64(len(s.Xs))
	h := (n+1.0/3)*q + 1.0/3
	if h <= 1 {
		return s.Xs[0]
	} else if h >= n {
		return s.Xs[len(s.Xs)-1]
	}
	hf := math.Floor(h)
	lo, hi := s.Xs[int(hf)-1], s.Xs[int(hf)]
	return lo + (h-hf)*(hi-lo)
}

// Percentile is the same as Quantile.
func (s Sample) Percentile(pctile float64) float64 {
	return s.Quantile(pctile)
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)

	var weights []float64
	if s.Weights != nil {
		weights = make([]float64, len(s.Weights))
		copy(weights, s.Weights)
	}

	return &Sample{xs, weights, s.Sorted}
}

// Sort stably sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else if s.Weights == nil {
		sort.Stable(sort.Float64Slice(s.Xs))
	} else {
		sort.Stable(&sampleSorter{s.Xs, s.Weights})
	}
	s.Sorted = true
	return s
}

type sampleSorter struct {
	xs      []float64
	weights []float64
}

func (p *sampleSorter) Len() int {
	return len(p.xs)
}

func (p *sampleSorter) Less(i, j int) bool {
	return p.xs[i] < p.xs[j]
}

func (p *sampleSorter) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.weights[i], p.weights[j] = p.weights[j], p.weights[i]
}
