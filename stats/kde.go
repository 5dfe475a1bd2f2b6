// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// KDE represents options for constructing a Gaussian kernel density
// estimate.
//
// A kernel density estimate ƒ̂(x) is a smooth, non-parametric
// estimate of the distribution a sample was drawn from. It is similar
// to a histogram, except that it does not require choosing a bin size
// and discretizing the data; the result depends instead on the
// bandwidth.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the standard deviation of the kernel placed at
	// each sample point.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthScott.
	Bandwidth float64
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data interface {
	StdDev() float64
	Weight() float64
	Percentile(float64) float64
}) float64 {
	iqr := data.Percentile(0.75) - data.Percentile(0.25)
	hScale := 1.06 * math.Pow(data.Weight(), -1.0/5)
	stdDev := data.StdDev()
	if stdDev < iqr/1.349 {
		return hScale * stdDev
	}
	// IQR/1.349 is a robust estimator of the standard deviation
	// of a Gaussian distribution.
	return hScale * (iqr / 1.349)
}

// From returns the kernel density estimate for the sample s.
//
// Estimating the bandwidth requires an unweighted sample. If it cannot
// be estimated from s (for example, s has fewer than two distinct
// values), a bandwidth of 1 is used.
func (k KDE) From(s Sample) Dist {
	s.check()
	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}
	if !(h > 0) || math.IsInf(h, 0) {
		h = 1
	}
	return &kdeDist{NormalDist{0, h}, s.Xs, s.Weights}
}

type kdeDist struct {
	kernel      NormalDist
	xs, weights []float64
}

// eval evaluates fn, shifted to each of kde.xs, at x and returns the
// weighted average.
func (kde *kdeDist) eval(fn func(float64) float64, x float64) float64 {
	ys := make([]float64, len(kde.xs))
	for i, xi := range kde.xs {
		ys[i] = fn(x - xi)
	}
	wys := Sample{Xs: ys, Weights: kde.weights}
	return wys.Sum() / wys.Weight()
}

func (kde *kdeDist) PDF(x float64) float64 {
	return kde.eval(kde.kernel.PDF, x)
}

func (kde *kdeDist) CDF(x float64) float64 {
	return kde.eval(kde.kernel.CDF, x)
}

// Bounds returns the sample bounds extended by three bandwidths on
// each side, which holds all but a negligible part of each kernel.
func (kde *kdeDist) Bounds() (low float64, high float64) {
	low, high = Bounds(kde.xs)
	lk, hk := kde.kernel.Bounds()
	return low + lk, high + hk
}
