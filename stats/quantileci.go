// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// QuantileCIResult is the confidence interval for a quantile.
type QuantileCIResult struct {
	// Quantile is the quantile of this confidence interval. This
	// is simply a copy of the argument to QuantileCI.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the actual confidence level of this interval.
	// This will be >= the requested confidence.
	Confidence float64

	// LoOrder and HiOrder are the order statistics that bound the
	// confidence interval. By convention, these are 1-based, so
	// given an ordered slice of samples Xs, the CI is
	// Xs[LoOrder-1] to Xs[HiOrder-1].
	//
	// These may be outside the range of the sample, which
	// indicates that corresponding bound is negative or positive
	// infinity.
	LoOrder, HiOrder int

	// Ambiguous indicates that the given confidence interval is
	// ambiguous. In this case, the interval LoOrder+1 to
	// HiOrder+1 has equivalent confidence.
	Ambiguous bool
}

// FromSample returns the confidence interval of q in terms of values
// from a sample. It may return negative or positive infinity if the
// interval lies outside the sample.
func (q QuantileCIResult) FromSample(s Sample) (lo, hi float64) {
	if s.Weights != nil {
		panic("Cannot compute quantile CI on a weighted sample")
	}
	if len(s.Xs) != q.N {
		panic("Sample size differs from computed quantile CI")
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	lo, hi = math.Inf(-1), math.Inf(1)
	if q.LoOrder >= 1 {
		lo = s.Xs[q.LoOrder-1]
	}
	if q.HiOrder-1 < len(s.Xs) {
		hi = s.Xs[q.HiOrder-1]
	}
	return
}

// quantileCIApproxThreshold is the sample size above which a normal
// approximation is used. This is a variable for testing.
var quantileCIApproxThreshold = 30

// QuantileCI returns the bounds of the confidence interval of the
// q'th quantile in a sample of size n.
//
// The number of samples that fall below the population quantile is
// binomially distributed, so Pr[X = k] for X ~ B(n, q) is the
// probability that the quantile lies between order statistics k and
// k+1.
func QuantileCI(n int, q, confidence float64) QuantileCIResult {
	res := QuantileCIResult{N: n, Quantile: q}
	if confidence >= 1 {
		res.Confidence = 1
		res.LoOrder, res.HiOrder = 0, n+1
		return res
	}

	samp := distuv.Binomial{N: float64(n), P: q}
	var l, r int
	if n <= quantileCIApproxThreshold {
		l, r = res.exact(samp, confidence)
	} else {
		l, r = res.approx(samp, confidence)
	}

	if l < 0 {
		l = 0
	}
	if r > n+1 {
		r = n + 1
	}
	res.LoOrder, res.HiOrder = l, r
	return res
}

// exact grows an interval outward from the mode of samp, taking the
// more probable neighbor at each step (left on ties), until it covers
// confidence. It returns the interval as [l, r).
func (res *QuantileCIResult) exact(samp distuv.Binomial, confidence float64) (l, r int) {
	// When the distribution has two modes, start from the lower.
	x := int(math.Ceil((samp.N+1)*samp.P) - 1)
	if samp.P == 0 {
		x = 0
	}
	accum := samp.Prob(float64(x))

	l, r = x, x+1
	lp, rp := samp.Prob(float64(l-1)), samp.Prob(float64(r))
	res.Ambiguous = rp == accum

	// Stop if there's no more to accumulate, in case rounding
	// keeps accum just below confidence.
	for accum < confidence && (lp > 0 || rp > 0) {
		res.Ambiguous = lp == rp
		if lp >= rp {
			accum += lp
			l--
			lp = samp.Prob(float64(l - 1))
		} else {
			accum += rp
			r++
			rp = samp.Prob(float64(r))
		}
	}
	res.Confidence = accum
	return l, r
}

// approx finds the interval using the normal approximation to samp
// with a continuity correction.
func (res *QuantileCIResult) approx(samp distuv.Binomial, confidence float64) (l, r int) {
	norm := NormalDist{Mu: samp.Mean(), Sigma: samp.StdDev()}
	alpha := (1 - confidence) / 2

	// Central "confidence" weight, symmetric around the mean.
	l1 := norm.InvCDF(alpha)
	r1 := 2*norm.Mu - l1

	// Point k of the binomial corresponds to [k-0.5, k+0.5] of
	// the normal, so round out to half-integers and recover k.
	floorInt := func(x float64) int {
		return int(math.Floor(x))
	}
	l = floorInt(math.Floor(l1-0.5)+0.5) + 1
	r = floorInt(math.Ceil(r1-0.5)+0.5) + 1

	// Pr[l <= X < r] with the continuity correction.
	cdf := func(l, r int) float64 {
		return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
	}
	res.Confidence = cdf(l, r)

	// Prefer a left-biased interval if it still satisfies the
	// confidence level.
	if biased := cdf(l, r-1); biased >= confidence && biased < res.Confidence {
		res.Confidence, res.Ambiguous = biased, true
		r--
	}
	if l <= 0 && r >= res.N+1 {
		// The interval covers everything, but the normal
		// distribution's infinite support keeps CDF short of 1.
		res.Confidence = 1
		res.Ambiguous = false
	}
	return l, r
}
