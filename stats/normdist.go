// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

func (n NormalDist) gonum() distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}
}

func (n NormalDist) PDF(x float64) float64 {
	return n.gonum().Prob(x)
}

func (n NormalDist) CDF(x float64) float64 {
	return n.gonum().CDF(x)
}

// InvCDF returns the x such that CDF(x) = p. p must be in [0, 1].
func (n NormalDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	return n.gonum().Quantile(p)
}

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}
