// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// SturgesBins returns the number of histogram bins Sturges' rule
// chooses for n samples: ceil(1 + 3.322·log10(n)), and at least 1.
func SturgesBins(n int) int {
	if n < 1 {
		return 1
	}
	k := int(math.Ceil(1 + 3.322*math.Log10(float64(n))))
	if k < 1 {
		k = 1
	}
	return k
}

// Sturges returns a histogram of s with SturgesBins(len(s.Xs))
// uniformly-sized bins spanning the sample's bounds. Weights are
// ignored.
func Sturges(s Sample) (*BinnedHist, error) {
	if len(s.Xs) == 0 {
		return nil, ErrEmptySample
	}
	min, max := s.Bounds()
	h := NewBinnedHist(min, max, SturgesBins(len(s.Xs)))
	for _, x := range s.Xs {
		h.Add(x)
	}
	return h, nil
}

// BinnedHist is a histogram with uniformly-sized bins spanning
// [min, max]. Bins are closed on the left and open on the right,
// except the last, which is closed on both ends so that it always
// contains max.
//
// Values outside [min, max] are clamped into the first or last bin.
type BinnedHist struct {
	min, max, width float64
	bins            []uint
}

// A Bin is one bin of a BinnedHist.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count uint    `json:"count"`
}

// Label returns the bin edges to two decimal places, joined by an en
// dash.
func (b Bin) Label() string {
	return fmt.Sprintf("%.2f – %.2f", b.Lower, b.Upper)
}

// NewBinnedHist returns an empty histogram with nbins uniformly-sized
// bins spanning [min, max]. If min == max, the bins have width 1.
func NewBinnedHist(min, max float64, nbins int) *BinnedHist {
	if nbins < 1 {
		panic("nbins < 1")
	}
	width := max/float64(nbins) - min/float64(nbins)
	if width == 0 || math.IsNaN(width) {
		width = 1
	}
	return &BinnedHist{min, max, width, make([]uint, nbins)}
}

func (h *BinnedHist) bin(x float64) int {
	b := math.Floor((x - h.min) / h.width)
	if b < 0 || math.IsNaN(b) {
		return 0
	} else if b >= float64(len(h.bins)) {
		return len(h.bins) - 1
	}
	return int(b)
}

// Add adds a sample with value x to h.
func (h *BinnedHist) Add(x float64) {
	h.bins[h.bin(x)]++
}

// Counts returns the number of samples in each bin.
func (h *BinnedHist) Counts() []uint {
	return h.bins
}

// Width returns the width of each bin.
func (h *BinnedHist) Width() float64 {
	return h.width
}

// Bins returns the edges and count of each bin.
func (h *BinnedHist) Bins() []Bin {
	bins := make([]Bin, len(h.bins))
	for i, c := range h.bins {
		lo := h.min + float64(i)*h.width
		hi := h.min + float64(i+1)*h.width
		if i == len(h.bins)-1 {
			hi = h.max
		}
		bins[i] = Bin{lo, hi, c}
	}
	return bins
}

// Labels returns the label of each bin.
func (h *BinnedHist) Labels() []string {
	bins := h.Bins()
	labels := make([]string, len(bins))
	for i, b := range bins {
		labels[i] = b.Label()
	}
	return labels
}
