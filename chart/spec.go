// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"github.com/aclements/go-descstat/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/pkg/errors"
)

// densitySamples is the number of points at which a density curve is
// evaluated.
const densitySamples = 200

// ErrNoData is returned when rendering a Spec with nothing to draw.
var ErrNoData = errors.New("chart has no data")

// A Spec describes a chart.
//
// Bar, pie and line charts use Labels and Values, which have the
// same length. Scatter and density charts use Points.
type Spec struct {
	Kind  Kind
	Title string

	Labels []string
	Values []float64

	Points []Point

	// XName and YName name the axes. They may be empty.
	XName, YName string
}

// A Point is one point of a scatter plot or curve.
type Point struct {
	X, Y float64
}

func (s *Spec) empty() bool {
	if s.Kind.form() == formPoints || s.Kind.form() == formCurve {
		return len(s.Points) == 0
	}
	return len(s.Values) == 0
}

func (s *Spec) title() string {
	if s.Title == "" {
		return string(s.Kind)
	}
	return s.Title
}

// Histogram returns the Sturges histogram of s.
func Histogram(s stats.Sample) (*Spec, error) {
	h, err := stats.Sturges(s)
	if err != nil {
		return nil, err
	}
	spec := &Spec{Kind: KindHistogram, Labels: h.Labels()}
	for _, b := range h.Bins() {
		spec.Values = append(spec.Values, float64(b.Count))
	}
	return spec, nil
}

// frequencies returns the simple frequencies of s as a Spec of the
// given kind.
func frequencies(kind Kind, s stats.Sample) (*Spec, error) {
	if len(s.Xs) == 0 {
		return nil, stats.ErrEmptySample
	}
	spec := &Spec{Kind: kind}
	for _, f := range stats.Frequencies(s) {
		spec.Labels = append(spec.Labels, f.Label())
		spec.Values = append(spec.Values, float64(f.Count))
	}
	return spec, nil
}

// Bars returns a bar chart of how often each distinct value occurs in
// s.
func Bars(s stats.Sample) (*Spec, error) {
	return frequencies(KindBar, s)
}

// Pie returns a pie chart of how often each distinct value occurs in
// s.
func Pie(s stats.Sample) (*Spec, error) {
	return frequencies(KindPie, s)
}

// Scatter returns a scatter plot of the values of s against their
// 1-based position in s.
func Scatter(s stats.Sample) (*Spec, error) {
	if len(s.Xs) == 0 {
		return nil, stats.ErrEmptySample
	}
	spec := &Spec{Kind: KindScatter, Points: make([]Point, len(s.Xs))}
	for i, x := range s.Xs {
		spec.Points[i] = Point{float64(i + 1), x}
	}
	return spec, nil
}

// Density returns the Gaussian kernel density estimate of s.
func Density(s stats.Sample) (*Spec, error) {
	if len(s.Xs) == 0 {
		return nil, stats.ErrEmptySample
	}
	kde := stats.KDE{}.From(s)
	lo, hi := kde.Bounds()
	xs := vec.Linspace(lo, hi, densitySamples)
	ys := vec.Map(kde.PDF, xs)
	spec := &Spec{Kind: KindDensity, Points: make([]Point, len(xs))}
	for i := range xs {
		spec.Points[i] = Point{xs[i], ys[i]}
	}
	return spec, nil
}

// ClassHistogram returns the frequency of each class of g.
func ClassHistogram(g *stats.Grouped) *Spec {
	spec := &Spec{Kind: KindClassHistogram}
	for _, e := range g.Entries {
		spec.Labels = append(spec.Labels, e.Label)
		spec.Values = append(spec.Values, float64(e.Frequency))
	}
	return spec
}

// Polygon returns the frequency polygon of g: class frequency against
// class midpoint.
func Polygon(g *stats.Grouped) *Spec {
	spec := &Spec{Kind: KindPolygon}
	for _, e := range g.Entries {
		spec.Labels = append(spec.Labels, fmt.Sprintf("%.2f", e.Midpoint))
		spec.Values = append(spec.Values, float64(e.Frequency))
	}
	return spec
}

// Ogive returns the cumulative frequency of g by class.
func Ogive(g *stats.Grouped) *Spec {
	spec := &Spec{Kind: KindOgive}
	for _, e := range g.Entries {
		spec.Labels = append(spec.Labels, e.Label)
		spec.Values = append(spec.Values, float64(e.Cumulative))
	}
	return spec
}

// FromSample builds the Spec of a raw-sample kind.
func FromSample(kind Kind, s stats.Sample) (*Spec, error) {
	switch kind {
	case KindHistogram:
		return Histogram(s)
	case KindBar:
		return Bars(s)
	case KindPie:
		return Pie(s)
	case KindScatter:
		return Scatter(s)
	case KindDensity:
		return Density(s)
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%q is not a raw-sample chart", kind)
}

// FromGrouped builds the Spec of a grouped kind.
func FromGrouped(kind Kind, g *stats.Grouped) (*Spec, error) {
	switch kind {
	case KindClassHistogram:
		return ClassHistogram(g), nil
	case KindPolygon:
		return Polygon(g), nil
	case KindOgive:
		return Ogive(g), nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%q is not a grouped chart", kind)
}
