// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart builds charts of samples and grouped data and renders
// them as images or as text for a terminal.
//
// A Spec describes what to draw, independent of how. A Renderer turns
// a Spec into a Chart, and a Board keeps the current Chart of each
// Kind.
package chart // import "github.com/aclements/go-descstat/chart"

import (
	"github.com/pkg/errors"
)

// A Kind identifies one of the charts the calculator can draw.
type Kind string

const (
	// Charts of a raw sample.
	KindHistogram Kind = "histogram"
	KindBar       Kind = "bar"
	KindPie       Kind = "pie"
	KindScatter   Kind = "scatter"
	KindDensity   Kind = "density"

	// Charts of grouped data.
	KindClassHistogram Kind = "class-histogram"
	KindPolygon        Kind = "polygon"
	KindOgive          Kind = "ogive"
)

// RawKinds are the kinds drawn from a raw sample.
var RawKinds = []Kind{KindHistogram, KindBar, KindPie, KindScatter, KindDensity}

// GroupedKinds are the kinds drawn from grouped data.
var GroupedKinds = []Kind{KindClassHistogram, KindPolygon, KindOgive}

// ErrUnknownKind is returned for a chart kind that does not exist.
var ErrUnknownKind = errors.New("unknown chart kind")

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for _, ks := range [][]Kind{RawKinds, GroupedKinds} {
		for _, k := range ks {
			if string(k) == s {
				return k, nil
			}
		}
	}
	return "", errors.Wrapf(ErrUnknownKind, "%q", s)
}

// Grouped reports whether k is drawn from grouped data.
func (k Kind) Grouped() bool {
	for _, g := range GroupedKinds {
		if k == g {
			return true
		}
	}
	return false
}

// A form is the way a kind is drawn.
type form int

const (
	formBars   form = iota // Labels and Values as bars
	formPie                // Labels and Values as slices
	formLine               // Values over categorical Labels, joined
	formPoints             // Points, unjoined
	formCurve              // Points, joined
)

func (k Kind) form() form {
	switch k {
	case KindPie:
		return formPie
	case KindPolygon, KindOgive:
		return formLine
	case KindScatter:
		return formPoints
	case KindDensity:
		return formCurve
	}
	return formBars
}
