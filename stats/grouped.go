// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
)

// A Class is one bin of grouped data: Frequency observations fell in
// [Lower, Upper).
type Class struct {
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
	Frequency int     `json:"frequency"`
}

// Midpoint returns the class midpoint, which stands in for every
// observation in the class.
func (c Class) Midpoint() float64 {
	return c.Lower/2 + c.Upper/2
}

// Width returns the class width. It is +Inf if the bounds are
// too far apart to represent the width.
func (c Class) Width() float64 {
	return c.Upper - c.Lower
}

// Label returns the class bounds to two decimal places, joined by an
// en dash.
func (c Class) Label() string {
	return fmt.Sprintf("%.2f – %.2f", c.Lower, c.Upper)
}

// A ClassEntry is one row of a grouped frequency distribution.
type ClassEntry struct {
	Class

	Midpoint float64 `json:"midpoint"`
	Width    Value   `json:"width"`

	// Relative is Frequency / N.
	Relative float64 `json:"relative"`

	// Cumulative is the running total of Frequency up to and
	// including this class.
	Cumulative int `json:"cumulative"`

	Label string `json:"label"`
}

// Grouped is a validated frequency distribution over classes sorted
// by lower bound.
type Grouped struct {
	Entries []ClassEntry `json:"entries"`

	// N is the total frequency. It is always > 0.
	N int `json:"n"`
}

// ValidateClasses checks classes and returns a copy sorted by lower
// bound.
//
// Each class must have finite bounds, an upper bound greater than its
// lower bound, and a non-negative frequency; these are checked in
// input order. After sorting, no class may start before the previous
// class ends. Finally, the total frequency must be positive.
//
// The returned error is a *ClassError.
func ValidateClasses(classes []Class) ([]Class, error) {
	for i, c := range classes {
		var err error
		switch {
		case !isFinite(c.Lower) || !isFinite(c.Upper):
			err = ErrNonFinite
		case c.Upper <= c.Lower:
			err = ErrBounds
		case c.Frequency < 0:
			err = ErrNegativeFrequency
		}
		if err != nil {
			return nil, &ClassError{i, c, err}
		}
	}
	if len(classes) == 0 {
		return nil, &ClassError{Index: -1, Err: ErrNoClasses}
	}

	sorted := make([]Class, len(classes))
	copy(sorted, classes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Lower < sorted[j].Lower
	})
	total := 0
	for i, c := range sorted {
		if i > 0 && c.Lower < sorted[i-1].Upper {
			return nil, &ClassError{i, c, ErrOverlap}
		}
		total += c.Frequency
	}
	if total <= 0 {
		return nil, &ClassError{Index: -1, Err: ErrZeroTotal}
	}
	return sorted, nil
}

// NewGrouped validates classes and builds their frequency
// distribution. No partial result is returned on error.
func NewGrouped(classes []Class) (*Grouped, error) {
	sorted, err := ValidateClasses(classes)
	if err != nil {
		return nil, err
	}

	g := &Grouped{Entries: make([]ClassEntry, len(sorted))}
	for _, c := range sorted {
		g.N += c.Frequency
	}
	cum := 0
	for i, c := range sorted {
		cum += c.Frequency
		g.Entries[i] = ClassEntry{
			Class:      c,
			Midpoint:   c.Midpoint(),
			Width:      ValueOf(c.Width()),
			Relative:   float64(c.Frequency) / float64(g.N),
			Cumulative: cum,
			Label:      c.Label(),
		}
	}
	return g, nil
}

// Sample returns g as a sample of class midpoints weighted by class
// frequency.
func (g *Grouped) Sample() Sample {
	s := Sample{
		Xs:      make([]float64, len(g.Entries)),
		Weights: make([]float64, len(g.Entries)),
		Sorted:  true,
	}
	for i, e := range g.Entries {
		s.Xs[i] = e.Midpoint
		s.Weights[i] = float64(e.Frequency)
	}
	return s
}

// Median returns the midpoint of the first class whose cumulative
// frequency reaches (N+1)/2.
//
// This is the midpoint of the median class, not the interpolated
// grouped median.
func (g *Grouped) Median() float64 {
	goal := float64(g.N+1) / 2
	for _, e := range g.Entries {
		if float64(e.Cumulative) >= goal {
			return e.Midpoint
		}
	}
	return g.Entries[0].Midpoint
}

// Modes returns the midpoints of the classes with the highest
// frequency, in ascending order.
func (g *Grouped) Modes() []float64 {
	max := 0
	for _, e := range g.Entries {
		if e.Frequency > max {
			max = e.Frequency
		}
	}
	var modes []float64
	for _, e := range g.Entries {
		if e.Frequency == max {
			modes = append(modes, e.Midpoint)
		}
	}
	return modes
}

// Bounds returns the lowest lower bound and the highest upper bound
// across all classes.
func (g *Grouped) Bounds() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, e := range g.Entries {
		min = math.Min(min, e.Lower)
		max = math.Max(max, e.Upper)
	}
	return
}

// AmplitudeMidpoints returns the distance between the first and last
// class midpoints.
func (g *Grouped) AmplitudeMidpoints() float64 {
	return g.Entries[len(g.Entries)-1].Midpoint - g.Entries[0].Midpoint
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
