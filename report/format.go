// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-descstat/stats"
	"github.com/dustin/go-humanize"
)

// Undefined is displayed in place of a statistic that could not be
// computed.
const Undefined = "—"

const (
	// MaxDecimals is the most decimal places go-humanize will
	// render.
	MaxDecimals = 9

	// maxGrouped is the magnitude beyond which go-humanize's integer
	// conversion overflows; larger numbers use exponent notation.
	maxGrouped = 1e15
)

// A Formatter renders numbers in a locale with a fixed number of
// decimal places.
type Formatter struct {
	Locale   Locale
	Decimals int
}

func (f Formatter) decimals() int {
	switch {
	case f.Decimals < 0:
		return 0
	case f.Decimals > MaxDecimals:
		return MaxDecimals
	}
	return f.Decimals
}

// pattern returns the go-humanize format string for f.
func (f Formatter) pattern(decimals int) string {
	if f.Locale == Portuguese {
		return "#.###," + strings.Repeat("#", decimals)
	}
	return "#,###." + strings.Repeat("#", decimals)
}

// Float formats x with f.Decimals decimal places and thousands
// separators. NaN and ±Inf are Undefined.
func (f Formatter) Float(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Undefined
	}
	d := f.decimals()
	if math.Abs(x) >= maxGrouped {
		return f.Exact(x)
	}
	// Don't show a sign on values that round to zero.
	if p := math.Pow10(d); math.Round(x*p) == 0 {
		x = 0
	}
	return humanize.FormatFloat(f.pattern(d), x)
}

// Value formats v like Float, or Undefined if v was not computed.
func (f Formatter) Value(v stats.Value) string {
	if !v.OK {
		return Undefined
	}
	return f.Float(v.X)
}

// Percent formats v, which is already in percent, followed by " %".
func (f Formatter) Percent(v stats.Value) string {
	if !v.OK {
		return Undefined
	}
	return f.Float(v.X) + " %"
}

// Int formats n with thousands separators.
func (f Formatter) Int(n int) string {
	return humanize.FormatInteger(f.pattern(0), n)
}

// Exact formats x in the shortest form that represents it exactly,
// using the locale's decimal separator.
func (f Formatter) Exact(x float64) string {
	format := byte('f')
	if a := math.Abs(x); a >= 1e21 || (a != 0 && a < 1e-6) {
		format = 'g'
	}
	s := strconv.FormatFloat(x, format, -1, 64)
	if f.Locale == Portuguese {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

// listSep separates numbers in a list. Portuguese numbers contain
// commas, so lists use semicolons.
func (f Formatter) listSep() string {
	if f.Locale == Portuguese {
		return "; "
	}
	return ", "
}

// Modes formats a set of modes, or the locale's "no mode" text if xs
// is empty.
func (f Formatter) Modes(xs []float64) string {
	if len(xs) == 0 {
		return f.Locale.say(phNoMode)
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = f.Float(x)
	}
	return strings.Join(parts, f.listSep())
}

// Interval formats lo and hi joined by an en dash.
func (f Formatter) Interval(lo, hi stats.Value) string {
	return f.Value(lo) + " – " + f.Value(hi)
}
