// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input turns user-entered text into samples and classes.
package input // import "github.com/aclements/go-descstat/input"

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/aclements/go-descstat/stats"
	"github.com/pkg/errors"
)

// ParseSample splits text into numbers and returns them in input
// order. Tokens are separated by any run of commas, whitespace, or
// semicolons. Tokens that are not finite numbers are dropped, so the
// result may be empty.
//
// A comma is read as a decimal separator instead of a delimiter when
// every comma in text sits between two digits, no token has more than
// one comma, and text is also delimited by whitespace or semicolons.
// Thus "1,5 2,5" is [1.5 2.5] while "1,5,2", "1,234,567 8" and "7, 8"
// are lists of integers.
func ParseSample(text string) []float64 {
	comma := decimalComma(text)
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ';' || (r == ',' && !comma)
	})
	xs := make([]float64, 0, len(fields))
	for _, f := range fields {
		if x, ok := parseNumber(f); ok {
			xs = append(xs, x)
		}
	}
	return xs
}

func decimalComma(text string) bool {
	if !strings.ContainsAny(text, ";") && strings.IndexFunc(text, unicode.IsSpace) < 0 {
		return false
	}
	for _, tok := range strings.FieldsFunc(text, func(r rune) bool { return unicode.IsSpace(r) || r == ';' }) {
		if strings.Count(tok, ",") > 1 {
			return false
		}
	}
	for i := 0; i < len(text); i++ {
		if text[i] != ',' {
			continue
		}
		if i == 0 || i == len(text)-1 || !isDigit(text[i-1]) || !isDigit(text[i+1]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// parseNumber parses a single token, accepting a decimal comma.
func parseNumber(tok string) (float64, bool) {
	tok = strings.Replace(strings.TrimSpace(tok), ",", ".", 1)
	if tok == "" {
		return 0, false
	}
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}

// ParseClass parses the fields of one class row. Bounds accept a
// decimal comma. Any field that does not parse yields an error
// wrapping stats.ErrNonFinite. A frequency that parses but is not a
// whole number yields stats.ErrFractionalFrequency.
//
// ParseClass does not check the class itself; see stats.NewGrouped.
func ParseClass(lower, upper, freq string) (stats.Class, error) {
	var c stats.Class
	var ok bool
	if c.Lower, ok = parseNumber(lower); !ok {
		return c, errors.Wrapf(stats.ErrNonFinite, "lower bound %q", lower)
	}
	if c.Upper, ok = parseNumber(upper); !ok {
		return c, errors.Wrapf(stats.ErrNonFinite, "upper bound %q", upper)
	}
	f, ok := parseNumber(freq)
	if !ok || math.Abs(f) > math.MaxInt32 {
		return c, errors.Wrapf(stats.ErrNonFinite, "frequency %q", freq)
	}
	if f != math.Trunc(f) {
		return c, errors.Wrapf(stats.ErrFractionalFrequency, "frequency %q", freq)
	}
	c.Frequency = int(f)
	return c, nil
}

// ParseClassSpec parses a class written as "lower:upper:frequency",
// as accepted on the command line.
func ParseClassSpec(spec string) (stats.Class, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return stats.Class{}, errors.Wrapf(stats.ErrNonFinite, "class %q is not lower:upper:frequency", spec)
	}
	return ParseClass(parts[0], parts[1], parts[2])
}
