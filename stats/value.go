// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"strconv"
)

// A Value is the result of a statistic that is not defined for every
// input. If OK is false, the statistic could not be computed and X is
// meaningless.
type Value struct {
	X  float64
	OK bool
}

// Undefined is the Value of a statistic that could not be computed.
var Undefined = Value{}

// Defined returns a computed Value of x.
func Defined(x float64) Value {
	return Value{X: x, OK: true}
}

// ValueOf returns x as a Value, treating NaN and ±Inf as undefined.
func ValueOf(x float64) Value {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Undefined
	}
	return Defined(x)
}

// Float returns v as a float64, or NaN if v is undefined.
func (v Value) Float() float64 {
	if !v.OK {
		return nan
	}
	return v.X
}

// Sqrt returns the square root of v. It is undefined if v is
// undefined or negative.
func (v Value) Sqrt() Value {
	if !v.OK || v.X < 0 {
		return Undefined
	}
	return Defined(math.Sqrt(v.X))
}

func (v Value) String() string {
	if !v.OK {
		return "—"
	}
	return strconv.FormatFloat(v.X, 'g', -1, 64)
}

// MarshalJSON encodes v as a JSON number, or null if v is undefined.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.OK {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v.X, 'g', -1, 64), nil
}

// UnmarshalJSON decodes a JSON number or null into v.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Undefined
		return nil
	}
	x, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*v = ValueOf(x)
	return nil
}

// CV returns the coefficient of variation, stdDev/mean as a
// percentage. It is undefined if either input is undefined or if mean
// is exactly 0.
func CV(stdDev, mean Value) Value {
	if !stdDev.OK || !mean.OK || mean.X == 0 {
		return Undefined
	}
	return ValueOf(stdDev.X / mean.X * 100)
}
