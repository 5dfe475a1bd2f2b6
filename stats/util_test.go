// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks that f(x) ≅ want for each x, want in tests.
func testFunc(t *testing.T, name string, f func(float64) float64, tests map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(tests))
	for x := range tests {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := tests[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) {
			continue
		}
		if !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

func valueString(v Value) string {
	if !v.OK {
		return "undefined"
	}
	return fmt.Sprint(v.X)
}

// veq reports whether v is defined and ≅ expect.
func veq(expect float64, v Value) bool {
	return v.OK && aeq(expect, v.X)
}
