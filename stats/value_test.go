// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"encoding/json"
	"math"
	"testing"
)

func TestValueOf(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if v := ValueOf(x); v.OK {
			t.Errorf("ValueOf(%v) = %v, want undefined", x, valueString(v))
		}
	}
	if v := ValueOf(-2.5); !v.OK || v.X != -2.5 {
		t.Errorf("ValueOf(-2.5) = %v, want -2.5", valueString(v))
	}
	if f := Undefined.Float(); !math.IsNaN(f) {
		t.Errorf("Undefined.Float() = %v, want NaN", f)
	}
	if s := Undefined.String(); s != "—" {
		t.Errorf("Undefined.String() = %q", s)
	}
}

func TestValueSqrt(t *testing.T) {
	if v := Defined(9).Sqrt(); !v.OK || v.X != 3 {
		t.Errorf("Sqrt(9) = %v", valueString(v))
	}
	if v := Defined(-1).Sqrt(); v.OK {
		t.Errorf("Sqrt(-1) = %v, want undefined", valueString(v))
	}
	if v := Undefined.Sqrt(); v.OK {
		t.Errorf("Sqrt(undefined) = %v, want undefined", valueString(v))
	}
}

func TestCV(t *testing.T) {
	if v := CV(Defined(2), Defined(0)); v.OK {
		t.Errorf("CV with zero mean = %v, want undefined", valueString(v))
	}
	if v := CV(Undefined, Defined(4)); v.OK {
		t.Errorf("CV with undefined std dev = %v, want undefined", valueString(v))
	}
	if v := CV(Defined(2), Defined(4)); !v.OK || v.X != 50 {
		t.Errorf("CV(2, 4) = %v, want 50", valueString(v))
	}
	if v := CV(Defined(2), Defined(-4)); !v.OK || v.X != -50 {
		t.Errorf("CV(2, -4) = %v, want -50", valueString(v))
	}
}

func TestValueJSON(t *testing.T) {
	type pair struct {
		A Value `json:"a"`
		B Value `json:"b"`
	}
	data, err := json.Marshal(pair{Defined(1.25), Undefined})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"a":1.25,"b":null}`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}

	var p pair
	if err := json.Unmarshal([]byte(`{"a":null,"b":3}`), &p); err != nil {
		t.Fatal(err)
	}
	if p.A.OK || !p.B.OK || p.B.X != 3 {
		t.Errorf("Unmarshal = %+v", p)
	}
}
