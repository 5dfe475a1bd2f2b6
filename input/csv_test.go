// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"errors"
	"strings"
	"testing"

	"github.com/aclements/go-descstat/stats"
	"github.com/google/go-cmp/cmp"
)

func TestReadClasses(t *testing.T) {
	for _, test := range []struct {
		name string
		csv  string
		want []stats.Class
	}{
		{"comma", "1,2,10\n3,4,20\n5,6,30\n", []stats.Class{{Lower: 1, Upper: 2, Frequency: 10}, {Lower: 3, Upper: 4, Frequency: 20}, {Lower: 5, Upper: 6, Frequency: 30}}},
		{"no trailing newline", "1,2,10\n3,4,20", []stats.Class{{Lower: 1, Upper: 2, Frequency: 10}, {Lower: 3, Upper: 4, Frequency: 20}}},
		{"header and comments", "# classes\nLi;Ls;fi\n1,5;2,5;10\n\n3;4;20\n", []stats.Class{{Lower: 1.5, Upper: 2.5, Frequency: 10}, {Lower: 3, Upper: 4, Frequency: 20}}},
		{"tab", "lower\tupper\tfrequency\n0\t10\t7\r\n10\t20\t3\r\n", []stats.Class{{Lower: 0, Upper: 10, Frequency: 7}, {Lower: 10, Upper: 20, Frequency: 3}}},
		{"quoted decimal comma", "\"1,5\",\"2,5\",4\n", []stats.Class{{Lower: 1.5, Upper: 2.5, Frequency: 4}}},
		{"spaces", " 1 , 2 , 3 \n", []stats.Class{{Lower: 1, Upper: 2, Frequency: 3}}},
		{"empty", "", nil},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := ReadClasses(strings.NewReader(test.csv))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("ReadClasses (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadClassesErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		csv  string
		line string
		err  error
	}{
		{"bad field", "1,2,3\n3,x,4\n", "line 2", stats.ErrNonFinite},
		{"short row", "1,2\n", "line 1", stats.ErrNonFinite},
		{"long row", "1,2,3\n# note\n4,5,6,7\n", "line 3", stats.ErrNonFinite},
		{"fractional frequency", "Li,Ls,fi\n1,2,1.5\n", "line 2", stats.ErrFractionalFrequency},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadClasses(strings.NewReader(test.csv))
			if !errors.Is(err, test.err) {
				t.Fatalf("err = %v, want %v", err, test.err)
			}
			if !strings.Contains(err.Error(), test.line) {
				t.Errorf("err = %q, want mention of %q", err, test.line)
			}
		})
	}
}
