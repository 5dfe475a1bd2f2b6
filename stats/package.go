// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes descriptive statistics over raw samples and
// over grouped (already binned) data.
//
// Raw data is represented by a Sample. Grouped data is a set of
// contiguous, non-overlapping classes, each standing in for its
// members through its midpoint; a validated set of classes is a
// Grouped.
//
// Statistics that may not be defined for a given input (for example,
// the sample variance of a single observation) are reported as Values,
// which distinguish a computed result from "not computable".
package stats // import "github.com/aclements/go-descstat/stats"

import "math"

var nan = math.NaN()
