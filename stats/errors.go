// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptySample is returned when a computation is requested
	// over a sample with no values.
	ErrEmptySample = errors.New("no valid data")

	// ErrNoClasses is returned when grouped data has no classes.
	ErrNoClasses = errors.New("at least one class is required")

	// ErrNonFinite is returned when a class bound or frequency is
	// not a finite number.
	ErrNonFinite = errors.New("class bounds and frequency must be finite numbers")

	// ErrBounds is returned when a class's upper bound does not
	// exceed its lower bound.
	ErrBounds = errors.New("upper bound must exceed lower bound")

	// ErrFractionalFrequency is returned for a class frequency
	// that is not a whole number.
	ErrFractionalFrequency = errors.New("frequency must be a whole number")

	// ErrNegativeFrequency is returned for a class with a
	// frequency below zero.
	ErrNegativeFrequency = errors.New("frequency cannot be negative")

	// ErrOverlap is returned when, after sorting by lower bound,
	// a class starts before the previous class ends.
	ErrOverlap = errors.New("classes overlap")

	// ErrZeroTotal is returned when the class frequencies sum to
	// zero.
	ErrZeroTotal = errors.New("total frequency must be greater than zero")
)

// A ClassError reports a class that failed validation.
type ClassError struct {
	// Index is the 0-based position of the offending class. For
	// ErrOverlap it indexes the classes sorted by lower bound;
	// otherwise it indexes the classes in input order. It is -1
	// for errors that concern the whole set of classes.
	Index int

	// Class is the offending class.
	Class Class

	Err error
}

func (e *ClassError) Error() string {
	if e.Index < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("class %d [%g, %g) f=%d: %v", e.Index+1, e.Class.Lower, e.Class.Upper, e.Class.Frequency, e.Err)
}

func (e *ClassError) Unwrap() error {
	return e.Err
}
