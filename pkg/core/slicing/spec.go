// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package slicing resolves numpy-like slicing specifications over strided arrays, and implements
// the axis Walker used to visit every 1-D line (or N-D sub-block) of an array.
//
// A slicing is given as a sequence of Spec, one per axis, each created with one of:
//
//   - Index(i): fixes the axis to one position, the axis is removed from the result.
//   - Range(start, stop, step), All(), From(start), To(stop): a range of positions, like Python's
//     `start:stop:step`. Use Spec.Step to change the step of All, From or To.
//   - Ellipsis(): expands to as many All() as needed to cover the axes not otherwise specified.
//     At most one per slicing.
//   - NewAxis(): inserts a new axis of dimension 1 (and stride 0), without consuming an input axis.
//
// Axes left unspecified at the end are taken in full.
//
// Example: for an array shaped `[5, 6, 7]`, `Resolve(shape, strides, Index(-1), Ellipsis(), Range(1, 4, 2))`
// returns the view of `x[-1, :, 1:4:2]`, shaped `[6, 2]`.
package slicing

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
)

// Kind of Spec.
type Kind int

//go:generate go tool enumer -type=Kind -trimprefix=Kind -output=gen_kind_enumer.go spec.go

const (
	KindIndex Kind = iota
	KindRange
	KindEllipsis
	KindNewAxis
)

// Spec specifies how to slice one axis.
//
// Consider using the constructors Index, Range, All, From, To, Ellipsis and NewAxis.
type Spec struct {
	Kind Kind

	// Start is the index for KindIndex, and the start of a range for KindRange.
	Start int

	// Stop is the (exclusive) end of a range.
	Stop int

	// StepValue of a range. It can't be 0. Negative values traverse the axis backwards.
	StepValue int

	// NoStart and NoStop indicate Start and Stop were not given, and they default to the
	// beginning or end of the axis, depending on the direction of StepValue.
	NoStart, NoStop bool
}

// Index fixes the axis at position i. Negative values count from the end of the axis.
func Index(i int) Spec {
	return Spec{Kind: KindIndex, Start: i}
}

// Range selects positions start, start+step, ... up to stop (exclusive).
// Negative start and stop count from the end of the axis.
func Range(start, stop, step int) Spec {
	if step == 0 {
		exceptions.Panicf("slicing.Range(%d, %d, %d): step cannot be 0", start, stop, step)
	}
	return Spec{Kind: KindRange, Start: start, Stop: stop, StepValue: step}
}

// All selects the whole axis.
func All() Spec {
	return Spec{Kind: KindRange, StepValue: 1, NoStart: true, NoStop: true}
}

// From selects from start to the end of the axis.
func From(start int) Spec {
	return Spec{Kind: KindRange, Start: start, StepValue: 1, NoStop: true}
}

// To selects from the start of the axis to stop (exclusive).
func To(stop int) Spec {
	return Spec{Kind: KindRange, Stop: stop, StepValue: 1, NoStart: true}
}

// Ellipsis expands to as many All() as needed to cover the unspecified axes.
func Ellipsis() Spec {
	return Spec{Kind: KindEllipsis}
}

// NewAxis inserts a new axis of dimension 1.
func NewAxis() Spec {
	return Spec{Kind: KindNewAxis}
}

// Step returns a copy of the range Spec with the step set to the given value.
//
// Example: `All().Step(-1)` traverses the axis backwards.
func (s Spec) Step(step int) Spec {
	if s.Kind != KindRange {
		exceptions.Panicf("slicing.Spec.Step(%d) can only be used with ranges, got %s", step, s)
	}
	if step == 0 {
		exceptions.Panicf("slicing.Spec.Step(0): step cannot be 0")
	}
	s2 := s
	s2.StepValue = step
	return s2
}

// String implements fmt.Stringer, using Python's notation.
func (s Spec) String() string {
	switch s.Kind {
	case KindIndex:
		return fmt.Sprintf("%d", s.Start)
	case KindEllipsis:
		return "..."
	case KindNewAxis:
		return "newaxis"
	case KindRange:
		var b strings.Builder
		if !s.NoStart {
			fmt.Fprintf(&b, "%d", s.Start)
		}
		b.WriteByte(':')
		if !s.NoStop {
			fmt.Fprintf(&b, "%d", s.Stop)
		}
		if s.StepValue != 1 {
			fmt.Fprintf(&b, ":%d", s.StepValue)
		}
		return b.String()
	default:
		return s.Kind.String()
	}
}

// Format returns the slicing in Python's notation, e.g.: "[1, ..., ::-1]".
func Format(specs ...Spec) string {
	parts := make([]string, len(specs))
	for ii, s := range specs {
		parts[ii] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
