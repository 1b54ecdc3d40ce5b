// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package slicing

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/shapes"
	"github.com/gomlx/multiarray/pkg/support/smallvec"
)

// Result of resolving a slicing over a shape and its strides.
type Result struct {
	// Point holds, for each original axis, the position where the selection starts:
	// the index for Index specs, and the first selected position for ranges (0 for empty ranges).
	Point []int

	// Offset is the element offset of the selection start: the dot product of Point and the original strides.
	Offset int

	// Shape and Strides of the selection.
	Shape   shapes.Shape
	Strides smallvec.Vec[int]

	// Source holds, for each axis of the selection, the original axis it comes from, or -1 for new axes.
	Source []int
}

// Resolve applies the slicing specs to an array with the given shape and strides.
//
// It panics if:
//
//   - There is more than one Ellipsis.
//   - The number of specs (not counting NewAxis and Ellipsis) is larger than the rank.
//   - An Index is out of range.
//   - A range has step 0.
//
// Ranges are clamped to the axis, and follow Python's (numpy) semantics for the number of selected elements.
// Axes of the result with dimension 1 get stride 0. An empty range with start == stop keeps the original
// stride of the axis.
func Resolve(shape shapes.Shape, strides smallvec.Vec[int], specs ...Spec) Result {
	rank := shape.Rank()
	if strides.Len() != rank {
		exceptions.Panicf("slicing.Resolve: %d strides given for shape %s", strides.Len(), shape)
	}
	specs = expandEllipsis(rank, specs)

	res := Result{Point: make([]int, rank)}
	var (
		dims       smallvec.Vec[int]
		newStrides smallvec.Vec[int]
	)
	axis := 0
	for _, spec := range specs {
		switch spec.Kind {
		case KindNewAxis:
			dims.Append(1)
			newStrides.Append(0)
			res.Source = append(res.Source, -1)

		case KindIndex:
			dim := shape.Dim(axis)
			idx := spec.Start
			if idx < 0 {
				idx += dim
			}
			if idx < 0 || idx >= dim {
				exceptions.Panicf("slicing: index %d out of range for axis %d of dimension %d (shape %s)",
					spec.Start, axis, dim, shape)
			}
			res.Point[axis] = idx
			axis++

		case KindRange:
			dim := shape.Dim(axis)
			start, count := AdjustRange(spec, dim)
			stride := strides.At(axis)
			switch {
			case count == 1:
				stride = 0
			case count == 0 && !spec.NoStart && !spec.NoStop && spec.Start == spec.Stop:
				// Empty range with start == stop: keep the original stride.
			default:
				stride *= spec.StepValue
			}
			if count > 0 {
				res.Point[axis] = start
			}
			dims.Append(count)
			newStrides.Append(stride)
			res.Source = append(res.Source, axis)
			axis++

		default:
			exceptions.Panicf("slicing: invalid spec %s", spec)
		}
	}
	for ii, idx := range res.Point {
		res.Offset += idx * strides.At(ii)
	}
	res.Shape = shapes.FromVec(dims)
	res.Strides = newStrides
	return res
}

// expandEllipsis validates the specs and returns them with the Ellipsis expanded and with trailing
// unspecified axes filled with All().
func expandEllipsis(rank int, specs []Spec) []Spec {
	numEllipsis, numConsuming := 0, 0
	for _, spec := range specs {
		switch spec.Kind {
		case KindEllipsis:
			numEllipsis++
		case KindNewAxis:
		default:
			numConsuming++
		}
	}
	if numEllipsis > 1 {
		exceptions.Panicf("slicing: only one Ellipsis is allowed, got %d in %s", numEllipsis, Format(specs...))
	}
	if numConsuming > rank {
		exceptions.Panicf("slicing: %d axes specified in %s, but rank is only %d", numConsuming, Format(specs...), rank)
	}
	missing := rank - numConsuming
	expanded := make([]Spec, 0, len(specs)+missing)
	for _, spec := range specs {
		if spec.Kind == KindEllipsis {
			for range missing {
				expanded = append(expanded, All())
			}
			missing = 0
			continue
		}
		expanded = append(expanded, spec)
	}
	for range missing {
		expanded = append(expanded, All())
	}
	return expanded
}

// AdjustRange returns the first selected position and the number of elements selected by the range spec
// on an axis of dimension dim.
//
// Negative start and stop are taken from the end of the axis, and then clamped, as in Python's slices.
// If count is 0, the value of start is meaningless.
func AdjustRange(spec Spec, dim int) (start, count int) {
	step := spec.StepValue
	if step == 0 {
		exceptions.Panicf("slicing: range %s with step 0", spec)
	}
	var stop int
	if step > 0 {
		start = adjustBound(spec.Start, spec.NoStart, 0, dim, 0, dim)
		stop = adjustBound(spec.Stop, spec.NoStop, dim, dim, 0, dim)
		if stop > start {
			count = (stop-start-1)/step + 1
		}
	} else {
		start = adjustBound(spec.Start, spec.NoStart, dim-1, dim, -1, dim-1)
		stop = adjustBound(spec.Stop, spec.NoStop, -1, dim, -1, dim-1)
		if start > stop {
			count = (start-stop-1)/(-step) + 1
		}
	}
	return
}

// adjustBound resolves a negative bound relative to dim, and clamps it to [lower, upper].
// Missing bounds take defaultValue.
func adjustBound(value int, missing bool, defaultValue, dim, lower, upper int) int {
	if missing {
		return defaultValue
	}
	if value < 0 {
		value += dim
	}
	return min(max(value, lower), upper)
}
