// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"iter"

	"github.com/gomlx/exceptions"
)

// denseStrides returns the plain row-major strides (without the singleton rule) as a slice.
func (s Shape) denseStrides() []int {
	rank := s.Rank()
	strides := make([]int, rank)
	currentStride := 1
	for axis := rank - 1; axis >= 0; axis-- {
		strides[axis] = currentStride
		currentStride *= s.dims.At(axis)
	}
	return strides
}

// Iter visits every element position of an array with this shape, in row-major order.
//
// It yields the row-major counter and the indices of the element. The indices slice is reused
// between steps, so don't change or keep it: clone it if needed.
//
// A rank-0 shape yields once, with empty indices. A shape with a zero dimension yields nothing.
func (s Shape) Iter() iter.Seq2[int, []int] {
	return s.IterStrided(nil)
}

// IterStrided is like Iter, but instead of the row-major counter it yields the offset of each element
// for an array with the given strides: the sum of indices[axis]*strides[axis].
// If strides is nil, the dense row-major strides are used, and the offset is the row-major counter.
//
// It's the loop behind strided views: given a view's strides, it visits the buffer positions of its
// elements in row-major order.
func (s Shape) IterStrided(strides []int) iter.Seq2[int, []int] {
	if s.IsZeroSize() {
		return func(func(int, []int) bool) {}
	}
	// Axes of dimension 1 never move, so they are left out of the walk.
	axes := make([]int, 0, s.Rank())
	for axis, dim := range s.dims.All() {
		if dim > 1 {
			axes = append(axes, axis)
		}
	}
	return s.IterOnAxes(axes, strides, nil)
}

// IterOnAxes walks, in row-major order, the positions of the axes in axesToIterate, leaving the
// other indices fixed.
//
// It yields the offset of the position and the indices for all axes of the shape. Axes in axesToIterate
// must be in the range [0, rank), and they are walked in the order given, the last one changing fastest.
//
//   - strides: used to compute the offset, the sum of indices[axis]*strides[axis] over all axes. If nil, the
//     dense row-major strides of the shape are used. Otherwise, len(strides) must be the rank.
//   - indices: the slice yielded during the walk. The axes not iterated keep their values (and count for the
//     offset). If nil, a zero slice is allocated. Otherwise, len(indices) must be the rank.
//
// The indices slice must not be changed by the caller during the walk.
//
// Example: fix the middle axis of a [2, 3, 4] shape to 1, and walk the other two.
//
//	indices := []int{0, 1, 0}
//	for offset, idx := range shapes.Make(2, 3, 4).IterOnAxes([]int{0, 2}, nil, indices) {
//		fmt.Println(offset, idx) // 4 [0 1 0], 5 [0 1 1], ..., 19 [1 1 3]
//	}
func (s Shape) IterOnAxes(axesToIterate, strides, indices []int) iter.Seq2[int, []int] {
	rank := s.Rank()
	if strides == nil {
		strides = s.denseStrides()
	} else if len(strides) != rank {
		exceptions.Panicf("Shape.IterOnAxes: got %d strides for shape %s", len(strides), s)
	}
	if indices == nil {
		indices = make([]int, rank)
	} else if len(indices) != rank {
		exceptions.Panicf("Shape.IterOnAxes: got %d indices for shape %s", len(indices), s)
	}
	for _, axis := range axesToIterate {
		if axis < 0 || axis >= rank {
			exceptions.Panicf("Shape.IterOnAxes: axis %d out of range for shape %s", axis, s)
		}
	}
	dims := s.Dimensions()
	return func(yield func(int, []int) bool) {
		for _, axis := range axesToIterate {
			if dims[axis] == 0 {
				return
			}
			indices[axis] = 0
		}
		offset := 0
		for axis, idx := range indices {
			offset += idx * strides[axis]
		}
		for {
			if !yield(offset, indices) {
				return
			}
			// Odometer step: increment the last axis, carrying over to the previous ones.
			ii := len(axesToIterate) - 1
			for ; ii >= 0; ii-- {
				axis := axesToIterate[ii]
				indices[axis]++
				offset += strides[axis]
				if indices[axis] < dims[axis] {
					break
				}
				offset -= indices[axis] * strides[axis]
				indices[axis] = 0
			}
			if ii < 0 {
				return
			}
		}
	}
}
