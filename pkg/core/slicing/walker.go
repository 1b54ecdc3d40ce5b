// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package slicing

import (
	"iter"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/shapes"
	"github.com/gomlx/multiarray/pkg/support/sets"
)

// Walker visits every combination of indices of the non-free ("walked") axes of a shape,
// leaving the free axes spanning their full range.
//
// With one free axis, each step of the walker selects one 1-D line along that axis.
//
// Usage:
//
//	w := slicing.NewWalker(shape, shapes.RowMajor, axis)
//	for ; w.HasMore(); w.Next() {
//		line := view.Slice(w.Specs()...)
//		...
//	}
type Walker struct {
	dims   []int
	order  shapes.MemoryOrder
	free   []bool
	walked []int // Walked axes, fastest changing first.
	point  []int
	done   bool
	count  int
}

// NewWalker creates a Walker over shape, where freeAxes are not walked.
// The walked axes are visited in the given memory order: for RowMajor the last axis changes fastest.
//
// Free axes must be unique and in range. It's valid for all axes to be free, in which case there is
// exactly one step.
func NewWalker(shape shapes.Shape, order shapes.MemoryOrder, freeAxes ...int) *Walker {
	rank := shape.Rank()
	w := &Walker{
		dims:  shape.Dimensions(),
		order: order,
		free:  make([]bool, rank),
		point: make([]int, rank),
	}
	if !sets.AllUnique(freeAxes...) {
		exceptions.Panicf("slicing.NewWalker: free axes %v must be unique", freeAxes)
	}
	for _, axis := range freeAxes {
		if axis < 0 || axis >= rank {
			exceptions.Panicf("slicing.NewWalker: free axis %d out of range for shape %s", axis, shape)
		}
		w.free[axis] = true
	}
	for axis := range rank {
		if !w.free[axis] {
			w.walked = append(w.walked, axis)
		}
	}
	switch order {
	case shapes.RowMajor:
		slices.Reverse(w.walked)
	case shapes.ColumnMajor:
	default:
		exceptions.Panicf("slicing.NewWalker: invalid memory order %s", order)
	}
	w.Reset()
	return w
}

// Reset restarts the walk from the beginning.
func (w *Walker) Reset() {
	for ii := range w.point {
		w.point[ii] = 0
	}
	w.count = 0
	w.done = false
	for _, axis := range w.walked {
		if w.dims[axis] == 0 {
			w.done = true
		}
	}
}

// HasMore returns whether the walker is pointing to a valid combination.
func (w *Walker) HasMore() bool {
	return !w.done
}

// Next advances to the next combination of the walked axes.
func (w *Walker) Next() {
	if w.done {
		return
	}
	w.count++
	for _, axis := range w.walked {
		w.point[axis]++
		if w.point[axis] < w.dims[axis] {
			return
		}
		w.point[axis] = 0
	}
	// All walked axes overflowed.
	w.done = true
}

// Point returns the current index of every axis: free axes are always 0.
//
// The returned slice is owned by the Walker and is updated by Next: don't change it.
func (w *Walker) Point() []int {
	return w.point
}

// Count returns the number of steps taken since the start of the walk.
func (w *Walker) Count() int {
	return w.count
}

// NumSteps returns the total number of combinations the walker visits.
func (w *Walker) NumSteps() int {
	n := 1
	for _, axis := range w.walked {
		n *= w.dims[axis]
	}
	return n
}

// Specs returns the slicing that selects the current combination: Index for the walked axes, and All
// for the free axes.
func (w *Walker) Specs() []Spec {
	specs := make([]Spec, len(w.point))
	for axis, idx := range w.point {
		if w.free[axis] {
			specs[axis] = All()
		} else {
			specs[axis] = Index(idx)
		}
	}
	return specs
}

// Walk returns an iterator over the points of a Walker, see NewWalker.
//
// The yielded slice is owned by the iterator: don't change it inside the loop.
func Walk(shape shapes.Shape, order shapes.MemoryOrder, freeAxes ...int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		w := NewWalker(shape, order, freeAxes...)
		for ; w.HasMore(); w.Next() {
			if !yield(w.Point()) {
				return
			}
		}
	}
}
