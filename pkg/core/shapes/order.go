// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/support/smallvec"
)

// MemoryOrder defines how the elements of a contiguous array are laid out in memory.
type MemoryOrder int

//go:generate go tool enumer -type=MemoryOrder -output=gen_memoryorder_enumer.go order.go

const (
	// RowMajor (a.k.a. "C order"): the last axis changes fastest.
	RowMajor MemoryOrder = iota

	// ColumnMajor (a.k.a. "Fortran order"): the first axis changes fastest.
	ColumnMajor
)

// Strides returns the strides for each axis of the shape, for a contiguous layout in the given memory order.
//
// Notice the strides are **not in bytes**, but in elements.
//
// Axes with dimension 1 get stride 0 (the singleton rule): this way an axis of dimension 1 can be broadcast
// to any dimension by simply changing its extent.
func Strides(s Shape, order MemoryOrder) smallvec.Vec[int] {
	rank := s.Rank()
	strides := smallvec.Make[int](rank)
	currentStride := 1
	step := func(axis int) {
		dim := s.dims.At(axis)
		if dim != 1 {
			strides.Set(axis, currentStride)
		}
		currentStride *= max(dim, 1)
	}
	switch order {
	case RowMajor:
		for axis := rank - 1; axis >= 0; axis-- {
			step(axis)
		}
	case ColumnMajor:
		for axis := range rank {
			step(axis)
		}
	default:
		exceptions.Panicf("shapes.Strides: invalid memory order %s", order)
	}
	return strides
}

// Strides returns the strides for each axis of the shape, assuming a "row-major" layout.
// See the function Strides for details.
func (s Shape) Strides() smallvec.Vec[int] {
	return Strides(s, RowMajor)
}

// ZeroSingletonStrides returns a copy of strides with the stride of every axis of dimension 1 set to 0.
func ZeroSingletonStrides(s Shape, strides smallvec.Vec[int]) smallvec.Vec[int] {
	if strides.Len() != s.Rank() {
		exceptions.Panicf("shapes.ZeroSingletonStrides: %d strides given for shape %s", strides.Len(), s)
	}
	out := strides.Clone()
	for axis, dim := range s.dims.All() {
		if dim == 1 {
			out.Set(axis, 0)
		}
	}
	return out
}
