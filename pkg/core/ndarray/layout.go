// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ndarray

import (
	"github.com/gomlx/multiarray/pkg/core/shapes"
	"github.com/gomlx/multiarray/pkg/support/smallvec"
)

// Layout is the capability tag of a View: whether its elements are contiguous in row-major order, and
// whether it is the view embedded in an Array (that owns the memory).
//
// It's recomputed whenever a View is derived from another, and used to select the raw-buffer fast paths.
type Layout uint8

//go:generate go tool enumer -type=Layout -output=gen_layout_enumer.go layout.go

const (
	StridedView Layout = iota
	ContiguousView
	StridedOwned
	ContiguousOwned
)

func makeLayout(contiguous, owned bool) Layout {
	switch {
	case contiguous && owned:
		return ContiguousOwned
	case owned:
		return StridedOwned
	case contiguous:
		return ContiguousView
	default:
		return StridedView
	}
}

// IsContiguous returns whether the elements visited in row-major order are consecutive in memory.
func (l Layout) IsContiguous() bool {
	return l == ContiguousView || l == ContiguousOwned
}

// OwnsMemory returns whether the layout belongs to an Array.
func (l Layout) OwnsMemory() bool {
	return l == StridedOwned || l == ContiguousOwned
}

// isDense returns whether the strides address a dense block of memory in the given order.
// Axes of dimension 1 are ignored, and empty shapes are always dense.
func isDense(shape shapes.Shape, strides smallvec.Vec[int], order shapes.MemoryOrder) bool {
	if shape.IsZeroSize() {
		return true
	}
	rank := shape.Rank()
	expected := 1
	check := func(axis int) bool {
		dim := shape.Dim(axis)
		if dim != 1 && strides.At(axis) != expected {
			return false
		}
		expected *= dim
		return true
	}
	if order == shapes.RowMajor {
		for axis := rank - 1; axis >= 0; axis-- {
			if !check(axis) {
				return false
			}
		}
		return true
	}
	for axis := range rank {
		if !check(axis) {
			return false
		}
	}
	return true
}
