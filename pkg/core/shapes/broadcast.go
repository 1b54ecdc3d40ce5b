// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/support/smallvec"
)

// CanBroadcastTo returns whether src can be broadcast to dst.
//
// Axes are aligned from the end (trailing axes). src can't have a larger rank than dst,
// and each src axis must either match the corresponding dst dimension or be 1.
func CanBroadcastTo(src, dst Shape) bool {
	offset := dst.Rank() - src.Rank()
	if offset < 0 {
		return false
	}
	for axis, dim := range src.dims.All() {
		if dim != 1 && dim != dst.dims.At(axis+offset) {
			return false
		}
	}
	return true
}

// Broadcast returns the shape resulting from broadcasting all the given shapes together, aligning
// trailing axes. An axis of dimension 1 broadcasts to any dimension, any other mismatch panics.
func Broadcast(shapes ...Shape) Shape {
	rank := 0
	for _, s := range shapes {
		rank = max(rank, s.Rank())
	}
	dims := smallvec.Filled(rank, 1)
	for _, s := range shapes {
		offset := rank - s.Rank()
		for axis, dim := range s.dims.All() {
			outAxis := axis + offset
			current := dims.At(outAxis)
			switch {
			case dim == current || dim == 1:
			case current == 1:
				dims.Set(outAxis, dim)
			default:
				exceptions.Panicf("shapes.Broadcast: incompatible shapes %v: dimension %d vs %d", shapes, current, dim)
			}
		}
	}
	return Shape{dims: dims}
}

// BroadcastStrides returns the strides to use when reading an operand of shape src and strides
// srcStrides as if it had shape dst.
//
// Leading axes missing from src and axes of dimension 1 get stride 0. It panics if src can't be broadcast
// to dst.
func BroadcastStrides(src Shape, srcStrides smallvec.Vec[int], dst Shape) smallvec.Vec[int] {
	if !CanBroadcastTo(src, dst) {
		exceptions.Panicf("shape %s cannot be broadcast to shape %s", src, dst)
	}
	if srcStrides.Len() != src.Rank() {
		exceptions.Panicf("shapes.BroadcastStrides: %d strides given for shape %s", srcStrides.Len(), src)
	}
	offset := dst.Rank() - src.Rank()
	strides := smallvec.Make[int](dst.Rank())
	for axis, dim := range src.dims.All() {
		if dim != 1 {
			strides.Set(axis+offset, srcStrides.At(axis))
		}
	}
	return strides
}
