// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapes defines Shape, MemoryOrder, AxisTag and associated tools.
//
// Shape holds the extents (dimensions) of an N-dimensional array. It doesn't include the element type:
// the arrays in package ndarray are generic on the element type instead.
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of an array.
//   - Axis: is the index of a dimension on a multidimensional array. Sometimes used
//     interchangeably with Dimension, but here we try to refer to a dimension index as "axis"
//     (plural axes), and its size as its dimension (or extent).
//   - Dimension: the size of a multi-dimensions array in one of its axes.
//   - Strides: for each axis the number of elements (not bytes) to skip in memory to move one
//     position along that axis.
//   - Axis tag: semantic label of an axis (channels, spatial x/y/z, time, ...). See AxisTag.
//
// Example: a row-major array holding `[][]int32{{0, 1, 2}, {3, 4, 5}}` has shape `[2 3]` and
// strides `[3 1]`. We say it has rank 2 (so 2 axes), axis 0 has dimension 2, and axis 1 has
// dimension 3. This shape could be created with `shapes.Make(2, 3)`.
//
// ## Asserts
//
// There is no compile-time checking of ranks and dimensions, so validation only happens at runtime.
// To facilitate, and also to serve as code documentation, this package provides AssertRank and
// AssertDims: they panic (with an exception) if the object's shape doesn't match.
// The `-1` means the dimension is unchecked (it can be anything).
package shapes

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/support/smallvec"
	"github.com/gomlx/multiarray/pkg/support/xslices"
)

// Shape represents the dimensions of an N-dimensional array.
//
// A Shape is a value type: the methods that return a modified Shape never alias the receiver's storage.
// The zero value is a shape of rank 0 and size 1, which arrays never use (the minimum rank is 1),
// but is handy as a "not set" marker.
type Shape struct {
	dims smallvec.Vec[int]
}

// HasShape is an interface for objects that have an associated Shape.
// ndarray.View and ndarray.Array implement it.
type HasShape interface {
	Shape() Shape
}

// Make returns a Shape with the given dimensions. Dimensions must be >= 0: a zero dimension is valid
// and yields an empty shape (Size() == 0).
func Make(dimensions ...int) Shape {
	s := Shape{dims: smallvec.Of(dimensions...)}
	for _, dim := range dimensions {
		if dim < 0 {
			exceptions.Panicf("shapes.Make(%s): cannot create a shape with an axis with dimension < 0", s)
		}
	}
	return s
}

// FromVec returns a Shape from a smallvec.Vec of dimensions. The Vec is cloned.
func FromVec(dims smallvec.Vec[int]) Shape {
	s := Shape{dims: dims.Clone()}
	for _, dim := range s.dims.All() {
		if dim < 0 {
			exceptions.Panicf("shapes.FromVec(%s): cannot create a shape with an axis with dimension < 0", s)
		}
	}
	return s
}

// Shape returns itself. It implements the HasShape interface.
func (s Shape) Shape() Shape { return s }

// Rank of the shape, that is, the number of dimensions.
func (s Shape) Rank() int { return s.dims.Len() }

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.dims.At(adjustedAxis)
}

// Dimensions returns a newly allocated slice with the dimensions.
func (s Shape) Dimensions() []int { return s.dims.Values() }

// Vec returns a copy of the dimensions as a smallvec.Vec.
func (s Shape) Vec() smallvec.Vec[int] { return s.dims.Clone() }

// String implements stringer, pretty-prints the shape.
func (s Shape) String() string {
	return s.dims.String()
}

// Size returns the number of elements for this shape. It's the product of all dimensions,
// and 0 if any of the dimensions is 0.
func (s Shape) Size() int {
	return xslices.Product(s.dims.Values())
}

// IsZeroSize returns whether any of the dimensions is 0.
func (s Shape) IsZeroSize() bool {
	for _, d := range s.dims.All() {
		if d == 0 {
			return true
		}
	}
	return false
}

// Equal compares the dimensions of two shapes.
func (s Shape) Equal(s2 Shape) bool {
	return smallvec.Equal(s.dims, s2.dims)
}

// WithDim returns a copy of the shape with the dimension of axis replaced.
func (s Shape) WithDim(axis, dim int) Shape {
	if axis < 0 {
		axis += s.Rank()
	}
	if axis < 0 || axis >= s.Rank() {
		exceptions.Panicf("Shape.WithDim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	if dim < 0 {
		exceptions.Panicf("Shape.WithDim(%d, %d): dimension must be >= 0", axis, dim)
	}
	out := s.dims.Clone()
	out.Set(axis, dim)
	return Shape{dims: out}
}

// Remove returns a copy of the shape with the given axis removed.
func (s Shape) Remove(axis int) Shape {
	if axis < 0 || axis >= s.Rank() {
		exceptions.Panicf("Shape.Remove(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return Shape{dims: s.dims.Remove(axis)}
}

// Insert returns a copy of the shape with a new axis of the given dimension inserted at position axis
// (0 <= axis <= rank).
func (s Shape) Insert(axis, dim int) Shape {
	if axis < 0 || axis > s.Rank() {
		exceptions.Panicf("Shape.Insert(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	if dim < 0 {
		exceptions.Panicf("Shape.Insert(%d, %d): dimension must be >= 0", axis, dim)
	}
	return Shape{dims: s.dims.Insert(axis, dim)}
}

// Permute returns a copy of the shape with the axes permuted: out.Dim(i) = s.Dim(perm[i]).
// The caller is responsible for validating the permutation.
func (s Shape) Permute(perm []int) Shape {
	return Shape{dims: s.dims.Permute(perm)}
}

// Min returns the smallest dimension, or 0 for a rank-0 shape.
func (s Shape) Min() int {
	return xslices.Min(s.dims.Values())
}

// AssertRank checks that the shape has the given rank.
//
// It panics if it doesn't match.
func AssertRank(shaped HasShape, rank int) {
	s := shaped.Shape()
	if s.Rank() != rank {
		exceptions.Panicf("assertRank(%d): shape %s has rank %d", rank, s, s.Rank())
	}
}

// AssertDims checks that the shape has the given dimensions and rank. A value of -1 in
// dimensions means it can take any value and is not checked.
//
// It panics if it doesn't match.
func AssertDims(shaped HasShape, dimensions ...int) {
	s := shaped.Shape()
	AssertRank(shaped, len(dimensions))
	for axis, want := range dimensions {
		if want != -1 && s.Dim(axis) != want {
			exceptions.Panicf("assertDims(%v): shape %s has dimension %d on axis %d", dimensions, s, s.Dim(axis), axis)
		}
	}
}
