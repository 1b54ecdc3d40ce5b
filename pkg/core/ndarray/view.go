// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ndarray implements N-dimensional strided views (View) over Go slices, and arrays (Array) that
// own their buffer.
//
// A View is a non-owning handle: a buffer, an offset into the buffer, a shape, strides (in elements) and one
// shapes.AxisTag per axis. Many views can alias the same buffer: slicing, binding an axis, transposing,
// taking the diagonal or inserting a new axis never copy data.
//
// Invariants of every View:
//
//   - Rank >= 1 for non-empty views. The zero value is the empty view: no data, rank 0 and Size() == 0.
//     Binding the last remaining axis yields a view shaped [1].
//   - len(shape) == len(strides) == len(tags).
//   - Axes of dimension 1 have stride 0: this makes broadcasting plain stride arithmetic.
//
// Precondition failures (invalid axes, indices out of range, incompatible shapes, ...) panic with an
// error built with github.com/gomlx/exceptions. Use exceptions.TryCatch[error] to convert them to errors.
//
// Element access (At, Set, Ptr) only validates the indices when built with `-tags=multiarray_boundscheck`.
// Otherwise out-of-range indices either panic on the underlying slice access or address an unrelated element.
package ndarray

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/shapes"
	"github.com/gomlx/multiarray/pkg/support/smallvec"
)

// View is a strided N-dimensional view over a buffer of T.
//
// It is a small value type (the shape, strides and tags are stored inline for ranks up to
// smallvec.InlineCap) and can be passed around by value.
type View[T any] struct {
	buf     []T
	offset  int
	shape   shapes.Shape
	strides smallvec.Vec[int]
	tags    shapes.AxisTags
	layout  Layout
}

// FromSlice returns a row-major contiguous View over data with the given dimensions.
// If no dimensions are given, the view is 1-D with len(data) elements.
//
// The data is not copied: changes to the view are reflected in data.
func FromSlice[T any](data []T, dimensions ...int) View[T] {
	if len(dimensions) == 0 {
		dimensions = []int{len(data)}
	}
	shape := shapes.Make(dimensions...)
	if shape.Size() != len(data) {
		exceptions.Panicf("ndarray.FromSlice: shape %s requires %d elements, but %d were given", shape, shape.Size(), len(data))
	}
	return NewView(data, 0, shape, shape.Strides(), shapes.UnknownTags(shape.Rank()))
}

// NewView returns a View over buf, starting at offset, with the given shape, strides and axis tags.
//
// It panics if any addressed element falls outside of buf. Strides of axes with dimension 1 are set to 0.
func NewView[T any](buf []T, offset int, shape shapes.Shape, strides smallvec.Vec[int], tags shapes.AxisTags) View[T] {
	if strides.Len() != shape.Rank() {
		exceptions.Panicf("ndarray.NewView: %d strides given for shape %s", strides.Len(), shape)
	}
	shapes.CheckTags(shape, tags)
	v := deriveView(buf, offset, shape, strides, tags, false)
	if v.Size() > 0 {
		lo, hi := v.offsetRange()
		if lo < 0 || hi >= len(buf) {
			exceptions.Panicf("ndarray.NewView: shape %s with strides %s at offset %d addresses elements [%d, %d], "+
				"but buffer only has %d elements", shape, strides, offset, lo, hi, len(buf))
		}
	}
	return v
}

// deriveView builds a View enforcing the invariants: rank >= 1, singleton strides set to 0 and
// the layout recomputed.
func deriveView[T any](buf []T, offset int, shape shapes.Shape, strides smallvec.Vec[int], tags shapes.AxisTags, owned bool) View[T] {
	if shape.Rank() == 0 {
		shape = shapes.Make(1)
		strides = smallvec.Of(0)
		tags = shapes.UnknownTags(1)
	} else {
		strides = shapes.ZeroSingletonStrides(shape, strides)
	}
	return View[T]{
		buf:     buf,
		offset:  offset,
		shape:   shape,
		strides: strides,
		tags:    tags,
		layout:  makeLayout(isDense(shape, strides, shapes.RowMajor), owned),
	}
}

// derive returns a new View over the same buffer, with the owns-memory flag cleared.
// Views derived from the empty view are empty.
func (v View[T]) derive(offset int, shape shapes.Shape, strides smallvec.Vec[int], tags shapes.AxisTags) View[T] {
	if v.IsEmpty() {
		return View[T]{}
	}
	return deriveView(v.buf, offset, shape, strides, tags, false)
}

// Shape returns the shape of the view. It implements shapes.HasShape.
func (v View[T]) Shape() shapes.Shape { return v.shape }

// Rank returns the number of axes. It is 0 only for the empty view.
func (v View[T]) Rank() int { return v.shape.Rank() }

// Dim returns the dimension of the axis. Negative axes count from the end.
func (v View[T]) Dim(axis int) int { return v.shape.Dim(axis) }

// Size returns the number of elements. It's 0 for the empty view.
func (v View[T]) Size() int {
	if v.shape.Rank() == 0 {
		return 0
	}
	return v.shape.Size()
}

// IsEmpty returns whether the view is the zero value: no data and rank 0.
func (v View[T]) IsEmpty() bool { return v.shape.Rank() == 0 }

// Strides returns a copy of the strides, in number of elements.
func (v View[T]) Strides() []int { return v.strides.Values() }

// Stride returns the stride of the given axis. Negative axes count from the end.
func (v View[T]) Stride(axis int) int { return v.strides.At(axis) }

// AxisTags returns the axis tags.
func (v View[T]) AxisTags() shapes.AxisTags { return v.tags }

// Layout returns the capability tag of the view.
func (v View[T]) Layout() Layout { return v.layout }

// IsContiguous returns whether the elements visited in row-major order are consecutive in memory.
func (v View[T]) IsContiguous() bool { return v.layout.IsContiguous() }

// IsUnstrided returns whether the sub-block formed by the axes [fromAxis, rank) is contiguous, that is,
// whether moving along those axes in row-major order visits consecutive elements.
//
// IsUnstrided(rank-1) reports whether the lines along the last axis are contiguous.
func (v View[T]) IsUnstrided(fromAxis int) bool {
	rank := v.Rank()
	if fromAxis < 0 || fromAxis >= max(rank, 1) {
		exceptions.Panicf("View.IsUnstrided(%d) out-of-bounds for rank %d", fromAxis, rank)
	}
	expected := 1
	for axis := rank - 1; axis >= fromAxis; axis-- {
		dim := v.shape.Dim(axis)
		if dim == 0 {
			return true
		}
		if dim != 1 && v.strides.At(axis) != expected {
			return false
		}
		expected *= dim
	}
	return true
}

// WithAxisTags returns a view of the same data with the given axis tags. The number of tags must match the rank.
func (v View[T]) WithAxisTags(tags ...shapes.AxisTag) View[T] {
	at := shapes.Tags(tags...)
	shapes.CheckTags(v.shape, at)
	v2 := v
	v2.tags = at
	return v2
}

// Data returns the whole underlying buffer the view addresses into, and the offset of the element at
// index (0, 0, ...). Together with Strides, it gives raw access to the elements.
func (v View[T]) Data() (buf []T, offset int) {
	return v.buf, v.offset
}

// Flat returns the elements of a contiguous view as a slice (not a copy), in row-major order.
// It panics if the view is not contiguous.
func (v View[T]) Flat() []T {
	if !v.IsContiguous() {
		exceptions.Panicf("View.Flat() requires a contiguous view, got shape %s with strides %s", v.shape, v.strides)
	}
	n := v.Size()
	if n == 0 {
		return nil
	}
	return v.buf[v.offset : v.offset+n]
}

// offsetRange returns the smallest and the largest buffer position addressed by the view.
// It assumes Size() > 0.
func (v View[T]) offsetRange() (lo, hi int) {
	lo, hi = v.offset, v.offset
	for axis, stride := range v.strides.All() {
		extent := (v.shape.Dim(axis) - 1) * stride
		if extent < 0 {
			lo += extent
		} else {
			hi += extent
		}
	}
	return
}

// Offset returns the position in the underlying buffer (see Data) of the element with the given indices.
func (v View[T]) Offset(indices ...int) int {
	rank := v.Rank()
	if len(indices) != rank {
		exceptions.Panicf("View: %d indices given for shape %s", len(indices), v.shape)
	}
	pos := v.offset
	for axis, idx := range indices {
		if boundsChecking {
			if idx < 0 || idx >= v.shape.Dim(axis) {
				exceptions.Panicf("View: index %v out of range for shape %s", indices, v.shape)
			}
		}
		pos += idx * v.strides.At(axis)
	}
	return pos
}

// At returns the element at the given indices.
func (v View[T]) At(indices ...int) T {
	return v.buf[v.Offset(indices...)]
}

// Set sets the element at the given indices.
func (v View[T]) Set(value T, indices ...int) {
	v.buf[v.Offset(indices...)] = value
}

// Ptr returns a pointer to the element at the given indices.
func (v View[T]) Ptr(indices ...int) *T {
	return &v.buf[v.Offset(indices...)]
}

// flatOffset converts a row-major flat index to a buffer position.
func (v View[T]) flatOffset(flatIdx int) int {
	if boundsChecking {
		if flatIdx < 0 || flatIdx >= v.Size() {
			exceptions.Panicf("View: flat index %d out of range for shape %s", flatIdx, v.shape)
		}
	}
	if v.IsContiguous() {
		return v.offset + flatIdx
	}
	pos := v.offset
	for axis := v.Rank() - 1; axis >= 0; axis-- {
		dim := v.shape.Dim(axis)
		pos += (flatIdx % dim) * v.strides.At(axis)
		flatIdx /= dim
	}
	return pos
}

// AtFlat returns the element at position flatIdx in row-major order.
func (v View[T]) AtFlat(flatIdx int) T {
	return v.buf[v.flatOffset(flatIdx)]
}

// SetFlat sets the element at position flatIdx in row-major order.
func (v View[T]) SetFlat(value T, flatIdx int) {
	v.buf[v.flatOffset(flatIdx)] = value
}

// Iter iterates over all indices of the view in row-major order.
//
// It yields the flat index (counter) and a slice of indices for each axis.
// The yielded indices slice is owned by the iterator: don't change it inside the loop.
func (v View[T]) Iter() iter.Seq2[int, []int] {
	if v.IsEmpty() {
		return func(func(int, []int) bool) {}
	}
	return v.shape.Iter()
}

// offsets iterates over the buffer positions of the elements, in row-major order.
func (v View[T]) offsets() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		n := v.Size()
		if n == 0 {
			return
		}
		if v.IsContiguous() {
			for ii := range n {
				if !yield(ii, v.offset+ii) {
					return
				}
			}
			return
		}
		counter := 0
		for rel := range v.shape.IterStrided(v.strides.Values()) {
			if !yield(counter, v.offset+rel) {
				return
			}
			counter++
		}
	}
}

// All iterates over the elements in row-major order, yielding the flat index and the value.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for ii, pos := range v.offsets() {
			if !yield(ii, v.buf[pos]) {
				return
			}
		}
	}
}

// Values returns a newly allocated slice with the elements, in row-major order.
func (v View[T]) Values() []T {
	out := make([]T, v.Size())
	if v.IsContiguous() {
		copy(out, v.Flat())
		return out
	}
	for ii, pos := range v.offsets() {
		out[ii] = v.buf[pos]
	}
	return out
}

// String implements fmt.Stringer. It doesn't print the values, see Summary for that.
func (v View[T]) String() string {
	return fmt.Sprintf("View[%s]{shape=%s, strides=%s, tags=%s, layout=%s}",
		reflect.TypeFor[T](), v.shape, v.strides, v.tags, v.layout)
}
