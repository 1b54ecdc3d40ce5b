// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ndarray

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/shapes"
	"github.com/gomlx/multiarray/pkg/core/slicing"
	"github.com/gomlx/multiarray/pkg/support/sets"
	"github.com/gomlx/multiarray/pkg/support/smallvec"
	"github.com/gomlx/multiarray/pkg/support/xslices"
)

// Bind fixes axis to index, and returns the view with that axis removed.
//
// Binding the only axis of a 1-D view returns a view shaped [1] pointing to the element.
func (v View[T]) Bind(axis, index int) View[T] {
	rank := v.Rank()
	if axis < 0 || axis >= rank {
		exceptions.Panicf("View.Bind(axis=%d, index=%d): axis out-of-bounds for shape %s", axis, index, v.shape)
	}
	if index < 0 || index >= v.shape.Dim(axis) {
		exceptions.Panicf("View.Bind(axis=%d, index=%d): index out-of-bounds for shape %s", axis, index, v.shape)
	}
	return v.derive(v.offset+index*v.strides.At(axis),
		v.shape.Remove(axis), v.strides.Remove(axis), v.tags.Remove(axis))
}

// BindAxes fixes each of the axes to the corresponding index. Axes must be unique, in ascending order and
// within the rank. The axes are bound from the last to the first, so the axis numbers refer to the original view.
func (v View[T]) BindAxes(axes, indices []int) View[T] {
	if len(axes) != len(indices) {
		exceptions.Panicf("View.BindAxes(%v, %v): number of axes and indices don't match", axes, indices)
	}
	for ii, axis := range axes {
		if axis < 0 || axis >= v.Rank() || (ii > 0 && axes[ii-1] >= axis) {
			exceptions.Panicf("View.BindAxes(%v, %v): axes must be unique, ascending and in range for shape %s",
				axes, indices, v.shape)
		}
	}
	out := v
	for ii := len(axes) - 1; ii >= 0; ii-- {
		out = out.Bind(axes[ii], indices[ii])
	}
	return out
}

// BindFirst fixes the first axis to index.
func (v View[T]) BindFirst(index int) View[T] { return v.Bind(0, index) }

// BindLast fixes the last axis to index.
func (v View[T]) BindLast(index int) View[T] { return v.Bind(v.Rank()-1, index) }

// Subarray returns the view of the block [p, q) of the view.
//
// Negative entries of p or q are taken from the end of the axis. After that, 0 <= p[i] <= q[i] <= dim(i) is required.
func (v View[T]) Subarray(p, q []int) View[T] {
	rank := v.Rank()
	if len(p) != rank || len(q) != rank {
		exceptions.Panicf("View.Subarray(%v, %v): both corners must have rank %d (shape %s)", p, q, rank, v.shape)
	}
	dims := smallvec.Make[int](rank)
	offset := v.offset
	for axis := range rank {
		dim := v.shape.Dim(axis)
		start, stop := p[axis], q[axis]
		if start < 0 {
			start += dim
		}
		if stop < 0 {
			stop += dim
		}
		if start < 0 || start > stop || stop > dim {
			exceptions.Panicf("View.Subarray(%v, %v): invalid range for axis %d of shape %s", p, q, axis, v.shape)
		}
		dims.Set(axis, stop-start)
		offset += start * v.strides.At(axis)
	}
	return v.derive(offset, shapes.FromVec(dims), v.strides, v.tags)
}

// Transpose returns the view with the axes permuted: axis i of the result is axis permutation[i] of v.
// Without arguments, it reverses the order of the axes (for a matrix, the usual transpose).
// The empty view is returned unchanged.
//
// No data is moved.
func (v View[T]) Transpose(permutation ...int) View[T] {
	if v.IsEmpty() && len(permutation) == 0 {
		return v
	}
	rank := v.Rank()
	if len(permutation) == 0 {
		permutation = xslices.Reversed(xslices.Iota(0, rank))
	}
	if len(permutation) != rank || !xslices.IsPermutation(permutation) {
		exceptions.Panicf("View.Transpose(%v): invalid permutation for shape %s", permutation, v.shape)
	}
	return v.derive(v.offset, v.shape.Permute(permutation), v.strides.Permute(permutation), v.tags.Permute(permutation))
}

// MoveAxis returns the view with the axis from moved to position to, keeping the relative order of
// the other axes.
func (v View[T]) MoveAxis(from, to int) View[T] {
	rank := v.Rank()
	if from < 0 || from >= rank || to < 0 || to >= rank {
		exceptions.Panicf("View.MoveAxis(%d, %d) out-of-bounds for shape %s", from, to, v.shape)
	}
	perm := xslices.Iota(0, rank)
	perm = slices.Delete(perm, from, from+1)
	perm = slices.Insert(perm, to, from)
	return v.Transpose(perm...)
}

// Reshape returns a view of the same data with a new shape. The new shape must have the same number of elements,
// and the view must be dense (contiguous in row-major or column-major order).
//
// The strides are rebuilt from the new shape for the given memory order, and the axis tags are reset to
// shapes.AxisUnknown. The owns-memory flag is preserved.
func (v View[T]) Reshape(shape shapes.Shape, order shapes.MemoryOrder) View[T] {
	return v.ReshapeTags(shape, shapes.UnknownTags(shape.Rank()), order)
}

// ReshapeTags is like Reshape, but also sets the axis tags of the new view.
func (v View[T]) ReshapeTags(shape shapes.Shape, tags shapes.AxisTags, order shapes.MemoryOrder) View[T] {
	shapes.CheckTags(shape, tags)
	if shape.Size() != v.Size() {
		exceptions.Panicf("View.Reshape(%s): number of elements (%d) differs from the view's shape %s (%d)",
			shape, shape.Size(), v.shape, v.Size())
	}
	if !isDense(v.shape, v.strides, shapes.RowMajor) && !isDense(v.shape, v.strides, shapes.ColumnMajor) {
		exceptions.Panicf("View.Reshape(%s): view shaped %s with strides %s is not contiguous", shape, v.shape, v.strides)
	}
	start := v.offset
	if v.Size() > 0 {
		start, _ = v.offsetRange()
	}
	return deriveView(v.buf, start, shape, shapes.Strides(shape, order), tags, v.layout.OwnsMemory())
}

// Diagonal returns the 1-D view of the elements with all indices equal: its dimension is the smallest
// dimension of v, and its stride is the sum of the strides. The empty view is returned unchanged.
func (v View[T]) Diagonal() View[T] {
	if v.IsEmpty() {
		return v
	}
	stride := 0
	for _, s := range v.strides.All() {
		stride += s
	}
	return v.derive(v.offset, shapes.Make(v.shape.Min()), smallvec.Of(stride), shapes.UnknownTags(1))
}

// NewAxis inserts a new axis of dimension 1 (and stride 0) at position axis, with the given tag.
// 0 <= axis <= rank.
func (v View[T]) NewAxis(axis int, tag shapes.AxisTag) View[T] {
	if axis < 0 || axis > v.Rank() {
		exceptions.Panicf("View.NewAxis(%d) out-of-bounds for shape %s", axis, v.shape)
	}
	return v.derive(v.offset, v.shape.Insert(axis, 1), v.strides.Insert(axis, 0), v.tags.Insert(axis, tag))
}

// Slice returns the view selected by the slicing specs (see package slicing).
//
// Example:
//
//	// x[-1, ..., 1:4:2]
//	y := x.Slice(slicing.Index(-1), slicing.Ellipsis(), slicing.Range(1, 4, 2))
func (v View[T]) Slice(specs ...slicing.Spec) View[T] {
	res := slicing.Resolve(v.shape, v.strides, specs...)
	tags := shapes.UnknownTags(len(res.Source))
	for axis, src := range res.Source {
		if src >= 0 {
			tags = tags.With(axis, v.tags.At(src))
		}
	}
	return v.derive(v.offset+res.Offset, res.Shape, res.Strides, tags)
}

// Squeeze removes the given axes, which must have dimension 1. Without arguments, it removes all
// axes of dimension 1 (keeping at least one axis).
func (v View[T]) Squeeze(axes ...int) View[T] {
	if len(axes) == 0 {
		for axis := range v.Rank() {
			if v.shape.Dim(axis) == 1 {
				axes = append(axes, axis)
			}
		}
	}
	if !sets.AllUnique(axes...) {
		exceptions.Panicf("View.Squeeze(%v): axes must be unique", axes)
	}
	slices.Sort(axes)
	out := v
	for ii := len(axes) - 1; ii >= 0; ii-- {
		axis := axes[ii]
		if axis < 0 || axis >= v.Rank() || v.shape.Dim(axis) != 1 {
			exceptions.Panicf("View.Squeeze(%v): axis %d doesn't have dimension 1 in shape %s", axes, axis, v.shape)
		}
		out = out.Bind(axis, 0)
	}
	return out
}
