// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package convolution

import (
	"github.com/gomlx/multiarray/pkg/core/dtypes"
	"github.com/gomlx/multiarray/pkg/core/ndarray"
	"github.com/gomlx/multiarray/pkg/core/shapes"
	"github.com/gomlx/multiarray/pkg/core/slicing"
	"github.com/gomlx/multiarray/pkg/padding"
)

// line is a 1-D strided run of elements in a buffer.
type line[T any] struct {
	buf    []T
	pos    int
	stride int
	n      int
}

func (l line[T]) at(i int) T       { return l.buf[l.pos+i*l.stride] }
func (l line[T]) set(i int, val T) { l.buf[l.pos+i*l.stride] = val }

// isUnit returns whether the elements of the line are consecutive in the buffer.
func (l line[T]) isUnit() bool { return l.stride == 1 || l.n <= 1 }

// slice returns the elements [from, to) of a unit stride line.
func (l line[T]) slice(from, to int) []T { return l.buf[l.pos+from : l.pos+to] }

// lineIterator yields the lines along one axis of a view, driven by a slicing.Walker.
type lineIterator[T any] struct {
	buf     []T
	offset  int
	strides []int
	axis    int
	n       int
	walker  *slicing.Walker
}

func newLineIterator[T any](v ndarray.View[T], axis int) *lineIterator[T] {
	buf, offset := v.Data()
	return &lineIterator[T]{
		buf:     buf,
		offset:  offset,
		strides: v.Strides(),
		axis:    axis,
		n:       v.Dim(axis),
		walker:  slicing.NewWalker(v.Shape(), shapes.RowMajor, axis),
	}
}

// line returns the line at the current position of the walker.
func (it *lineIterator[T]) line() line[T] {
	pos := it.offset
	for axis, idx := range it.walker.Point() {
		pos += idx * it.strides[axis]
	}
	return line[T]{buf: it.buf, pos: pos, stride: it.strides[it.axis], n: it.n}
}

// boundaryValue computes output sample i of the line in with the kernel (given by its reversed
// coefficients rev and its center), remapping out-of-range samples with the padding modes.
func boundaryValue[T dtypes.GoFloat](in line[T], rev []T, center, i int, left, right padding.Mode) T {
	numTaps := len(rev)
	var sum T
	for j, coef := range rev {
		// Tap k = numTaps-1-j reads offset center-k.
		src := i + center - (numTaps - 1 - j)
		mode := left
		if src >= in.n {
			mode = right
		}
		if idx, ok := padding.Remap(mode, src, in.n); ok {
			sum += coef * in.at(idx)
		}
	}
	return sum
}
