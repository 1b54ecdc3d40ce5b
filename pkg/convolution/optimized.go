// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package convolution

import (
	"github.com/gomlx/multiarray/pkg/core/dtypes"
	"github.com/gomlx/multiarray/pkg/core/ndarray"
	"github.com/gomlx/multiarray/pkg/padding"
	"k8s.io/klog/v2"
)

// interior returns the range [lo, hi) of output positions of a line of length n whose taps all fall
// inside the line, for a kernel of numTaps coefficients and the given center.
func interior(n, numTaps, center int) (lo, hi int) {
	before := numTaps - 1 - center
	lo = min(before, n)
	hi = max(n-center, lo)
	return
}

// convolveRow filters a unit stride line: the interior uses dotF on slices of the input, and the
// two boundary regions remap their taps with the padding modes.
func convolveRow[T dtypes.GoFloat](in, out line[T], rev []T, center int, left, right padding.Mode, dotF func(a, b []T) T) {
	numTaps := len(rev)
	before := numTaps - 1 - center
	lo, hi := interior(in.n, numTaps, center)
	for i := range lo {
		out.set(i, boundaryValue(in, rev, center, i, left, right))
	}
	for i := lo; i < hi; i++ {
		out.set(i, dotF(in.slice(i-before, i-before+numTaps), rev))
	}
	for i := hi; i < in.n; i++ {
		out.set(i, boundaryValue(in, rev, center, i, left, right))
	}
}

// convolveColumn filters a line of any stride, walking the input with the line's own stride.
func convolveColumn[T dtypes.GoFloat](in, out line[T], rev []T, center int, left, right padding.Mode) {
	numTaps := len(rev)
	before := numTaps - 1 - center
	lo, hi := interior(in.n, numTaps, center)
	for i := range lo {
		out.set(i, boundaryValue(in, rev, center, i, left, right))
	}
	for i := lo; i < hi; i++ {
		out.set(i, dotStrided(in.buf, in.pos+(i-before)*in.stride, in.stride, rev))
	}
	for i := hi; i < in.n; i++ {
		out.set(i, boundaryValue(in, rev, center, i, left, right))
	}
}

// convolveAxis filters every line along axis of src into dst. src and dst must have the same shape, must
// not overlap, and all preconditions must have been checked.
func convolveAxis[T dtypes.GoFloat](src, dst ndarray.View[T], axis int, kernel Kernel[T], opts *Options) {
	if src.Size() == 0 {
		return
	}
	dotF := dotFn[T](opts.useSIMD())
	if opts.Reference {
		if klog.V(2).Enabled() {
			klog.Infof("convolution: axis %d of %s, reference path, %s", axis, src.Shape(), kernel)
		}
		convolveAxisReference(src, dst, axis, kernel, opts, dotF)
		return
	}

	rev := kernel.reversed()
	center := kernel.Center()
	srcLines, dstLines := newLineIterator(src, axis), newLineIterator(dst, axis)
	if klog.V(2).Enabled() {
		routine := "column"
		if src.Stride(axis) == 1 || src.Dim(axis) == 1 {
			routine = "row"
		}
		klog.Infof("convolution: axis %d of %s, %s routine, %d lines, simd=%v, %s",
			axis, src.Shape(), routine, srcLines.walker.NumSteps(), opts.useSIMD(), kernel)
	}
	for ; srcLines.walker.HasMore(); srcLines.walker.Next() {
		in, out := srcLines.line(), dstLines.line()
		if in.isUnit() {
			convolveRow(in, out, rev, center, opts.Left, opts.Right, dotF)
		} else {
			convolveColumn(in, out, rev, center, opts.Left, opts.Right)
		}
		dstLines.walker.Next()
	}
}
