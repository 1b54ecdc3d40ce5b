// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package convolution

import (
	"github.com/gomlx/multiarray/pkg/core/dtypes"
	"github.com/gomlx/multiarray/pkg/core/ndarray"
	"github.com/gomlx/multiarray/pkg/core/shapes"
	"github.com/gomlx/multiarray/pkg/core/slicing"
	"github.com/gomlx/multiarray/pkg/padding"
)

// convolveAxisReference filters every line along axis of src into dst: each line is copied into a
// padded scratch buffer, and each output sample is the dot product of a window of the scratch buffer
// with the reversed kernel.
func convolveAxisReference[T dtypes.GoFloat](src, dst ndarray.View[T], axis int, kernel Kernel[T], opts *Options,
	dotF func(a, b []T) T) {
	n := src.Dim(axis)
	numTaps := kernel.Len()
	before, after := numTaps-1-kernel.Center(), kernel.Center()
	scratch := ndarray.New[T](n + before + after)
	padded := scratch.Flat()
	rev := kernel.reversed()
	for w := slicing.NewWalker(src.Shape(), shapes.RowMajor, axis); w.HasMore(); w.Next() {
		specs := w.Specs()
		in, out := src.Slice(specs...), dst.Slice(specs...)
		padding.CopyWithPadding(in, scratch.View, opts.Left, before, opts.Right, after)
		for i := range n {
			out.Set(dotF(padded[i:i+numTaps], rev), i)
		}
	}
}
