// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package convolution implements separable convolution of N-dimensional views with 1-D kernels,
// with configurable padding of the borders (see package padding).
//
// There are two algorithms, with the same results up to floating point rounding:
//
//   - The optimized path (default): lines along the innermost contiguous axis use a row routine, that
//     filters the interior of the line with (optionally SIMD) dot products and only remaps indices
//     at the borders. Other axes use a column routine, that walks the input with the axis' stride.
//   - The reference path (Options.WithReference): every line is copied to a padded scratch buffer first.
//
// All preconditions (shapes, kernels and padding sizes, for every axis) are checked before anything is
// written: a call that panics leaves the output untouched. If the output overlaps the input, the input
// is copied first.
//
// Example:
//
//	smoothed := ndarray.New[float32](img.Shape().Dimensions()...)
//	convolution.ConvolveDims(img.View, smoothed.View, convolution.Gaussian[float32](2.0, 0, 0), nil, 2)
package convolution

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/dtypes"
	"github.com/gomlx/multiarray/pkg/core/ndarray"
	"github.com/gomlx/multiarray/pkg/padding"
	"github.com/pkg/errors"
)

// checkShapes panics if in and out are not valid for a convolution.
func checkShapes[T dtypes.GoFloat](in, out ndarray.View[T]) {
	if in.IsEmpty() || out.IsEmpty() {
		exceptions.Panicf("convolution: empty input (%s) or output (%s) view", in.Shape(), out.Shape())
	}
	if !in.Shape().Equal(out.Shape()) {
		exceptions.Panicf("convolution: input shape %s and output shape %s differ", in.Shape(), out.Shape())
	}
}

// checkAxis panics if kernel can't be applied along axis of in, with the padding configured in opts.
func checkAxis[T dtypes.GoFloat](in ndarray.View[T], axis int, kernel Kernel[T], opts *Options) {
	if axis < 0 || axis >= in.Rank() {
		exceptions.Panicf("convolution: axis %d out of range for shape %s", axis, in.Shape())
	}
	if kernel.Len() == 0 {
		exceptions.Panicf("convolution: empty kernel for axis %d", axis)
	}
	if in.Size() == 0 {
		return
	}
	n := in.Dim(axis)
	err := exceptions.TryCatch[error](func() {
		padding.CheckSize(opts.Left, -kernel.Left(), n)
		padding.CheckSize(opts.Right, kernel.Right(), n)
	})
	if err != nil {
		panic(errors.WithMessagef(err, "convolution: axis %d (dimension %d) with %s", axis, n, kernel))
	}
}

// ConvolveAxis filters the lines along one axis of in with kernel, and writes the result to out.
// in and out must have the same shape. If opts is nil, DefaultOptions are used.
//
// For a kernel k of length K and center c, out[i] = Σ_j k[j] * in[i+c-j]: each line is padded with
// K-1-c samples on the left (opts.Left) and c on the right (opts.Right).
func ConvolveAxis[T dtypes.GoFloat](in, out ndarray.View[T], axis int, kernel Kernel[T], opts *Options) {
	opts = orDefault(opts)
	checkShapes(in, out)
	checkAxis(in, axis, kernel, opts)
	if in.Overlaps(out) {
		in = in.Copy().View
	}
	convolveAxis(in, out, axis, kernel, opts)
}

// Convolve filters in along every axis with the same kernel (separable convolution), and writes the result
// to out. in and out must have the same shape. If opts is nil, DefaultOptions are used.
func Convolve[T dtypes.GoFloat](in, out ndarray.View[T], kernel Kernel[T], opts *Options) {
	kernels := make([]Kernel[T], in.Rank())
	for ii := range kernels {
		kernels[ii] = kernel
	}
	ConvolveWithKernels(in, out, kernels, opts)
}

// ConvolveWithKernels filters in along every axis i with kernels[i], and writes the result to out.
// in and out must have the same shape. If opts is nil, DefaultOptions are used.
//
// The innermost axis is filtered first, then the other axes from the last to the first, alternating
// between out and a temporary array such that the last axis filtered writes into out.
func ConvolveWithKernels[T dtypes.GoFloat](in, out ndarray.View[T], kernels []Kernel[T], opts *Options) {
	opts = orDefault(opts)
	checkShapes(in, out)
	rank := in.Rank()
	if len(kernels) != rank {
		exceptions.Panicf("convolution: %d kernels given for input of shape %s", len(kernels), in.Shape())
	}
	for axis, kernel := range kernels {
		checkAxis(in, axis, kernel, opts)
	}
	if in.Size() == 0 {
		return
	}
	if in.Overlaps(out) {
		in = in.Copy().View
	}
	if rank == 1 {
		convolveAxis(in, out, 0, kernels[0], opts)
		return
	}
	tmp := ndarray.NewWith[T](in.Shape(), ndarray.WithInit(ndarray.SkipInit)).View
	src := in
	for axis := rank - 1; axis >= 0; axis-- {
		dst := out
		if axis%2 == 1 {
			// An odd number of axes remain after this one.
			dst = tmp
		}
		convolveAxis(src, dst, axis, kernels[axis], opts)
		src = dst
	}
}

// ConvolveDims filters in with kernel along dims axes, and writes the result to out.
//
// If in has rank dims, it's the same as Convolve. If it has rank dims+1, the extra axis is taken as the
// channel axis (the axis tagged shapes.AxisChannels, or the last axis), and each channel is filtered
// independently. Any other rank panics.
func ConvolveDims[T dtypes.GoFloat](in, out ndarray.View[T], kernel Kernel[T], opts *Options, dims int) {
	opts = orDefault(opts)
	checkShapes(in, out)
	rank := in.Rank()
	switch {
	case dims < 1:
		exceptions.Panicf("convolution.ConvolveDims: dims must be >= 1, got %d", dims)
	case rank == dims:
		Convolve(in, out, kernel, opts)
	case rank == dims+1:
		channel := in.ChannelAxis()
		if channel < 0 {
			channel = rank - 1
		}
		if in.Dim(channel) == 0 {
			return
		}
		perChannel := in.Bind(channel, 0)
		for axis := range perChannel.Rank() {
			checkAxis(perChannel, axis, kernel, opts)
		}
		if in.Overlaps(out) {
			in = in.Copy().View
		}
		for c := range in.Dim(channel) {
			Convolve(in.Bind(channel, c), out.Bind(channel, c), kernel, opts)
		}
	default:
		exceptions.Panicf("convolution.ConvolveDims: input of shape %s has rank %d, but dims=%d requires rank %d or %d",
			in.Shape(), rank, dims, dims, dims+1)
	}
}

// TryConvolve is like Convolve, but returns precondition failures as an error instead of panicking.
func TryConvolve[T dtypes.GoFloat](in, out ndarray.View[T], kernel Kernel[T], opts *Options) error {
	return exceptions.TryCatch[error](func() { Convolve(in, out, kernel, opts) })
}
