// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package convolution

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/ndarray"
	"github.com/x448/float16"
)

// ConvolveFloat16 is like Convolve for views of float16.Float16: the input is converted to float32, filtered
// with the float32 kernel, and the result is rounded back to float16 into out.
func ConvolveFloat16(in, out ndarray.View[float16.Float16], kernel Kernel[float32], opts *Options) {
	if in.IsEmpty() || !in.Shape().Equal(out.Shape()) {
		exceptions.Panicf("convolution.ConvolveFloat16: input shape %s and output shape %s must be equal and not empty",
			in.Shape(), out.Shape())
	}
	in32 := ndarray.New[float32](in.Shape().Dimensions()...)
	in32.Assign(ndarray.Map[float32, float16.Float16](in, float16.Float16.Float32))
	out32 := ndarray.New[float32](in.Shape().Dimensions()...)
	Convolve(in32.View, out32.View, kernel, opts)
	out.Assign(ndarray.Map[float16.Float16, float32](out32.View, float16.Fromfloat32))
}
