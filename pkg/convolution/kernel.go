// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package convolution

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/dtypes"
	"github.com/gomlx/multiarray/pkg/core/ndarray"
	"github.com/gomlx/multiarray/pkg/support/xslices"
)

// Kernel is a 1-D filter: its coefficients and the index of the tap treated as the origin (the center).
//
// Convolving a line in with a kernel k of length K and center c produces:
//
//	out[i] = Σ_{j=0}^{K-1} k[j] * in[i+c-j]
//
// So the tap j reads the sample at offset c-j, which ranges from Left() = c-(K-1) to Right() = c.
// Kernels are immutable values.
type Kernel[T dtypes.GoFloat] struct {
	values *ndarray.Array[T]
	center int
}

// NewKernel creates a Kernel with a copy of the coefficients, and the given center, 0 <= center < len(coefficients).
func NewKernel[T dtypes.GoFloat](coefficients []T, center int) Kernel[T] {
	if len(coefficients) == 0 {
		exceptions.Panicf("convolution.NewKernel: kernel must have at least one coefficient")
	}
	if center < 0 || center >= len(coefficients) {
		exceptions.Panicf("convolution.NewKernel: center %d out of range for kernel of length %d", center, len(coefficients))
	}
	values := ndarray.New[T](len(coefficients))
	copy(values.Flat(), coefficients)
	return Kernel[T]{values: values, center: center}
}

// Identity returns the single tap kernel {1}: convolving with it copies the input.
func Identity[T dtypes.GoFloat]() Kernel[T] {
	return NewKernel([]T{1}, 0)
}

// Averaging returns the box filter of length 2*radius+1, with all coefficients 1/(2*radius+1).
func Averaging[T dtypes.GoFloat](radius int) Kernel[T] {
	if radius < 0 {
		exceptions.Panicf("convolution.Averaging: radius must be >= 0, got %d", radius)
	}
	n := 2*radius + 1
	coefficients := make([]T, n)
	for ii := range coefficients {
		coefficients[ii] = T(1) / T(n)
	}
	return NewKernel(coefficients, radius)
}

// CentralDifference returns the symmetric difference kernel {0.5, 0, -0.5}, which approximates the first
// derivative: out[i] = (in[i+1] - in[i-1]) / 2.
func CentralDifference[T dtypes.GoFloat]() Kernel[T] {
	return NewKernel([]T{0.5, 0, -0.5}, 1)
}

// Gaussian returns a sampled Gaussian of standard deviation sigma, or one of its derivatives.
//
// The radius of the kernel is round(windowRatio*sigma); if windowRatio <= 0 it defaults to 3+derivativeOrder/2.
// The kernel is normalized such that filtering the polynomial x^n/n! (n = derivativeOrder) yields 1: for order 0
// the coefficients sum to 1. For derivatives, the coefficients are first adjusted to sum to 0.
func Gaussian[T dtypes.GoFloat](sigma float64, derivativeOrder int, windowRatio float64) Kernel[T] {
	if !(sigma > 0) {
		exceptions.Panicf("convolution.Gaussian: sigma must be > 0, got %g", sigma)
	}
	if derivativeOrder < 0 {
		exceptions.Panicf("convolution.Gaussian: derivativeOrder must be >= 0, got %d", derivativeOrder)
	}
	if windowRatio <= 0 {
		windowRatio = 3.0 + 0.5*float64(derivativeOrder)
	}
	radius := max(int(windowRatio*sigma+0.5), 1, (derivativeOrder+1)/2)
	n := 2*radius + 1
	values := make([]float64, n)
	sigma2 := sigma * sigma
	for j := range values {
		x := float64(j - radius)
		t := x / sigma
		values[j] = math.Pow(-1/sigma, float64(derivativeOrder)) * hermite(derivativeOrder, t) * math.Exp(-x*x/(2*sigma2))
	}
	if derivativeOrder > 0 {
		// Remove the DC component.
		mean := 0.0
		for _, v := range values {
			mean += v
		}
		mean /= float64(n)
		for j := range values {
			values[j] -= mean
		}
	}

	// Moment normalization: Σ k[j] (c-j)^n / n! = 1.
	moment := 0.0
	factorial := 1.0
	for ii := 2; ii <= derivativeOrder; ii++ {
		factorial *= float64(ii)
	}
	for j, v := range values {
		moment += v * math.Pow(float64(radius-j), float64(derivativeOrder))
	}
	moment /= factorial
	if moment == 0 {
		exceptions.Panicf("convolution.Gaussian(sigma=%g, order=%d): kernel radius %d too small to normalize",
			sigma, derivativeOrder, radius)
	}
	coefficients := make([]T, n)
	for j, v := range values {
		coefficients[j] = T(v / moment)
	}
	return NewKernel(coefficients, radius)
}

// hermite returns the probabilists' Hermite polynomial He_n(t).
func hermite(n int, t float64) float64 {
	prev, current := 0.0, 1.0
	for ii := 0; ii < n; ii++ {
		prev, current = current, t*current-float64(ii)*prev
	}
	return current
}

// BSpline returns the cardinal B-spline of the given order sampled at the integers where it is not zero,
// that is, with radius order/2. Order 3 (cubic) is {1/6, 2/3, 1/6}.
func BSpline[T dtypes.GoFloat](order int) Kernel[T] {
	if order < 0 {
		exceptions.Panicf("convolution.BSpline: order must be >= 0, got %d", order)
	}
	radius := order / 2
	coefficients := make([]T, 2*radius+1)
	for j := range coefficients {
		coefficients[j] = T(bsplineValue(order, float64(j-radius)))
	}
	return NewKernel(coefficients, radius)
}

// bsplineValue evaluates the centered cardinal B-spline of order n at x, using its closed form:
//
//	β_n(x) = 1/n! Σ_{j=0}^{n+1} (-1)^j C(n+1, j) max(0, x + (n+1)/2 - j)^n
func bsplineValue(n int, x float64) float64 {
	half := float64(n+1) / 2
	if math.Abs(x) >= half {
		if n == 0 && math.Abs(x) == half {
			return 0.5
		}
		return 0
	}
	if n == 0 {
		return 1
	}
	sum := 0.0
	binomial := 1.0
	for j := 0; j <= n+1; j++ {
		if t := x + half - float64(j); t > 0 {
			term := binomial * math.Pow(t, float64(n))
			if j%2 == 1 {
				term = -term
			}
			sum += term
		}
		binomial = binomial * float64(n+1-j) / float64(j+1)
	}
	for ii := 2; ii <= n; ii++ {
		sum /= float64(ii)
	}
	return sum
}

// Len returns the number of coefficients.
func (k Kernel[T]) Len() int {
	if k.values == nil {
		return 0
	}
	return k.values.Size()
}

// Center returns the index of the tap treated as the origin.
func (k Kernel[T]) Center() int { return k.center }

// Left returns the smallest offset (<= 0) read by the kernel, relative to the output position.
func (k Kernel[T]) Left() int { return k.center - (k.Len() - 1) }

// Right returns the largest offset (>= 0) read by the kernel, relative to the output position.
func (k Kernel[T]) Right() int { return k.center }

// At returns the coefficient j.
func (k Kernel[T]) At(j int) T { return k.values.Flat()[j] }

// Values returns a copy of the coefficients.
func (k Kernel[T]) Values() []T { return slices.Clone(k.values.Flat()) }

// View returns a read-only (by convention) 1-D view of the coefficients.
func (k Kernel[T]) View() ndarray.View[T] { return k.values.AsView() }

// Sum returns the sum of the coefficients.
func (k Kernel[T]) Sum() T {
	if k.values == nil {
		return 0
	}
	return xslices.Sum(k.values.Flat())
}

// Reversed returns the mirrored kernel: coefficients in reverse order and center Len()-1-Center().
func (k Kernel[T]) Reversed() Kernel[T] {
	values := k.Values()
	slices.Reverse(values)
	return NewKernel(values, k.Len()-1-k.center)
}

// Normalize returns the kernel scaled such that its coefficients sum to sum.
// It panics if the coefficients sum to 0.
func (k Kernel[T]) Normalize(sum T) Kernel[T] {
	current := k.Sum()
	if current == 0 {
		exceptions.Panicf("convolution.Kernel.Normalize: coefficients sum to 0, cannot normalize")
	}
	values := k.Values()
	factor := sum / current
	for ii := range values {
		values[ii] *= factor
	}
	return NewKernel(values, k.center)
}

// reversed returns the coefficients in reverse order, the form used by the dot products.
func (k Kernel[T]) reversed() []T {
	values := k.Values()
	slices.Reverse(values)
	return values
}

// String implements fmt.Stringer.
func (k Kernel[T]) String() string {
	if k.Len() == 0 {
		return fmt.Sprintf("Kernel[%s](empty)", reflect.TypeFor[T]())
	}
	return fmt.Sprintf("Kernel[%s](center=%d, %v)", reflect.TypeFor[T](), k.center, k.values.Flat())
}
