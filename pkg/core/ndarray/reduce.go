// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ndarray

import (
	"math"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/shapes"
)

// Copy returns a new row-major Array with a copy of the view's elements.
func (v View[T]) Copy() *Array[T] {
	return FromView(v, shapes.RowMajor)
}

// Equal returns whether a and b have the same shape and elements.
func Equal[T comparable](a, b View[T]) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	bValues := b.Values()
	for ii, value := range a.All() {
		if value != bValues[ii] {
			return false
		}
	}
	return true
}

// InDelta returns whether a and b have the same shape and |a[i] - b[i]| <= delta for every element.
// NaN values are never in delta.
func InDelta[T Number](a, b View[T], delta float64) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	bValues := b.Values()
	for ii, value := range a.All() {
		if !(math.Abs(float64(value)-float64(bValues[ii])) <= delta) {
			return false
		}
	}
	return true
}

// Sum returns the sum of all elements of v.
func Sum[T Number](v View[T]) (sum T) {
	for _, value := range v.All() {
		sum += value
	}
	return
}

// MinMax returns the smallest and largest elements of v. It panics for views with no elements.
func MinMax[T Number](v View[T]) (minValue, maxValue T) {
	if v.Size() == 0 {
		exceptions.Panicf("ndarray.MinMax: view shaped %s has no elements", v.shape)
	}
	first := true
	for _, value := range v.All() {
		if first {
			minValue, maxValue = value, value
			first = false
			continue
		}
		minValue = min(minValue, value)
		maxValue = max(maxValue, value)
	}
	return
}
