// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ndarray

import (
	"reflect"
	"unsafe"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/shapes"
)

// ChannelAxis returns the axis tagged shapes.AxisChannels, or -1 if there is none.
func (v View[T]) ChannelAxis() int {
	return v.tags.Channel()
}

// BindChannel binds the channel axis (the one tagged shapes.AxisChannels) to index.
// It panics if the view has no channel axis.
func (v View[T]) BindChannel(index int) View[T] {
	axis := v.tags.Channel()
	if axis < 0 {
		exceptions.Panicf("View.BindChannel(%d): view has no channel axis (tags=%s)", index, v.tags)
	}
	return v.Bind(axis, index)
}

// EnsureChannelAxis returns a view with a channel axis at position axis.
//
// If the view already has a channel axis, it's moved to position axis (0 <= axis < rank). Otherwise, a new
// axis of dimension 1 tagged shapes.AxisChannels is inserted at position axis (0 <= axis <= rank).
// It is idempotent.
//
// For views whose elements are vectors (like [3]float32), see EnsureChannelAxisElements.
func (v View[T]) EnsureChannelAxis(axis int) View[T] {
	channel := v.tags.Channel()
	if channel < 0 {
		return v.NewAxis(axis, shapes.AxisChannels)
	}
	if channel == axis {
		return v
	}
	return v.MoveAxis(channel, axis)
}

// vectorLength returns the number of components of T, if it is a Go array of C, or 0 otherwise.
func vectorLength[C, T any]() int {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Array || t.Elem() != reflect.TypeFor[C]() {
		return 0
	}
	return t.Len()
}

// ExpandElements reinterprets a view of vector-valued elements T (a Go array [n]C, e.g. [3]float32 for RGB)
// as a view of C with a new axis of dimension n, tagged shapes.AxisChannels, inserted at position axis.
//
// The strides of the other axes are scaled by n, and the new axis has stride 1. No data is copied.
func ExpandElements[C, T any](v View[T], axis int) View[C] {
	n := vectorLength[C, T]()
	if n == 0 {
		exceptions.Panicf("ndarray.ExpandElements: element type %s is not an array of %s",
			reflect.TypeFor[T](), reflect.TypeFor[C]())
	}
	if axis < 0 || axis > v.Rank() {
		exceptions.Panicf("ndarray.ExpandElements(axis=%d) out-of-bounds for shape %s", axis, v.shape)
	}
	var buf []C
	if len(v.buf) > 0 {
		buf = unsafe.Slice((*C)(unsafe.Pointer(unsafe.SliceData(v.buf))), len(v.buf)*n)
	}
	strides := v.strides.Clone()
	for ii, s := range strides.All() {
		strides.Set(ii, s*n)
	}
	return deriveView(buf, v.offset*n, v.shape.Insert(axis, n), strides.Insert(axis, 1),
		v.tags.Insert(axis, shapes.AxisChannels), false)
}

// EnsureChannelAxisElements returns a View[C] with a channel axis at position axis.
//
// If T is a vector type [n]C, it is equivalent to ExpandElements. If T is C, it is equivalent to
// View.EnsureChannelAxis. Otherwise, it panics.
func EnsureChannelAxisElements[C, T any](v View[T], axis int) View[C] {
	if vectorLength[C, T]() > 0 {
		if v.tags.Channel() >= 0 {
			exceptions.Panicf("ndarray.EnsureChannelAxisElements: view of vector elements %s already has a channel axis (tags=%s)",
				reflect.TypeFor[T](), v.tags)
		}
		return ExpandElements[C](v, axis)
	}
	if same, ok := any(v).(View[C]); ok {
		return same.EnsureChannelAxis(axis)
	}
	exceptions.Panicf("ndarray.EnsureChannelAxisElements: element type %s is neither %s nor an array of it",
		reflect.TypeFor[T](), reflect.TypeFor[C]())
	panic(nil) // Quiet linter.
}
