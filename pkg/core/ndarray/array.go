// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ndarray

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/shapes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Array is a View that owns its buffer: the embedded View always addresses the whole buffer, in
// row-major or column-major order.
//
// All View methods are available on an Array, and the views they return point to the Array's buffer.
// Those views become stale (they keep pointing to the old buffer) if the Array is resized to a different
// number of elements, moved or swapped.
type Array[T any] struct {
	View[T]
}

// Init configures the initialization of the memory of a new Array.
type Init int

const (
	// ZeroInit initializes all elements to the zero value of T, or the value given with WithValue.
	ZeroInit Init = iota

	// SkipInit skips the initialization of the elements. Go always clears new memory, so it only
	// skips filling with the WithValue value.
	SkipInit
)

type arrayConfig struct {
	value    any
	hasValue bool
	tags     *shapes.AxisTags
	order    shapes.MemoryOrder
	init     Init
}

// Option configures the creation of an Array with NewWith.
type Option func(cfg *arrayConfig)

// WithValue initializes all elements with value, which must be of the Array's element type.
func WithValue[T any](value T) Option {
	return func(cfg *arrayConfig) {
		cfg.value = value
		cfg.hasValue = true
	}
}

// WithAxisTags sets the axis tags of the new Array. The number of tags must match the rank.
func WithAxisTags(tags ...shapes.AxisTag) Option {
	return func(cfg *arrayConfig) {
		at := shapes.Tags(tags...)
		cfg.tags = &at
	}
}

// WithOrder sets the memory order of the new Array. Default is shapes.RowMajor.
func WithOrder(order shapes.MemoryOrder) Option {
	return func(cfg *arrayConfig) {
		cfg.order = order
	}
}

// WithInit sets how memory is initialized. See SkipInit.
func WithInit(init Init) Option {
	return func(cfg *arrayConfig) {
		cfg.init = init
	}
}

// New creates a row-major Array of T with the given dimensions, initialized with zeros.
//
// Example:
//
//	img := ndarray.New[float32](480, 640, 3)
func New[T any](dimensions ...int) *Array[T] {
	return NewWith[T](shapes.Make(dimensions...))
}

// NewWith creates an Array of T with the given shape, configured by the options.
// The shape must have rank >= 1.
//
// Example:
//
//	img := ndarray.NewWith[float32](shapes.Make(480, 640, 3),
//		ndarray.WithValue(float32(1)),
//		ndarray.WithAxisTags(shapes.AxisY, shapes.AxisX, shapes.AxisChannels))
func NewWith[T any](shape shapes.Shape, options ...Option) *Array[T] {
	var cfg arrayConfig
	for _, opt := range options {
		opt(&cfg)
	}
	if shape.Rank() == 0 {
		exceptions.Panicf("ndarray.NewWith: arrays must have rank >= 1")
	}
	tags := shapes.UnknownTags(shape.Rank())
	if cfg.tags != nil {
		tags = *cfg.tags
	}
	shapes.CheckTags(shape, tags)
	a := &Array[T]{}
	a.View = deriveView(make([]T, shape.Size()), 0, shape, shapes.Strides(shape, cfg.order), tags, true)
	if cfg.hasValue && cfg.init != SkipInit {
		value, ok := cfg.value.(T)
		if !ok {
			exceptions.Panicf("ndarray.NewWith[%s]: WithValue given a %T", reflect.TypeFor[T](), cfg.value)
		}
		for ii := range a.buf {
			a.buf[ii] = value
		}
	}
	return a
}

// FromView creates a new Array with a copy of the elements of v, in the given memory order.
// Axis tags are preserved.
func FromView[T any](v View[T], order shapes.MemoryOrder) *Array[T] {
	if v.IsEmpty() {
		return &Array[T]{}
	}
	a := NewWith[T](v.shape, WithOrder(order), WithInit(SkipInit))
	a.tags = v.tags
	if order == shapes.RowMajor && v.IsContiguous() {
		copy(a.buf, v.Flat())
		return a
	}
	a.View.Assign(v)
	return a
}

// FromSeq creates a row-major Array with the given shape, filled with the values of seq.
// seq must yield exactly shape.Size() values.
func FromSeq[T any](shape shapes.Shape, seq iter.Seq[T]) *Array[T] {
	a := NewWith[T](shape, WithInit(SkipInit))
	n := 0
	for value := range seq {
		if n >= len(a.buf) {
			exceptions.Panicf("ndarray.FromSeq: sequence has more than the %d elements of shape %s", len(a.buf), shape)
		}
		a.buf[n] = value
		n++
	}
	if n != len(a.buf) {
		exceptions.Panicf("ndarray.FromSeq: sequence has %d elements, but shape %s requires %d", n, shape, len(a.buf))
	}
	return a
}

// Clone returns a deep copy of the Array, with the same memory order.
func (a *Array[T]) Clone() *Array[T] {
	if a.IsEmpty() {
		return &Array[T]{}
	}
	b := &Array[T]{View: a.View}
	b.buf = make([]T, len(a.buf))
	copy(b.buf, a.buf)
	return b
}

// AsView returns a View of the Array's data, without the owns-memory flag.
func (a *Array[T]) AsView() View[T] {
	return a.derive(a.offset, a.shape, a.strides, a.tags)
}

// Flat returns the whole buffer owned by the Array, in its memory order. It's not a copy.
func (a *Array[T]) Flat() []T {
	return a.buf
}

// MoveFrom transfers the buffer of src to a in O(1), and resets src to the empty state.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.View = src.View
	src.View = View[T]{}
}

// Swap exchanges the contents of both arrays in O(1).
func (a *Array[T]) Swap(other *Array[T]) {
	a.View, other.View = other.View, a.View
}

// Reset releases the buffer, leaving the Array empty.
func (a *Array[T]) Reset() {
	a.View = View[T]{}
}

// Resize changes the shape, the axis tags and the memory order of the Array.
//
// If the number of elements is unchanged, the buffer is reused (its contents are reinterpreted in the new shape).
// Otherwise a new zero-initialized buffer is allocated, and views into the previous buffer are left pointing to it.
func (a *Array[T]) Resize(shape shapes.Shape, tags shapes.AxisTags, order shapes.MemoryOrder) {
	if shape.Rank() == 0 {
		exceptions.Panicf("Array.Resize: arrays must have rank >= 1")
	}
	shapes.CheckTags(shape, tags)
	if shape.Size() == len(a.buf) && !a.IsEmpty() {
		a.View = deriveView(a.buf, 0, shape, shapes.Strides(shape, order), tags, true)
		return
	}
	if klog.V(2).Enabled() {
		klog.Infof("Array.Resize: reallocating %s -> %s", a.shape, shape)
	}
	tmp := NewWith[T](shape, WithAxisTags(tags.Values()...), WithOrder(order))
	a.Swap(tmp)
}

// Memory returns the number of bytes used by the Array's buffer.
func (a *Array[T]) Memory() uintptr {
	var zero T
	return uintptr(len(a.buf)) * unsafe.Sizeof(zero)
}

// String implements fmt.Stringer. It doesn't print the values, see Summary for that.
func (a *Array[T]) String() string {
	if a.IsEmpty() {
		return fmt.Sprintf("Array[%s](empty)", reflect.TypeFor[T]())
	}
	return fmt.Sprintf("Array[%s]%s(tags=%s, %s)",
		reflect.TypeFor[T](), a.shape, a.tags, humanize.Bytes(uint64(a.Memory())))
}

// MustFromNested is like FromNested, but panics on error.
func MustFromNested[T any](value any) *Array[T] {
	a, err := FromNested[T](value)
	if err != nil {
		panic(errors.WithMessage(err, "ndarray.MustFromNested"))
	}
	return a
}
