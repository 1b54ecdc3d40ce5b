// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ndarray

import (
	"math"
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/shapes"
)

// Op is an assignment operation: dst = src, dst += src, etc.
type Op int

//go:generate go tool enumer -type=Op -linecomment -output=gen_op_enumer.go assign.go

const (
	OpSet Op = iota // =
	OpAdd           // +=
	OpSub           // -=
	OpMul           // *=
	OpDiv           // /=
	OpMod           // %=
)

// needsTemporary returns whether src reads memory written by the assignment to dst, in a way that
// an elementwise loop could read values it has already overwritten.
func needsTemporary[T any](dst View[T], src Expression[T]) bool {
	dstSpan := dst.MemorySpan()
	for _, span := range src.MemorySpans() {
		if span.Overlaps(dstSpan) && !span.SameElements(dstSpan) {
			return true
		}
	}
	return false
}

// checkAssignment validates the shapes and returns the source to use: either src itself or, if it
// aliases dst, a copy of it.
func checkAssignment[T any](dst View[T], src Expression[T]) Expression[T] {
	if dst.IsEmpty() {
		exceptions.Panicf("ndarray: cannot assign to an empty View")
	}
	if !shapes.CanBroadcastTo(src.Shape(), dst.shape) {
		exceptions.Panicf("ndarray: cannot assign expression shaped %s to view shaped %s", src.Shape(), dst.shape)
	}
	if needsTemporary(dst, src) {
		tmp := evaluate(dst.shape, src)
		return tmp.View
	}
	return src
}

// evaluate materializes src broadcast to shape into a new Array.
func evaluate[T any](shape shapes.Shape, src Expression[T]) *Array[T] {
	tmp := NewWith[T](shape, WithInit(SkipInit))
	flat := tmp.buf
	for ii, indices := range shape.Iter() {
		flat[ii] = src.Eval(indices)
	}
	return tmp
}

// apply runs dst[i] = fn(dst[i], src[i]) for every element of dst, with src broadcast to dst's shape.
// It assumes the shapes were validated and src doesn't alias dst.
func apply[T any](dst View[T], src Expression[T], fn func(d, s T) T) {
	if srcView, ok := src.(View[T]); ok && dst.IsContiguous() && srcView.IsContiguous() && srcView.shape.Equal(dst.shape) {
		// Fast path: both are flat buffers.
		d, s := dst.Flat(), srcView.Flat()
		for ii := range d {
			d[ii] = fn(d[ii], s[ii])
		}
		return
	}
	if dst.Size() == 0 {
		return
	}
	for rel, indices := range dst.shape.IterStrided(dst.strides.Values()) {
		pos := dst.offset + rel
		dst.buf[pos] = fn(dst.buf[pos], src.Eval(indices))
	}
}

// Assign sets the elements of v to the values of src, broadcast to v's shape.
//
// If src reads from memory that overlaps v (e.g. `v.Assign(v.Transpose())`), it is first evaluated into
// a temporary, so the result is always the mathematically expected one.
func (v View[T]) Assign(src Expression[T]) {
	src = checkAssignment(v, src)
	apply(v, src, func(_, s T) T { return s })
}

// CopyFrom copies the elements of src into v. src must be broadcastable to v's shape. It's an alias to Assign.
func (v View[T]) CopyFrom(src View[T]) {
	v.Assign(src)
}

// Fill sets all elements of v to value.
func (v View[T]) Fill(value T) {
	if v.IsContiguous() {
		flat := v.Flat()
		for ii := range flat {
			flat[ii] = value
		}
		return
	}
	v.Assign(Scalar(value))
}

// AssignOp applies the assignment operation op (dst = src, dst += src, ...) elementwise, with src broadcast
// to dst's shape. See View.Assign about aliasing.
func AssignOp[T Number](dst View[T], op Op, src Expression[T]) {
	src = checkAssignment(dst, src)
	var fn func(d, s T) T
	switch op {
	case OpSet:
		fn = func(_, s T) T { return s }
	case OpAdd:
		fn = func(d, s T) T { return d + s }
	case OpSub:
		fn = func(d, s T) T { return d - s }
	case OpMul:
		fn = func(d, s T) T { return d * s }
	case OpDiv:
		fn = func(d, s T) T { return d / s }
	case OpMod:
		fn = modFn[T]()
	default:
		exceptions.Panicf("ndarray.AssignOp: invalid operation %s", op)
	}
	apply(dst, src, fn)
}

// modFn returns the remainder function for T: math.Mod for floats, and the truncated integer remainder
// (Go's %) for integers.
func modFn[T Number]() func(d, s T) T {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return func(d, s T) T { return T(math.Mod(float64(d), float64(s))) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(d, s T) T { return T(uint64(d) % uint64(s)) }
	default:
		return func(d, s T) T { return T(int64(d) % int64(s)) }
	}
}

// AddAssign does dst += src.
func AddAssign[T Number](dst View[T], src Expression[T]) { AssignOp(dst, OpAdd, src) }

// SubAssign does dst -= src.
func SubAssign[T Number](dst View[T], src Expression[T]) { AssignOp(dst, OpSub, src) }

// MulAssign does dst *= src.
func MulAssign[T Number](dst View[T], src Expression[T]) { AssignOp(dst, OpMul, src) }

// DivAssign does dst /= src.
func DivAssign[T Number](dst View[T], src Expression[T]) { AssignOp(dst, OpDiv, src) }

// ModAssign does dst %= src. For floats, it uses math.Mod.
func ModAssign[T Number](dst View[T], src Expression[T]) { AssignOp(dst, OpMod, src) }

// AddScalar does dst += value.
func AddScalar[T Number](dst View[T], value T) { AssignOp(dst, OpAdd, Scalar(value)) }

// SubScalar does dst -= value.
func SubScalar[T Number](dst View[T], value T) { AssignOp(dst, OpSub, Scalar(value)) }

// MulScalar does dst *= value.
func MulScalar[T Number](dst View[T], value T) { AssignOp(dst, OpMul, Scalar(value)) }

// DivScalar does dst /= value.
func DivScalar[T Number](dst View[T], value T) { AssignOp(dst, OpDiv, Scalar(value)) }

// ModScalar does dst %= value.
func ModScalar[T Number](dst View[T], value T) { AssignOp(dst, OpMod, Scalar(value)) }
