// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ndarray

import (
	"unsafe"

	"github.com/gomlx/multiarray/pkg/core/shapes"
	"github.com/gomlx/multiarray/pkg/support/smallvec"
	"golang.org/x/exp/constraints"
)

// Number are the element types that support arithmetic assignments.
type Number interface {
	constraints.Integer | constraints.Float
}

// Expression is an elementwise-evaluable N-dimensional value: a View, a Scalar or a combination of them
// (see Add, Sub, Mul, Div, Map and Combine).
//
// Expressions are evaluated lazily when assigned to a View, with broadcasting: the axes are aligned from
// the end, and axes of dimension 1 (or missing leading axes) are repeated.
type Expression[T any] interface {
	// Shape of the expression. Rank 0 for scalars.
	Shape() shapes.Shape

	// Eval returns the value at the given indices. The number of indices can be larger than the rank of
	// the expression, in which case the leading indices are ignored (broadcast). Indices of axes of
	// dimension 1 are ignored.
	Eval(indices []int) T

	// MemorySpans returns the memory spans of all the views used in the expression.
	MemorySpans() []Span
}

// Span is the half-open memory address range [Lo, Hi) covered by a View, plus its layout, used to
// detect aliasing between views.
type Span struct {
	Lo, Hi uintptr

	start   uintptr
	shape   shapes.Shape
	strides smallvec.Vec[int]
}

// IsEmpty returns whether the span covers no memory.
func (s Span) IsEmpty() bool { return s.Hi <= s.Lo }

// Overlaps returns whether both spans share some memory.
func (s Span) Overlaps(other Span) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return false
	}
	return s.Lo < other.Hi && other.Lo < s.Hi
}

// SameElements returns whether both spans address exactly the same elements in the same order.
// Assigning elementwise from a view to itself is safe, even though their spans overlap.
func (s Span) SameElements(other Span) bool {
	return s.start == other.start && s.shape.Equal(other.shape) && smallvec.Equal(s.strides, other.strides)
}

// MemorySpan returns the span of memory addressed by the view.
func (v View[T]) MemorySpan() Span {
	if v.Size() == 0 {
		return Span{}
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	lo, hi := v.offsetRange()
	return Span{
		Lo:      uintptr(unsafe.Pointer(&v.buf[lo])),
		Hi:      uintptr(unsafe.Pointer(&v.buf[hi])) + elemSize,
		start:   uintptr(unsafe.Pointer(&v.buf[v.offset])),
		shape:   v.shape,
		strides: v.strides,
	}
}

// Overlaps returns whether the views share some memory.
func (v View[T]) Overlaps(other View[T]) bool {
	return v.MemorySpan().Overlaps(other.MemorySpan())
}

// MemorySpans implements Expression.
func (v View[T]) MemorySpans() []Span {
	return []Span{v.MemorySpan()}
}

// Eval implements Expression.
func (v View[T]) Eval(indices []int) T {
	shift := len(indices) - v.Rank()
	pos := v.offset
	for axis, stride := range v.strides.All() {
		pos += indices[axis+shift] * stride
	}
	return v.buf[pos]
}

// scalarExpr is a constant Expression.
type scalarExpr[T any] struct {
	value T
}

// Scalar returns an Expression with a constant value, that broadcasts to any shape.
func Scalar[T any](value T) Expression[T] {
	return scalarExpr[T]{value: value}
}

func (s scalarExpr[T]) Shape() shapes.Shape { return shapes.Shape{} }
func (s scalarExpr[T]) Eval([]int) T        { return s.value }
func (s scalarExpr[T]) MemorySpans() []Span { return nil }

// mapExpr applies a function to each element of an Expression.
type mapExpr[T, In any] struct {
	x  Expression[In]
	fn func(In) T
}

// Map returns an Expression that applies fn to every element of x.
func Map[T, In any](x Expression[In], fn func(In) T) Expression[T] {
	return mapExpr[T, In]{x: x, fn: fn}
}

func (m mapExpr[T, In]) Shape() shapes.Shape { return m.x.Shape() }
func (m mapExpr[T, In]) Eval(idx []int) T    { return m.fn(m.x.Eval(idx)) }
func (m mapExpr[T, In]) MemorySpans() []Span { return m.x.MemorySpans() }

// combineExpr combines two Expressions elementwise.
type combineExpr[T any] struct {
	a, b  Expression[T]
	shape shapes.Shape
	fn    func(a, b T) T
}

// Combine returns an Expression with fn(a, b) for every element. The shapes of a and b are broadcast together.
func Combine[T any](a, b Expression[T], fn func(a, b T) T) Expression[T] {
	return combineExpr[T]{a: a, b: b, shape: shapes.Broadcast(a.Shape(), b.Shape()), fn: fn}
}

func (c combineExpr[T]) Shape() shapes.Shape { return c.shape }
func (c combineExpr[T]) Eval(idx []int) T    { return c.fn(c.a.Eval(idx), c.b.Eval(idx)) }
func (c combineExpr[T]) MemorySpans() []Span {
	return append(c.a.MemorySpans(), c.b.MemorySpans()...)
}

// Add returns the Expression a+b.
func Add[T Number](a, b Expression[T]) Expression[T] {
	return Combine(a, b, func(x, y T) T { return x + y })
}

// Sub returns the Expression a-b.
func Sub[T Number](a, b Expression[T]) Expression[T] {
	return Combine(a, b, func(x, y T) T { return x - y })
}

// Mul returns the Expression a*b.
func Mul[T Number](a, b Expression[T]) Expression[T] {
	return Combine(a, b, func(x, y T) T { return x * y })
}

// Div returns the Expression a/b.
func Div[T Number](a, b Expression[T]) Expression[T] {
	return Combine(a, b, func(x, y T) T { return x / y })
}
