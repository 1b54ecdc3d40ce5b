// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package smallvec implements Vec, an ordered sequence that keeps up to InlineCap elements
// inline (no heap allocation) and is promoted to heap storage above that.
//
// It is the container used for shapes, strides and axis tags: most arrays have a small rank,
// so their metadata never touches the heap.
//
// Rules:
//
//   - A Vec with Len() <= InlineCap stores its elements inline.
//   - Growing past InlineCap promotes the Vec: exactly one heap allocation, with capacity for at
//     least 2*InlineCap elements; further growth follows append semantics.
//   - Shrinking (Truncate, Resize, Remove) to Len() <= InlineCap demotes it back to inline storage
//     and drops the heap slice.
//
// Vec is a value type. Functions and methods returning a Vec never alias the storage of their
// inputs. Assigning a promoted Vec to another variable shares the heap storage (like a Go slice),
// so use Clone before mutating one of the copies with Set.
package smallvec

import (
	"fmt"
	"iter"
	"strings"

	"github.com/gomlx/exceptions"
)

// InlineCap is the number of elements stored without heap allocation.
const InlineCap = 6

// Vec is an ordered sequence of T with inline storage for up to InlineCap elements.
//
// The zero value is an empty Vec ready to use.
type Vec[T any] struct {
	n      int
	inline [InlineCap]T
	heap   []T // Non-nil iff promoted.
}

// Make returns a Vec with n zero-valued elements.
func Make[T any](n int) Vec[T] {
	if n < 0 {
		exceptions.Panicf("smallvec.Make(%d): negative length", n)
	}
	var v Vec[T]
	v.Resize(n)
	return v
}

// Of returns a Vec with a copy of the given values.
func Of[T any](values ...T) Vec[T] {
	var v Vec[T]
	v.Append(values...)
	return v
}

// Filled returns a Vec with n copies of value.
func Filled[T any](n int, value T) Vec[T] {
	v := Make[T](n)
	s := v.view()
	for i := range s {
		s[i] = value
	}
	return v
}

// view returns a slice pointing to the current storage: it aliases v.
func (v *Vec[T]) view() []T {
	if v.heap != nil {
		return v.heap[:v.n]
	}
	return v.inline[:v.n]
}

// Len returns the number of elements.
func (v Vec[T]) Len() int { return v.n }

// IsInline reports whether the elements are currently stored inline.
func (v Vec[T]) IsInline() bool { return v.heap == nil }

// At returns the element at position i. Negative values of i count from the end.
func (v Vec[T]) At(i int) T {
	if i < 0 {
		i += v.n
	}
	if i < 0 || i >= v.n {
		exceptions.Panicf("smallvec.At(%d) out of range for length %d", i, v.n)
	}
	if v.heap != nil {
		return v.heap[i]
	}
	return v.inline[i]
}

// Set sets the element at position i. Negative values of i count from the end.
func (v *Vec[T]) Set(i int, value T) {
	if i < 0 {
		i += v.n
	}
	if i < 0 || i >= v.n {
		exceptions.Panicf("smallvec.Set(%d) out of range for length %d", i, v.n)
	}
	if v.heap != nil {
		v.heap[i] = value
		return
	}
	v.inline[i] = value
}

// Append appends the values, promoting the Vec to the heap if needed.
func (v *Vec[T]) Append(values ...T) {
	newLen := v.n + len(values)
	if v.heap == nil {
		if newLen <= InlineCap {
			copy(v.inline[v.n:newLen], values)
			v.n = newLen
			return
		}
		v.promote(newLen)
	}
	v.heap = append(v.heap[:v.n], values...)
	v.n = newLen
}

// promote moves the inline elements to a new heap slice with room for at least minCap elements.
func (v *Vec[T]) promote(minCap int) {
	heap := make([]T, v.n, max(minCap, 2*InlineCap))
	copy(heap, v.inline[:v.n])
	var zero [InlineCap]T
	v.inline = zero
	v.heap = heap
}

// demote moves the heap elements back inline, if they fit.
func (v *Vec[T]) demote() {
	if v.heap == nil || v.n > InlineCap {
		return
	}
	copy(v.inline[:v.n], v.heap[:v.n])
	v.heap = nil
}

// Truncate shrinks the Vec to its first n elements.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 || n > v.n {
		exceptions.Panicf("smallvec.Truncate(%d) out of range for length %d", n, v.n)
	}
	var zero T
	s := v.view()
	for i := n; i < v.n; i++ {
		s[i] = zero
	}
	v.n = n
	v.demote()
}

// Resize sets the length to n: new elements are zero-valued.
func (v *Vec[T]) Resize(n int) {
	if n < 0 {
		exceptions.Panicf("smallvec.Resize(%d): negative length", n)
	}
	if n <= v.n {
		v.Truncate(n)
		return
	}
	var zero T
	for v.n < n {
		v.Append(zero)
	}
}

// Clone returns an independent copy.
func (v Vec[T]) Clone() Vec[T] {
	if v.heap == nil {
		return v
	}
	return Of(v.heap[:v.n]...)
}

// Values returns a newly allocated slice with the elements.
func (v Vec[T]) Values() []T {
	out := make([]T, v.n)
	copy(out, v.view())
	return out
}

// CopyTo copies the elements to dst, which must have length >= Len(), and returns the number of elements copied.
func (v Vec[T]) CopyTo(dst []T) int {
	return copy(dst, v.view())
}

// All iterates over the index and value of the elements.
func (v Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.view() {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Insert returns a new Vec with value inserted at position i (0 <= i <= Len()).
func (v Vec[T]) Insert(i int, value T) Vec[T] {
	if i < 0 || i > v.n {
		exceptions.Panicf("smallvec.Insert(%d) out of range for length %d", i, v.n)
	}
	var out Vec[T]
	s := v.view()
	out.Append(s[:i]...)
	out.Append(value)
	out.Append(s[i:]...)
	return out
}

// Remove returns a new Vec with the element at position i removed.
func (v Vec[T]) Remove(i int) Vec[T] {
	if i < 0 || i >= v.n {
		exceptions.Panicf("smallvec.Remove(%d) out of range for length %d", i, v.n)
	}
	var out Vec[T]
	s := v.view()
	out.Append(s[:i]...)
	out.Append(s[i+1:]...)
	return out
}

// Permute returns a new Vec where out[i] = v[perm[i]].
// perm must have the same length as v, its validity is the caller's responsibility.
func (v Vec[T]) Permute(perm []int) Vec[T] {
	if len(perm) != v.n {
		exceptions.Panicf("smallvec.Permute: permutation of length %d given for length %d", len(perm), v.n)
	}
	out := Make[T](v.n)
	s, o := v.view(), out.view()
	for i, p := range perm {
		o[i] = s[p]
	}
	return out
}

// Equal reports whether a and b hold the same elements.
func Equal[T comparable](a, b Vec[T]) bool {
	if a.n != b.n {
		return false
	}
	as, bs := a.view(), b.view()
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (v Vec[T]) String() string {
	parts := make([]string, 0, v.n)
	for _, e := range v.view() {
		parts = append(parts, fmt.Sprint(e))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
