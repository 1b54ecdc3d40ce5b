// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ndarray

import (
	"reflect"

	"github.com/gomlx/multiarray/pkg/core/shapes"
	"github.com/pkg/errors"
)

// MaxNestingLevels is the maximum number of nested slice levels accepted by FromNested.
const MaxNestingLevels = 5

// FromNested creates a row-major Array from a nested slice literal of T, with up to MaxNestingLevels levels.
// All sub-slices at the same level must have the same length, and no slice can be empty.
//
// A value of type T (not a slice) creates a 1-D Array with one element.
//
// Example:
//
//	a, err := ndarray.FromNested[int]([][]int{{1, 2, 3}, {4, 5, 6}}) // Shape [2 3].
func FromNested[T any](value any) (*Array[T], error) {
	elemType := reflect.TypeFor[T]()
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return nil, errors.New("ndarray.FromNested: nil value")
	}
	if v.Type() == elemType {
		a := New[T](1)
		a.buf[0] = value.(T)
		return a, nil
	}
	var dims []int
	if err := shapeForNested(&dims, v, elemType); err != nil {
		return nil, err
	}
	a := NewWith[T](shapes.Make(dims...), WithInit(SkipInit))
	flat := reflect.ValueOf(a.buf)
	copyNested(flat, v, a.shape.Dimensions())
	return a, nil
}

// shapeForNested appends the dimensions of the nested slice v to dims, and checks the shape is regular.
func shapeForNested(dims *[]int, v reflect.Value, elemType reflect.Type) error {
	t := v.Type()
	if t == elemType {
		return nil
	}
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		return errors.Errorf("ndarray.FromNested: cannot convert type %s to an array of %s", t, elemType)
	}
	if len(*dims) >= MaxNestingLevels {
		return errors.Errorf("ndarray.FromNested: more than %d levels of nesting in %s", MaxNestingLevels, t)
	}
	if v.Len() == 0 {
		return errors.Errorf("ndarray.FromNested: empty slice in %s not valid, use ndarray.New to create arrays with zero-dimensions", t)
	}
	*dims = append(*dims, v.Len())
	level := len(*dims)

	// The first element is the reference.
	if err := shapeForNested(dims, v.Index(0), elemType); err != nil {
		return err
	}
	reference := (*dims)[level:]

	// Test that other elements have the same shape as the first one.
	for ii := 1; ii < v.Len(); ii++ {
		var sub []int
		if err := shapeForNested(&sub, v.Index(ii), elemType); err != nil {
			return err
		}
		if len(sub) != len(reference) {
			return errors.Errorf("ndarray.FromNested: sub-slices have irregular shapes, found %v and %v", reference, sub)
		}
		for jj := range sub {
			if sub[jj] != reference[jj] {
				return errors.Errorf("ndarray.FromNested: sub-slices have irregular shapes, found %v and %v", reference, sub)
			}
		}
	}
	return nil
}

// copyNested copies the values of the nested slice v to the flat slice, in row-major order.
func copyNested(flat, v reflect.Value, dims []int) {
	if len(dims) == 1 {
		// Last level of slice, just copy over the slice.
		reflect.Copy(flat, v)
		return
	}
	stride := 1
	for _, dim := range dims[1:] {
		stride *= dim
	}
	for ii := range dims[0] {
		copyNested(flat.Slice(ii*stride, (ii+1)*stride), v.Index(ii), dims[1:])
	}
}
