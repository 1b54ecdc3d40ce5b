// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package xslices provide missing functionality to the slices package, mostly for
// the integer slices used as indices, shapes and permutations.
package xslices

import (
	"cmp"
	"flag"
	"fmt"
	"reflect"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/support/sets"
	"golang.org/x/exp/constraints"
)

// Iota returns a slice of incremental int values, starting with start and of length len.
// Eg: Iota(3.0, 2) -> []float64{3.0, 4.0}
func Iota[T interface {
	constraints.Integer | constraints.Float
}](start T, len int) (slice []T) {
	slice = make([]T, len)
	for ii := range slice {
		slice[ii] = start + T(ii)
	}
	return
}

// Min scans the slice and returns the smallest value.
func Min[T cmp.Ordered](slice []T) (min T) {
	if len(slice) == 0 {
		return
	}
	min = slice[0]
	for _, v := range slice {
		if v < min {
			min = v
		}
	}
	return
}

// Product returns the product of all values. It returns 1 for an empty slice.
func Product[T constraints.Integer | constraints.Float](slice []T) T {
	p := T(1)
	for _, v := range slice {
		p *= v
	}
	return p
}

// Sum returns the sum of all values.
func Sum[T constraints.Integer | constraints.Float](slice []T) (sum T) {
	for _, v := range slice {
		sum += v
	}
	return
}

// Dot returns the sum of the element-wise products of a and b, which must have the same length.
func Dot[T constraints.Integer | constraints.Float](a, b []T) (dot T) {
	if len(a) != len(b) {
		exceptions.Panicf("xslices.Dot: slices of different lengths %d and %d", len(a), len(b))
	}
	for ii, v := range a {
		dot += v * b[ii]
	}
	return
}

// IsPermutation returns whether perm is a bijection over [0, len(perm)).
func IsPermutation(perm []int) bool {
	seen := sets.Make[int](len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen.Has(p) {
			return false
		}
		seen.Insert(p)
	}
	return true
}

// InversePermutation returns inv such that inv[perm[i]] = i.
// It assumes perm is valid, see IsPermutation.
func InversePermutation(perm []int) []int {
	inv := make([]int, len(perm))
	for ii, p := range perm {
		inv[p] = ii
	}
	return inv
}

// Reversed returns a new slice with the elements of slice in reverse order.
func Reversed[T any](slice []T) []T {
	out := make([]T, len(slice))
	for ii, v := range slice {
		out[len(slice)-1-ii] = v
	}
	return out
}

// Flag creates a flag for []T with the given name, description and default value.
// It takes as input a parser for an individual T value.
func Flag[T any](name string, defaultValue []T, usage string,
	parserFn func(valueStr string) (T, error)) *[]T {
	f := &genericSliceFlagImpl[T]{
		parsedSlice: defaultValue,
		parserFn:    parserFn,
	}
	flag.Var(f, name, usage)
	return &f.parsedSlice
}

// genericSliceFlagImpl implements flag.Value for a generic type.
type genericSliceFlagImpl[T any] struct {
	parsedSlice []T
	parserFn    func(valueStr string) (T, error)
}

func (f *genericSliceFlagImpl[T]) String() string {
	if len(f.parsedSlice) == 0 {
		return ""
	}
	parts := make([]string, len(f.parsedSlice))
	for ii, elem := range f.parsedSlice {
		v := reflect.ValueOf(elem)
		stringerType := reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
		if v.CanConvert(stringerType) {
			parts[ii] = v.Convert(stringerType).Interface().(fmt.Stringer).String()
		} else {
			parts[ii] = fmt.Sprintf("%v", elem)
		}
	}
	return strings.Join(parts, ",")
}

func (f *genericSliceFlagImpl[T]) Set(listStr string) error {
	if listStr == "" {
		f.parsedSlice = make([]T, 0)
		return nil
	}
	parts := strings.Split(listStr, ",")
	f.parsedSlice = make([]T, len(parts))
	var err error
	for ii, part := range parts {
		f.parsedSlice[ii], err = f.parserFn(part)
		if err != nil {
			return err
		}
	}
	return nil
}
