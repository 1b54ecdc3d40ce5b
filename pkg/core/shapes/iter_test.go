// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShape_Strides(t *testing.T) {
	// Test case 1: shape with dimensions [2, 3, 4]
	shape := Make(2, 3, 4)
	require.Equal(t, []int{12, 4, 1}, shape.Strides().Values())
	require.Equal(t, []int{1, 2, 6}, Strides(shape, ColumnMajor).Values())

	// Test case 2: shape with single dimension
	shape = Make(5)
	require.Equal(t, []int{1}, shape.Strides().Values())

	// Test case 3: shape with dimensions [3, 1, 2]: the singleton axis gets stride 0.
	shape = Make(3, 1, 2)
	require.Equal(t, []int{2, 0, 1}, shape.Strides().Values())
	require.Equal(t, []int{1, 0, 3}, Strides(shape, ColumnMajor).Values())

	// Test case 4: all singletons.
	shape = Make(1, 1)
	require.Equal(t, []int{0, 0}, shape.Strides().Values())
}

func TestShape_Iter(t *testing.T) {
	// Version 1: there is only one value to iterate:
	shape := Make(1, 1, 1, 1)
	collect := make([][]int, 0, shape.Size())
	for flatIdx, indices := range shape.Iter() {
		collect = append(collect, slices.Clone(indices))
		require.Equal(t, 0, flatIdx) // There should only be one flatIdx, equal to 0.
	}
	require.Equal(t, [][]int{{0, 0, 0, 0}}, collect)

	// Version 2: all axes are "spatial" (dim > 1)
	shape = Make(3, 2)
	collect = make([][]int, 0, shape.Size())
	var counter int
	for flatIdx, indices := range shape.Iter() {
		collect = append(collect, slices.Clone(indices))
		require.Equal(t, counter, flatIdx)
		counter++
	}
	want := [][]int{
		{0, 0},
		{0, 1},
		{1, 0},
		{1, 1},
		{2, 0},
		{2, 1},
	}
	require.Equal(t, want, collect)

	// Version 3: with only 2 spatial axes.
	shape = Make(3, 1, 2, 1)
	collect = make([][]int, 0, shape.Size())
	counter = 0
	for flatIdx, indices := range shape.Iter() {
		collect = append(collect, slices.Clone(indices))
		require.Equal(t, counter, flatIdx)
		counter++
	}
	want = [][]int{
		{0, 0, 0, 0},
		{0, 0, 1, 0},
		{1, 0, 0, 0},
		{1, 0, 1, 0},
		{2, 0, 0, 0},
		{2, 0, 1, 0},
	}
	require.Equal(t, want, collect)
}

func TestShape_IterOnAxes(t *testing.T) {
	// Shape with dimensions [2, 3, 4]
	shape := Make(2, 3, 4)

	// Test iteration on the first axis.
	var collect [][]int
	var flatIndices []int
	indices := make([]int, 3)
	indices[1] = 1               // Index 1 should be fixed to 1.
	axesToIterate := []int{0, 2} // We are only iterating on the axis 0 an 2.
	for flatIdx, indicesResult := range shape.IterOnAxes(axesToIterate, nil, indices) {
		collect = append(collect, slices.Clone(indicesResult))
		flatIndices = append(flatIndices, flatIdx)
	}
	require.Equal(t, [][]int{
		{0, 1, 0},
		{0, 1, 1},
		{0, 1, 2},
		{0, 1, 3},
		{1, 1, 0},
		{1, 1, 1},
		{1, 1, 2},
		{1, 1, 3},
	}, collect)
	require.Equal(t, []int{4, 5, 6, 7, 16, 17, 18, 19}, flatIndices)
}

func TestShape_IterStrided(t *testing.T) {
	// Column-major strides of a [2, 3] shape.
	shape := Make(2, 3)
	var offsets []int
	for offset := range shape.IterStrided([]int{1, 2}) {
		offsets = append(offsets, offset)
	}
	require.Equal(t, []int{0, 2, 4, 1, 3, 5}, offsets)

	// Negative strides walk backwards.
	offsets = offsets[:0]
	for offset := range Make(3).IterStrided([]int{-2}) {
		offsets = append(offsets, offset)
	}
	require.Equal(t, []int{0, -2, -4}, offsets)
	require.Panics(t, func() { Make(3).IterStrided([]int{1, 1}) })
}

func TestShape_IterEmpty(t *testing.T) {
	count := 0
	for range Make(3, 0, 2).Iter() {
		count++
	}
	require.Zero(t, count)

	count = 0
	for range Make(3, 0, 2).IterOnAxes([]int{0}, nil, nil) {
		count++
	}
	require.Equal(t, 3, count, "iterating only over axes with dimension > 0")
}
