// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package slicing

import (
	"slices"
	"testing"

	"github.com/gomlx/multiarray/pkg/core/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRanges(t *testing.T) {
	shape := shapes.Make(6)
	strides := shape.Strides()

	testCases := []struct {
		name          string
		spec          Spec
		wantOffset    int
		wantDim       int
		wantStride    int
		wantPositions []int
	}{
		{"1:4:2", Range(1, 4, 2), 1, 2, 2, []int{1, 3}},
		{"all", All(), 0, 6, 1, []int{0, 1, 2, 3, 4, 5}},
		{"reversed", All().Step(-1), 5, 6, -1, []int{5, 4, 3, 2, 1, 0}},
		{"-2:", From(-2), 4, 2, 1, []int{4, 5}},
		{":-4", To(-4), 0, 2, 1, []int{0, 1}},
		{"4:1:-1", Range(4, 1, -1), 4, 3, -1, []int{4, 3, 2}},
		{"clamped", Range(-100, 100, 1), 0, 6, 1, []int{0, 1, 2, 3, 4, 5}},
		{"clamped reverse", Range(100, -100, -2), 5, 3, -2, []int{5, 3, 1}},
		{"single", Range(2, 3, 1), 2, 1, 0, []int{2}},
		{"empty start==stop", Range(3, 3, 2), 0, 0, 1, nil},
		{"empty", Range(4, 2, 1), 0, 0, 1, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Resolve(shape, strides, tc.spec)
			require.Equal(t, 1, res.Shape.Rank())
			assert.Equal(t, tc.wantOffset, res.Offset)
			assert.Equal(t, tc.wantDim, res.Shape.Dim(0))
			assert.Equal(t, tc.wantStride, res.Strides.At(0))
			var positions []int
			for ii := range res.Shape.Dim(0) {
				positions = append(positions, res.Offset+ii*res.Strides.At(0))
			}
			assert.Equal(t, tc.wantPositions, positions)
		})
	}
}

func TestResolveMixed(t *testing.T) {
	shape := shapes.Make(5, 6, 7)
	strides := shape.Strides() // [42 7 1]

	res := Resolve(shape, strides, Index(-1), Ellipsis(), Range(1, 4, 2))
	assert.True(t, res.Shape.Equal(shapes.Make(6, 2)))
	assert.Equal(t, []int{7, 2}, res.Strides.Values())
	assert.Equal(t, []int{4, 0, 1}, res.Point)
	assert.Equal(t, 4*42+1, res.Offset)
	assert.Equal(t, []int{1, 2}, res.Source)

	// Shortfall is filled with full ranges, and NewAxis doesn't consume an axis.
	res = Resolve(shape, strides, NewAxis(), Index(2))
	assert.True(t, res.Shape.Equal(shapes.Make(1, 6, 7)))
	assert.Equal(t, []int{0, 7, 1}, res.Strides.Values())
	assert.Equal(t, []int{-1, 1, 2}, res.Source)
	assert.Equal(t, 84, res.Offset)

	res = Resolve(shape, strides, Ellipsis(), NewAxis())
	assert.True(t, res.Shape.Equal(shapes.Make(5, 6, 7, 1)))

	// All axes indexed: rank 0 result.
	res = Resolve(shape, strides, Index(1), Index(2), Index(3))
	assert.Equal(t, 0, res.Shape.Rank())
	assert.Equal(t, 42+14+3, res.Offset)
}

func TestResolveFailures(t *testing.T) {
	shape := shapes.Make(5, 6)
	strides := shape.Strides()
	require.Panics(t, func() { Range(1, 4, 0) }, "zero step")
	require.Panics(t, func() { Resolve(shape, strides, Spec{Kind: KindRange, Start: 1, Stop: 4}) }, "zero step")
	require.Panics(t, func() { Resolve(shape, strides, All(), All(), All()) }, "too many specs")
	require.Panics(t, func() { Resolve(shape, strides, Ellipsis(), Index(0), Ellipsis()) }, "two ellipsis")
	require.Panics(t, func() { Resolve(shape, strides, Index(5)) }, "index out of range")
	require.Panics(t, func() { Resolve(shape, strides, Index(-6)) }, "index out of range")
	require.NotPanics(t, func() { Resolve(shape, strides, NewAxis(), All(), NewAxis(), All(), NewAxis()) })
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "[1, ..., ::-1, 2:, :3, 1:4:2, newaxis]",
		Format(Index(1), Ellipsis(), All().Step(-1), From(2), To(3), Range(1, 4, 2), NewAxis()))
	assert.Equal(t, "NewAxis", KindNewAxis.String())
	assert.Equal(t, "Kind(7)", Spec{Kind: 7}.String())
	kind, err := KindString("range")
	require.NoError(t, err)
	assert.Equal(t, KindRange, kind)
}

func TestWalker(t *testing.T) {
	shape := shapes.Make(2, 3, 4)

	t.Run("RowMajor", func(t *testing.T) {
		var points [][]int
		for p := range Walk(shape, shapes.RowMajor, 1) {
			points = append(points, slices.Clone(p))
		}
		require.Equal(t, [][]int{
			{0, 0, 0}, {0, 0, 1}, {0, 0, 2}, {0, 0, 3},
			{1, 0, 0}, {1, 0, 1}, {1, 0, 2}, {1, 0, 3},
		}, points)
	})

	t.Run("ColumnMajor", func(t *testing.T) {
		var points [][]int
		for p := range Walk(shape, shapes.ColumnMajor, 2) {
			points = append(points, slices.Clone(p))
		}
		require.Equal(t, [][]int{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0, 2, 0}, {1, 2, 0},
		}, points)
	})

	t.Run("Specs", func(t *testing.T) {
		w := NewWalker(shape, shapes.RowMajor, 0, 2)
		require.Equal(t, 3, w.NumSteps())
		w.Next()
		require.True(t, w.HasMore())
		assert.Equal(t, "[:, 1, :]", Format(w.Specs()...))
		res := Resolve(shape, shape.Strides(), w.Specs()...)
		assert.True(t, res.Shape.Equal(shapes.Make(2, 4)))
		assert.Equal(t, 4, res.Offset)
		w.Next()
		w.Next()
		require.False(t, w.HasMore())
		require.Equal(t, 3, w.Count())
		w.Reset()
		require.True(t, w.HasMore())
		require.Equal(t, []int{0, 0, 0}, w.Point())
	})

	t.Run("AllFree", func(t *testing.T) {
		count := 0
		for range Walk(shape, shapes.RowMajor, 0, 1, 2) {
			count++
		}
		require.Equal(t, 1, count)
	})

	t.Run("Empty", func(t *testing.T) {
		count := 0
		for range Walk(shapes.Make(3, 0), shapes.RowMajor, 0) {
			count++
		}
		require.Zero(t, count)
	})

	t.Run("Invalid", func(t *testing.T) {
		require.Panics(t, func() { NewWalker(shape, shapes.RowMajor, 3) })
		require.Panics(t, func() { NewWalker(shape, shapes.RowMajor, 1, 1) })
	})
}
