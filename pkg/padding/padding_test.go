// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package padding

import (
	"fmt"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/ndarray"
	"github.com/gomlx/multiarray/pkg/core/slicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeNames(t *testing.T) {
	for _, mode := range Modes() {
		parsed, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	mode, err := ParseMode(" Reflect0 ")
	require.NoError(t, err)
	assert.Equal(t, Reflect0, mode)
	_, err = ParseMode("mirror")
	require.Error(t, err)
	assert.Equal(t, "Mode(17)", Mode(17).String())
	assert.False(t, Mode(17).IsAMode())

	mode, err = ModeString("REFLECT")
	require.NoError(t, err)
	assert.Equal(t, Reflect, mode)
	text, err := Repeat.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "repeat", string(text))
	require.NoError(t, mode.UnmarshalText([]byte("zero")))
	assert.Equal(t, Zero, mode)
	require.Error(t, mode.UnmarshalText([]byte("mirror")))

	var flagValue Mode
	require.NoError(t, flagValue.Set("periodic"))
	assert.Equal(t, Periodic, flagValue)
	require.Error(t, flagValue.Set("bogus"))
}

func TestCopyWithPadding(t *testing.T) {
	in := ndarray.FromSlice([]int{1, 2, 3, 4})
	testCases := []struct {
		mode Mode
		want []int
	}{
		{Zero, []int{0, 0, 1, 2, 3, 4, 0, 0}},
		{Periodic, []int{3, 4, 1, 2, 3, 4, 1, 2}},
		{Repeat, []int{1, 1, 1, 2, 3, 4, 4, 4}},
		{Reflect, []int{3, 2, 1, 2, 3, 4, 3, 2}},
		{Reflect0, []int{2, 1, 1, 2, 3, 4, 4, 3}},
	}
	for _, tc := range testCases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			out := ndarray.New[int](8)
			CopyWithPadding(in, out.View, tc.mode, 2, tc.mode, 2)
			assert.Equal(t, tc.want, out.Flat())
		})
	}

	// Mixed modes and asymmetric sizes.
	out := Pad(in, Reflect, 3, Zero, 1)
	assert.Equal(t, []int{4, 3, 2, 1, 2, 3, 4, 0}, out.Flat())
}

func TestCopyWithPaddingStrided(t *testing.T) {
	// Reversed input line and a strided output.
	in := ndarray.FromSlice([]float32{1, 2, 3}).Slice(slicing.All().Step(-1))
	buf := ndarray.New[float32](10)
	out := buf.Slice(slicing.Range(0, 10, 2))
	CopyWithPadding(in, out, Repeat, 1, Periodic, 1)
	assert.Equal(t, []float32{3, 0, 3, 0, 2, 0, 1, 0, 3, 0}, buf.Flat())
}

func TestNoPadding(t *testing.T) {
	in := ndarray.FromSlice([]float64{1.5, -2, 7})
	out := ndarray.New[float64](3)
	CopyWithPadding(in, out.View, None, 0, None, 0)
	assert.True(t, ndarray.Equal(in, out.View))

	err := exceptions.TryCatch[error](func() {
		CopyWithPadding(in, ndarray.New[float64](4).View, None, 1, None, 0)
	})
	require.Error(t, err)
	require.Panics(t, func() { CopyWithPadding(in, ndarray.New[float64](4).View, Zero, 0, None, 1) })
}

func TestCheckSize(t *testing.T) {
	for _, mode := range []Mode{Periodic, Reflect, Reflect0} {
		t.Run(mode.String(), func(t *testing.T) {
			require.NotPanics(t, func() { CheckSize(mode, 4, 5) })
			require.Panics(t, func() { CheckSize(mode, 5, 5) })
			require.NotPanics(t, func() { CheckSize(mode, 0, 0) })
		})
	}
	require.NotPanics(t, func() { CheckSize(Zero, 100, 1) })
	require.NotPanics(t, func() { CheckSize(Repeat, 100, 1) })
	require.Panics(t, func() { CheckSize(Repeat, 1, 0) })
	require.Panics(t, func() { CheckSize(Zero, -1, 3) })
	require.Panics(t, func() { CheckSize(Mode(-1), 0, 3) })

	in := ndarray.FromSlice([]int{1, 2})
	require.Panics(t, func() { Pad(in, Reflect, 2, Zero, 0) }, "reflect padding as large as the line")
	require.Panics(t, func() { CopyWithPadding(in, ndarray.New[int](3).View, Zero, 2, Zero, 0) }, "wrong output length")
	require.Panics(t, func() { CopyWithPadding(in, in, Zero, 0, Zero, 0) }, "overlapping lines")
}

func TestRemap(t *testing.T) {
	const n = 5
	for _, mode := range []Mode{Periodic, Repeat, Reflect, Reflect0} {
		for i := -(n - 1); i < 2*n-1; i++ {
			j, ok := Remap(mode, i, n)
			require.True(t, ok)
			require.True(t, j >= 0 && j < n, fmt.Sprintf("mode=%s, i=%d -> %d", mode, i, j))
		}
	}
	for _, mode := range []Mode{Zero, None} {
		_, ok := Remap(mode, -1, n)
		assert.False(t, ok)
		j, ok := Remap(mode, 3, n)
		assert.True(t, ok)
		assert.Equal(t, 3, j)
	}
	j, _ := Remap(Periodic, -7, n)
	assert.Equal(t, 3, j)
}
