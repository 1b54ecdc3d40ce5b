// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package convolution

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKernel(t *testing.T) {
	k := NewKernel([]float64{1, 2, 3, 4}, 1)
	assert.Equal(t, 4, k.Len())
	assert.Equal(t, 1, k.Center())
	assert.Equal(t, -2, k.Left())
	assert.Equal(t, 1, k.Right())
	assert.Equal(t, 3.0, k.At(2))
	assert.Equal(t, 10.0, k.Sum())

	r := k.Reversed()
	assert.Equal(t, []float64{4, 3, 2, 1}, r.Values())
	assert.Equal(t, 2, r.Center())
	assert.Equal(t, -1, r.Left())
	assert.Equal(t, 2, r.Right())

	n := k.Normalize(1)
	assert.InDeltaSlice(t, []float64{0.1, 0.2, 0.3, 0.4}, n.Values(), 1e-12)
	assert.Equal(t, []float64{1, 2, 3, 4}, k.Values(), "kernels are immutable")

	values := k.Values()
	values[0] = 100
	assert.Equal(t, 1.0, k.At(0))
	assert.Equal(t, 4, k.View().Size())
	assert.Contains(t, k.String(), "center=1")

	require.Panics(t, func() { NewKernel([]float32{}, 0) })
	require.Panics(t, func() { NewKernel([]float32{1}, 1) })
	require.Panics(t, func() { NewKernel([]float32{1, -1}, 0).Normalize(1) })
	var empty Kernel[float32]
	assert.Equal(t, 0, empty.Len())
	assert.Contains(t, empty.String(), "empty")
}

func TestSimpleKernels(t *testing.T) {
	id := Identity[float32]()
	assert.Equal(t, []float32{1}, id.Values())
	assert.Equal(t, 0, id.Left())
	assert.Equal(t, 0, id.Right())

	avg := Averaging[float64](2)
	assert.Equal(t, 5, avg.Len())
	assert.Equal(t, 2, avg.Center())
	assert.InDelta(t, 1.0, avg.Sum(), 1e-12)
	require.Panics(t, func() { Averaging[float64](-1) })

	diff := CentralDifference[float32]()
	assert.Equal(t, []float32{0.5, 0, -0.5}, diff.Values())
	assert.Equal(t, 1, diff.Center())
}

// moment returns Σ k[j] (c-j)^n / n!.
func moment(k Kernel[float64], n int) float64 {
	factorial := 1.0
	for ii := 2; ii <= n; ii++ {
		factorial *= float64(ii)
	}
	sum := 0.0
	for j, v := range k.Values() {
		sum += v * math.Pow(float64(k.Center()-j), float64(n))
	}
	return sum / factorial
}

func TestGaussian(t *testing.T) {
	g := Gaussian[float64](1.5, 0, 0)
	assert.Equal(t, 5, g.Center(), "radius is round(3*sigma)")
	assert.Equal(t, 11, g.Len())
	assert.InDelta(t, 1.0, g.Sum(), 1e-12)
	values := g.Values()
	for j := range g.Center() {
		assert.InDelta(t, values[j], values[g.Len()-1-j], 1e-15, "symmetric")
		assert.Less(t, values[j], values[j+1], "increasing towards the center")
	}

	d1 := Gaussian[float64](2, 1, 0)
	assert.Equal(t, 7, d1.Center(), "radius is round(3.5*sigma)")
	assert.InDelta(t, 0.0, d1.Sum(), 1e-12)
	assert.InDelta(t, 1.0, moment(d1, 1), 1e-12)
	assert.Greater(t, d1.At(0), 0.0, "same sign convention as CentralDifference")

	d2 := Gaussian[float64](2, 2, 4)
	assert.Equal(t, 8, d2.Center())
	assert.InDelta(t, 0.0, d2.Sum(), 1e-12)
	assert.InDelta(t, 1.0, moment(d2, 2), 1e-12)

	tiny := Gaussian[float32](0.1, 0, 0)
	assert.Equal(t, 3, tiny.Len(), "radius is at least 1")

	require.Panics(t, func() { Gaussian[float32](0, 0, 0) })
	require.Panics(t, func() { Gaussian[float32](1, -1, 0) })
}

func TestBSpline(t *testing.T) {
	testCases := []struct {
		order int
		want  []float64
	}{
		{0, []float64{1}},
		{1, []float64{1}},
		{2, []float64{1.0 / 8, 3.0 / 4, 1.0 / 8}},
		{3, []float64{1.0 / 6, 2.0 / 3, 1.0 / 6}},
		{4, []float64{1.0 / 384, 76.0 / 384, 230.0 / 384, 76.0 / 384, 1.0 / 384}},
		{5, []float64{1.0 / 120, 26.0 / 120, 66.0 / 120, 26.0 / 120, 1.0 / 120}},
	}
	for _, tc := range testCases {
		k := BSpline[float64](tc.order)
		assert.InDeltaSlice(t, tc.want, k.Values(), 1e-12, "order %d", tc.order)
		assert.Equal(t, tc.order/2, k.Center())
		assert.InDelta(t, 1.0, k.Sum(), 1e-12, "partition of unity, order %d", tc.order)
	}
	require.Panics(t, func() { BSpline[float32](-1) })
}
