// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package convolution

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/ndarray"
	"github.com/gomlx/multiarray/pkg/core/shapes"
	"github.com/gomlx/multiarray/pkg/core/slicing"
	"github.com/gomlx/multiarray/pkg/padding"
	"github.com/gomlx/multiarray/pkg/support/xslices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

// paddedModes are the modes that accept padding sizes > 0.
var paddedModes = []padding.Mode{padding.Zero, padding.Periodic, padding.Repeat, padding.Reflect, padding.Reflect0}

// randomArray returns an array with values uniformly distributed in [0.5, 1.5).
func randomArray(rng *rand.Rand, dims ...int) *ndarray.Array[float32] {
	a := ndarray.New[float32](dims...)
	flat := a.Flat()
	for ii := range flat {
		flat[ii] = 0.5 + rng.Float32()
	}
	return a
}

// requireRelativelyClose checks that |got-want| <= tolerance*|want| for every element.
func requireRelativelyClose(t *testing.T, want, got ndarray.View[float32], tolerance float64, msgAndArgs ...any) {
	t.Helper()
	require.True(t, want.Shape().Equal(got.Shape()), msgAndArgs...)
	gotValues := got.Values()
	for ii, w := range want.All() {
		diff := math.Abs(float64(gotValues[ii]) - float64(w))
		if diff > tolerance*math.Abs(float64(w)) {
			require.Failf(t, "values differ", "element %d: want %g, got %g (%s)", ii, w, gotValues[ii], fmt.Sprint(msgAndArgs...))
		}
	}
}

func TestConvolutionConvention(t *testing.T) {
	// Tap j reads offset center-j: with center 0, out[i] = 1*in[i] + 10*in[i-1].
	k := NewKernel([]float32{1, 10}, 0)
	in := ndarray.FromSlice([]float32{1, 2, 3})
	for _, reference := range []bool{false, true} {
		out := ndarray.New[float32](3)
		ConvolveAxis(in, out.View, 0, k, DefaultOptions().WithPadding(padding.Zero, padding.Zero).WithReference(reference))
		assert.Equal(t, []float32{1, 12, 23}, out.Flat(), "reference=%v", reference)
	}

	// With center 1, out[i] = 1*in[i+1] + 10*in[i]: no padding on the left, one sample on the right.
	k = NewKernel([]float32{1, 10}, 1)
	out := ndarray.New[float32](3)
	ConvolveAxis(in, out.View, 0, k, DefaultOptions().WithPadding(padding.None, padding.Zero))
	assert.Equal(t, []float32{12, 23, 30}, out.Flat())
	require.Panics(t, func() {
		ConvolveAxis(in, out.View, 0, k, DefaultOptions().WithPadding(padding.Zero, padding.None))
	})

	// Central difference of a linear function is its slope. Repeat padding halves it at the borders.
	line := ndarray.FromSlice([]float64{0, 2, 4, 6, 8})
	slopes := ndarray.New[float64](5)
	ConvolveAxis(line, slopes.View, 0, CentralDifference[float64](), DefaultOptions().WithPadding(padding.Repeat, padding.Repeat))
	assert.Equal(t, []float64{1, 2, 2, 2, 1}, slopes.Flat())
}

func TestConvolveOnes(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping large array test in short mode")
	}
	in := ndarray.NewWith[float32](shapes.Make(100, 200, 300), ndarray.WithValue(float32(1)))
	out := ndarray.New[float32](100, 200, 300)
	Convolve(in.View, out.View, Averaging[float32](1), nil)
	minValue, maxValue := ndarray.MinMax(out.View)
	assert.InDelta(t, 1.0, minValue, 1e-6)
	assert.InDelta(t, 1.0, maxValue, 1e-6)
}

func TestConvolveIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	in := randomArray(rng, 4, 5, 6)
	for _, mode := range padding.Modes() {
		for _, reference := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/reference=%v", mode, reference), func(t *testing.T) {
				opts := DefaultOptions().WithPadding(mode, mode).WithReference(reference)
				out := ndarray.New[float32](4, 5, 6)
				Convolve(in.View, out.View, Identity[float32](), opts)
				assert.Equal(t, in.Flat(), out.Flat())

				// Strided input and output.
				outT := ndarray.New[float32](6, 5, 4)
				Convolve(in.Transpose(), outT.View, Identity[float32](), opts)
				assert.True(t, ndarray.Equal(in.Transpose(), outT.View))
			})
		}
	}
}

func TestReferenceVsOptimized(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	kernels := map[string]Kernel[float32]{
		"gaussian":   Gaussian[float32](1.5, 0, 0),
		"averaging":  Averaging[float32](2),
		"asymmetric": NewKernel([]float32{0.4, 0.3, 0.2, 0.1}, 1),
		"bspline3":   BSpline[float32](3),
	}
	for _, dims := range [][]int{{37}, {13, 17}, {9, 11, 12}} {
		in := randomArray(rng, dims...)
		for name, kernel := range kernels {
			for _, left := range paddedModes {
				for _, right := range paddedModes {
					for _, simd := range []bool{false, true} {
						msg := fmt.Sprintf("dims=%v, kernel=%s, padding=%s/%s, simd=%v", dims, name, left, right, simd)
						opts := DefaultOptions().WithPadding(left, right).WithSIMD(simd)
						want := ndarray.New[float32](dims...)
						Convolve(in.View, want.View, kernel, DefaultOptions().WithPadding(left, right).WithReference(true).WithSIMD(false))
						got := ndarray.New[float32](dims...)
						Convolve(in.View, got.View, kernel, opts)
						requireRelativelyClose(t, want.View, got.View, 1e-6, msg)
					}
				}
			}
		}
	}
}

func TestConvolveStridedInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	base := randomArray(rng, 20, 30)
	in := base.Slice(slicing.Range(1, 20, 2), slicing.All().Step(-1))
	require.False(t, in.IsContiguous())
	kernel := Gaussian[float32](1, 0, 0)

	want := ndarray.New[float32](10, 30)
	Convolve(in.Copy().View, want.View, kernel, nil)
	got := ndarray.New[float32](30, 10)
	Convolve(in, got.Transpose(), kernel, nil)
	requireRelativelyClose(t, want.View, got.Transpose(), 1e-6)
}

func TestConvolveWithKernels(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	in := randomArray(rng, 8, 9)
	out := ndarray.New[float32](8, 9)
	ConvolveWithKernels(in.View, out.View, []Kernel[float32]{Identity[float32](), Averaging[float32](1)}, nil)

	// Only the last axis is smoothed.
	want := ndarray.New[float32](8, 9)
	ConvolveAxis(in.View, want.View, 1, Averaging[float32](1), nil)
	requireRelativelyClose(t, want.View, out.View, 1e-6)

	require.Panics(t, func() {
		ConvolveWithKernels(in.View, out.View, []Kernel[float32]{Identity[float32]()}, nil)
	})
	require.Panics(t, func() { ConvolveAxis(in.View, out.View, 2, Identity[float32](), nil) })
}

func TestConvolveDims(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	kernel := Gaussian[float32](1, 0, 0)
	img := randomArray(rng, 10, 12, 3)
	out := ndarray.New[float32](10, 12, 3)
	ConvolveDims(img.View, out.View, kernel, nil, 2)
	for c := range 3 {
		want := ndarray.New[float32](10, 12)
		Convolve(img.BindLast(c), want.View, kernel, nil)
		requireRelativelyClose(t, want.View, out.BindLast(c), 1e-6, fmt.Sprintf("channel %d", c))
	}

	// Tagged channel axis first.
	planar := img.MoveAxis(2, 0).WithAxisTags(shapes.AxisChannels, shapes.AxisY, shapes.AxisX)
	outPlanar := ndarray.NewWith[float32](planar.Shape())
	ConvolveDims(planar, outPlanar.View, kernel, nil, 2)
	requireRelativelyClose(t, out.MoveAxis(2, 0), outPlanar.View, 1e-6)

	// Same rank as dims: regular convolution.
	gray := img.BindLast(0)
	outGray := ndarray.New[float32](10, 12)
	ConvolveDims(gray, outGray.View, kernel, nil, 2)
	requireRelativelyClose(t, out.BindLast(0), outGray.View, 1e-6)

	require.Panics(t, func() { ConvolveDims(img.View, out.View, kernel, nil, 1) }, "rank exceeds dims by 2")
	require.Panics(t, func() { ConvolveDims(img.View, out.View, kernel, nil, 0) })
}

func TestConvolveAtomicity(t *testing.T) {
	in := ndarray.NewWith[float32](shapes.Make(10, 3), ndarray.WithValue(float32(1)))
	out := ndarray.NewWith[float32](shapes.Make(10, 3), ndarray.WithValue(float32(-7)))

	// Axis 0 is long enough for the reflect padding, axis 1 is not.
	err := TryConvolve(in.View, out.View, Averaging[float32](4), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "axis 1")
	minValue, maxValue := ndarray.MinMax(out.View)
	assert.Equal(t, float32(-7), minValue)
	assert.Equal(t, float32(-7), maxValue)

	// Zero padding has no size limit.
	require.NoError(t, TryConvolve(in.View, out.View, Averaging[float32](4), DefaultOptions().WithPadding(padding.Zero, padding.Zero)))

	// No padding only accepts single tap kernels.
	noPadding := DefaultOptions().WithPadding(padding.None, padding.None)
	require.Error(t, TryConvolve(in.View, out.View, Averaging[float32](1), noPadding))
	require.NoError(t, TryConvolve(in.View, out.View, Identity[float32](), noPadding))

	require.Error(t, TryConvolve(in.View, ndarray.New[float32](3, 10).View, Identity[float32](), nil))
	require.Error(t, TryConvolve(in.View, out.View, Kernel[float32]{}, nil))
}

func TestConvolveAliasing(t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 9))
	a := randomArray(rng, 16, 16)
	kernel := Gaussian[float32](1.2, 0, 0)
	want := ndarray.New[float32](16, 16)
	Convolve(a.View, want.View, kernel, nil)

	// In place.
	Convolve(a.View, a.View, kernel, nil)
	requireRelativelyClose(t, want.View, a.View, 1e-6)

	// Partially overlapping input and output lines.
	b := randomArray(rng, 32)
	line := b.Subarray([]int{0}, []int{20})
	wantLine := ndarray.New[float32](20)
	ConvolveAxis(line, wantLine.View, 0, kernel, nil)
	shifted := b.Subarray([]int{5}, []int{25})
	ConvolveAxis(line, shifted, 0, kernel, nil)
	requireRelativelyClose(t, wantLine.View, shifted, 1e-6)
}

func TestConvolveEmpty(t *testing.T) {
	in := ndarray.New[float32](0, 5)
	out := ndarray.New[float32](0, 5)
	require.NotPanics(t, func() { Convolve(in.View, out.View, Averaging[float32](3), nil) })
	err := exceptions.TryCatch[error](func() {
		var empty ndarray.View[float32]
		Convolve(empty, empty, Identity[float32](), nil)
	})
	require.Error(t, err)
}

func TestConvolveFloat16(t *testing.T) {
	values := []float16.Float16{float16.Fromfloat32(1), float16.Fromfloat32(2), float16.Fromfloat32(4), float16.Fromfloat32(8)}
	in := ndarray.FromSlice(values)
	out := ndarray.New[float16.Float16](4)
	ConvolveFloat16(in, out.View, NewKernel([]float32{0.5, 0.5}, 0), DefaultOptions().WithPadding(padding.Repeat, padding.Repeat))
	got := make([]float32, 4)
	for ii, v := range out.Flat() {
		got[ii] = v.Float32()
	}
	assert.Equal(t, []float32{1, 1.5, 3, 6}, got)
	require.Panics(t, func() { ConvolveFloat16(in, ndarray.New[float16.Float16](3).View, Identity[float32](), nil) })
}

func TestSIMD(t *testing.T) {
	rng := rand.New(rand.NewPCG(10, 11))
	for n := range 40 {
		a, b := make([]float64, n), make([]float64, n)
		for ii := range a {
			a[ii], b[ii] = rng.Float64(), rng.Float64()
		}
		want := xslices.Dot(a, b)
		for _, numLanes := range []int{1, 2, 4, 8, 16} {
			require.InDelta(t, want, dotLanes(a, b, numLanes), 1e-12, "n=%d, lanes=%d", n, numLanes)
		}
		require.InDelta(t, want, dotFn[float64](true)(a, b), 1e-12)
		require.InDelta(t, want, dotStrided(a, 0, 1, b), 1e-12)
	}
	assert.Equal(t, "simd256", Level256.String())
	level, err := LevelString("SIMD512")
	require.NoError(t, err)
	assert.Equal(t, Level512, level)
	require.NoError(t, level.UnmarshalText([]byte("scalar")))
	assert.Equal(t, LevelScalar, level)
	assert.Equal(t, 64, Level512.Width())
	assert.Equal(t, 0, LevelScalar.Width())
	fmt.Printf("SIMD level: %s, lanes(float32)=%d\n", CurrentLevel(), lanes[float32]())
	if CurrentLevel() == LevelScalar {
		assert.False(t, DefaultOptions().useSIMD())
	}
	assert.Contains(t, DefaultOptions().WithReference(true).String(), "reference")
}

func BenchmarkConvolve(b *testing.B) {
	rng := rand.New(rand.NewPCG(42, 42))
	in := randomArray(rng, 512, 512)
	out := ndarray.New[float32](512, 512)
	kernel := Gaussian[float32](2, 0, 0)
	for _, bc := range []struct {
		name string
		opts *Options
	}{
		{"optimized", DefaultOptions()},
		{"optimized-nosimd", DefaultOptions().WithSIMD(false)},
		{"reference", DefaultOptions().WithReference(true)},
	} {
		b.Run(bc.name, func(b *testing.B) {
			for range b.N {
				Convolve(in.View, out.View, kernel, bc.opts)
			}
		})
	}
}
