// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package convolution

import (
	"os"
	"strconv"
	"unsafe"

	"github.com/gomlx/multiarray/pkg/core/dtypes"
	"github.com/gomlx/multiarray/pkg/support/xslices"
	"golang.org/x/sys/cpu"
	"k8s.io/klog/v2"
)

// Level is the SIMD width used by the dot products of the convolution, detected once when the
// package is initialized.
type Level int

//go:generate go tool enumer -type=Level -linecomment -text -output=gen_level_enumer.go simd.go

const (
	// LevelScalar uses plain sequential loops.
	LevelScalar Level = iota // scalar

	// Level128 uses 128 bits wide lanes (SSE2, NEON).
	Level128 // simd128

	// Level256 uses 256 bits wide lanes (AVX2).
	Level256 // simd256

	// Level512 uses 512 bits wide lanes (AVX-512).
	Level512 // simd512
)

// NoSIMDEnv is the environment variable that, if set to a true value, disables SIMD for the whole process.
const NoSIMDEnv = "MULTIARRAY_NO_SIMD"

// maxLanes is the maximum number of accumulators: 512 bits of float32.
const maxLanes = 16

// Width returns the width of the lanes in bytes, or 0 for LevelScalar.
func (l Level) Width() int {
	switch l {
	case Level128:
		return 16
	case Level256:
		return 32
	case Level512:
		return 64
	default:
		return 0
	}
}

var currentLevel = detectLevel()

// CurrentLevel returns the SIMD level detected for this process.
func CurrentLevel() Level {
	return currentLevel
}

// noSIMDEnv returns whether NoSIMDEnv is set: any non-empty value that doesn't parse as false.
func noSIMDEnv() bool {
	val := os.Getenv(NoSIMDEnv)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func detectLevel() Level {
	level := LevelScalar
	switch {
	case noSIMDEnv():
	case cpu.X86.HasAVX512F:
		level = Level512
	case cpu.X86.HasAVX2:
		level = Level256
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		level = Level128
	}
	klog.V(1).Infof("convolution: SIMD level %s", level)
	return level
}

// lanes returns the number of lanes of T for the current level.
func lanes[T dtypes.GoFloat]() int {
	var zero T
	return min(currentLevel.Width()/int(unsafe.Sizeof(zero)), maxLanes)
}

// dotStrided returns Σ buf[pos+i*stride]*b[i], for i in [0, len(b)).
func dotStrided[T dtypes.GoFloat](buf []T, pos, stride int, b []T) (sum T) {
	for ii, v := range b {
		sum += buf[pos+ii*stride] * v
	}
	return
}

// dotLanes returns Σ a[i]*b[i], accumulating numLanes independent partial sums that the compiler can
// keep in vector registers. numLanes must be in [1, maxLanes].
func dotLanes[T dtypes.GoFloat](a, b []T, numLanes int) T {
	n := len(a)
	b = b[:n]
	var acc [maxLanes]T
	end := n - n%numLanes
	for ii := 0; ii < end; ii += numLanes {
		va, vb := a[ii:ii+numLanes], b[ii:ii+numLanes]
		for l := range va {
			acc[l] += va[l] * vb[l]
		}
	}
	var sum T
	for l := range numLanes {
		sum += acc[l]
	}
	for ii := end; ii < n; ii++ {
		sum += a[ii] * b[ii]
	}
	return sum
}

// dotFn returns the dot product function to use: dotLanes if simd is enabled, otherwise the sequential
// xslices.Dot.
func dotFn[T dtypes.GoFloat](simd bool) func(a, b []T) T {
	if !simd {
		return xslices.Dot[T]
	}
	numLanes := lanes[T]()
	if numLanes <= 1 {
		return xslices.Dot[T]
	}
	return func(a, b []T) T { return dotLanes(a, b, numLanes) }
}
