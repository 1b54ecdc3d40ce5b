// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package convolution

import (
	"fmt"

	"github.com/gomlx/multiarray/pkg/padding"
)

// Options configures a convolution. Create it with DefaultOptions and change it with the With* methods.
//
// Example:
//
//	opts := convolution.DefaultOptions().WithPadding(padding.Zero, padding.Zero).WithSIMD(false)
type Options struct {
	// SIMD enables the lane-unrolled dot products, if the CPU supports them (see Level).
	SIMD bool

	// Left and Right are the padding modes used before the start and after the end of every line.
	Left, Right padding.Mode

	// Reference forces the reference path: every line is copied into a padded scratch buffer before
	// filtering. It's slower, and meant for testing.
	Reference bool
}

// DefaultOptions returns the default configuration: SIMD enabled, padding.Reflect on both sides and
// the optimized path.
func DefaultOptions() *Options {
	return &Options{
		SIMD:  true,
		Left:  padding.Reflect,
		Right: padding.Reflect,
	}
}

// WithSIMD enables or disables the SIMD dot products. It returns the Options, so calls can be cascaded.
func (o *Options) WithSIMD(enabled bool) *Options {
	o.SIMD = enabled
	return o
}

// WithPadding sets the padding modes of the left and right sides of the lines.
// It returns the Options, so calls can be cascaded.
func (o *Options) WithPadding(left, right padding.Mode) *Options {
	o.Left, o.Right = left, right
	return o
}

// WithReference selects the reference path (if true) or the optimized path.
// It returns the Options, so calls can be cascaded.
func (o *Options) WithReference(reference bool) *Options {
	o.Reference = reference
	return o
}

// useSIMD returns whether the options and the CPU allow the SIMD dot products.
func (o *Options) useSIMD() bool {
	return o.SIMD && currentLevel != LevelScalar
}

// String implements fmt.Stringer.
func (o *Options) String() string {
	path := "optimized"
	if o.Reference {
		path = "reference"
	}
	return fmt.Sprintf("Options{padding=%s/%s, simd=%v, path=%s}", o.Left, o.Right, o.useSIMD(), path)
}

// orDefault returns opts, or DefaultOptions if it is nil.
func orDefault(opts *Options) *Options {
	if opts == nil {
		return DefaultOptions()
	}
	return opts
}
