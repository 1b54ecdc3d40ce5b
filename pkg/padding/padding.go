// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package padding implements the policies used to synthesize samples outside a 1-D line of data,
// as needed by filters (see package convolution) near the borders.
//
// For a line of length n, the padded sample at index i (i < 0 on the left, i >= n on the right) is:
//
//   - None: no padding is allowed, the padding size must be 0.
//   - Zero: the zero value.
//   - Periodic: in[i mod n].
//   - Repeat: the edge value, in[0] or in[n-1].
//   - Reflect: mirror without repeating the edge: in[-i] and in[2n-2-i].
//   - Reflect0: mirror repeating the edge once: in[-i-1] and in[2n-1-i].
package padding

import (
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/core/ndarray"
	"github.com/pkg/errors"
)

// Mode is the padding policy of one side of a line.
type Mode int

//go:generate go tool enumer -type=Mode -transform=lower -text -output=gen_mode_enumer.go padding.go

const (
	None Mode = iota
	Zero
	Periodic
	Repeat
	Reflect
	Reflect0
)

// Modes lists all valid padding modes.
func Modes() []Mode {
	return ModeValues()
}

// ParseMode converts a mode name (case-insensitive, as returned by Mode.String) to a Mode.
func ParseMode(name string) (Mode, error) {
	mode, err := ModeString(strings.TrimSpace(name))
	if err != nil {
		return None, errors.Wrapf(err, "padding: unknown mode %q, valid values are %v", name, ModeStrings())
	}
	return mode, nil
}

// Set implements flag.Value.
func (m *Mode) Set(name string) error {
	mode, err := ParseMode(name)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Remap maps the index i of a padded sample of a line of length n to the index of the line sample it
// copies, using mode. It returns false if the sample is zero (mode Zero) or undefined (mode None).
//
// Indices already inside [0, n) are returned unchanged for every mode.
// The reflect modes assume the distance outside the line is smaller than n (see CheckSize).
func Remap(mode Mode, i, n int) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch mode {
	case Periodic:
		i %= n
		if i < 0 {
			i += n
		}
		return i, true
	case Repeat:
		if i < 0 {
			return 0, true
		}
		return n - 1, true
	case Reflect:
		if i < 0 {
			return -i, true
		}
		return 2*n - 2 - i, true
	case Reflect0:
		if i < 0 {
			return -i - 1, true
		}
		return 2*n - 1 - i, true
	default:
		return 0, false
	}
}

// CheckSize panics if padding size samples on one side of a line of length n is not valid for mode:
// None requires size == 0; Periodic, Reflect and Reflect0 require size < n; Repeat requires a non-empty
// line if size > 0.
func CheckSize(mode Mode, size, n int) {
	if size < 0 {
		exceptions.Panicf("padding: negative padding size %d", size)
	}
	switch mode {
	case None:
		if size != 0 {
			exceptions.Panicf("padding: mode %s requires padding size 0, got %d", mode, size)
		}
	case Zero:
	case Repeat:
		if size > 0 && n == 0 {
			exceptions.Panicf("padding: mode %s requires a non-empty line", mode)
		}
	case Periodic, Reflect, Reflect0:
		if size > 0 && size >= n {
			exceptions.Panicf("padding: mode %s requires padding size (%d) smaller than the line length (%d)", mode, size, n)
		}
	default:
		exceptions.Panicf("padding: invalid mode %s", mode)
	}
}

// CopyWithPadding copies the 1-D view in to the middle of the 1-D view out, and fills leftSize samples
// before it and rightSize samples after it using leftMode and rightMode respectively.
//
// The length of out must be len(in)+leftSize+rightSize, the sizes must be valid for their modes
// (see CheckSize), and in and out must not overlap.
func CopyWithPadding[T any](in, out ndarray.View[T], leftMode Mode, leftSize int, rightMode Mode, rightSize int) {
	if in.Rank() != 1 || out.Rank() != 1 {
		exceptions.Panicf("padding.CopyWithPadding: lines must be 1-D, got shapes %s and %s", in.Shape(), out.Shape())
	}
	n := in.Dim(0)
	if out.Dim(0) != n+leftSize+rightSize {
		exceptions.Panicf("padding.CopyWithPadding: output length %d must be %d (input) + %d (left) + %d (right)",
			out.Dim(0), n, leftSize, rightSize)
	}
	CheckSize(leftMode, leftSize, n)
	CheckSize(rightMode, rightSize, n)
	if in.Overlaps(out) {
		exceptions.Panicf("padding.CopyWithPadding: input and output lines must not overlap")
	}

	inBuf, inPos := in.Data()
	inStride := in.Stride(0)
	outBuf, outPos := out.Data()
	outStride := out.Stride(0)
	var zero T
	for ii := range out.Dim(0) {
		src := ii - leftSize
		mode := leftMode
		if src >= n {
			mode = rightMode
		}
		value := zero
		if j, ok := Remap(mode, src, n); ok {
			value = inBuf[inPos+j*inStride]
		}
		outBuf[outPos+ii*outStride] = value
	}
}

// Pad returns a new 1-D Array with the contents of the line in padded as in CopyWithPadding.
func Pad[T any](in ndarray.View[T], leftMode Mode, leftSize int, rightMode Mode, rightSize int) *ndarray.Array[T] {
	if in.Rank() != 1 {
		exceptions.Panicf("padding.Pad: line must be 1-D, got shape %s", in.Shape())
	}
	out := ndarray.New[T](in.Dim(0) + leftSize + rightSize)
	CopyWithPadding(in, out.View, leftMode, leftSize, rightMode, rightSize)
	return out
}
