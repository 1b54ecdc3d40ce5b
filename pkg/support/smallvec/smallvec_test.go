// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package smallvec

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sink int

func TestPromotionAndDemotion(t *testing.T) {
	var v Vec[int]
	for i := range InlineCap {
		v.Append(i)
	}
	require.True(t, v.IsInline())
	require.Equal(t, InlineCap, v.Len())

	v.Append(InlineCap)
	require.False(t, v.IsInline())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, v.Values())

	v.Truncate(InlineCap)
	assert.True(t, v.IsInline(), "truncating to InlineCap should demote the Vec")
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, v.Values())

	v.Resize(10)
	assert.False(t, v.IsInline())
	assert.Equal(t, 0, v.At(9))
	v.Resize(2)
	assert.True(t, v.IsInline())
	assert.Equal(t, []int{0, 1}, v.Values())
}

func TestAllocations(t *testing.T) {
	inlineAllocs := testing.AllocsPerRun(100, func() {
		var v Vec[int]
		for i := range InlineCap {
			v.Append(i)
		}
		sink = v.At(-1)
	})
	promotedAllocs := testing.AllocsPerRun(100, func() {
		var v Vec[int]
		for i := range InlineCap + 1 {
			v.Append(i)
		}
		sink = v.At(-1)
	})
	// Promotion costs exactly one heap allocation.
	assert.Equal(t, inlineAllocs+1, promotedAllocs)

	// Growing up to 2*InlineCap after promotion doesn't allocate again.
	grownAllocs := testing.AllocsPerRun(100, func() {
		var v Vec[int]
		for i := range 2 * InlineCap {
			v.Append(i)
		}
		sink = v.At(-1)
	})
	assert.Equal(t, promotedAllocs, grownAllocs)
}

func TestValueSemantics(t *testing.T) {
	a := Of(1, 2, 3)
	b := a
	b.Set(0, 10)
	assert.Equal(t, 1, a.At(0), "inline copies must be independent")

	long := Of(1, 2, 3, 4, 5, 6, 7, 8)
	clone := long.Clone()
	clone.Set(0, 100)
	assert.Equal(t, 1, long.At(0))

	inserted := a.Insert(1, 7)
	assert.Equal(t, []int{1, 7, 2, 3}, inserted.Values())
	assert.Equal(t, []int{1, 2, 3}, a.Values())

	removed := long.Remove(7)
	assert.False(t, removed.IsInline())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, removed.Values())
	removed = removed.Remove(0)
	assert.True(t, removed.IsInline())
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7}, removed.Values())
	assert.Equal(t, 8, long.Len())
}

func TestPermuteAndEqual(t *testing.T) {
	v := Of("a", "b", "c")
	p := v.Permute([]int{2, 0, 1})
	assert.Equal(t, []string{"c", "a", "b"}, p.Values())
	assert.True(t, Equal(v, Of("a", "b", "c")))
	assert.False(t, Equal(v, p))
	assert.Equal(t, "[c a b]", p.String())
	require.Panics(t, func() { v.Permute([]int{0}) })
	require.Panics(t, func() { _ = v.At(3) })
	assert.Equal(t, "c", v.At(-1))
}

func TestFilled(t *testing.T) {
	v := Filled(8, 3)
	assert.Equal(t, 8, v.Len())
	for _, e := range v.All() {
		assert.Equal(t, 3, e)
	}
	dst := make([]int, 8)
	assert.Equal(t, 8, v.CopyTo(dst))
}

func TestPreconditionErrors(t *testing.T) {
	v := Of(1, 2, 3)
	for name, fn := range map[string]func(){
		"At":       func() { _ = v.At(5) },
		"Set":      func() { v.Set(-4, 0) },
		"Make":     func() { _ = Make[int](-1) },
		"Truncate": func() { v.Truncate(4) },
		"Insert":   func() { _ = v.Insert(4, 0) },
		"Remove":   func() { _ = v.Remove(3) },
		"Permute":  func() { _ = v.Permute([]int{0, 1}) },
	} {
		err := exceptions.TryCatch[error](fn)
		require.Errorf(t, err, "%s should panic with an error", name)
		assert.Contains(t, err.Error(), "smallvec."+name)
	}
}
