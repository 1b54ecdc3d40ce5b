// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFromGenericsType(t *testing.T) {
	assert.Equal(t, Float32, FromGenericsType[float32]())
	assert.Equal(t, Float64, FromGenericsType[float64]())
	assert.Equal(t, Float16, FromGenericsType[float16.Float16]())
	assert.Equal(t, Uint8, FromGenericsType[uint8]())
	assert.Equal(t, Bool, FromGenericsType[bool]())
	assert.Equal(t, InvalidDType, FromGenericsType[[3]float32]())
	assert.Equal(t, InvalidDType, FromGenericsType[string]())
	assert.Equal(t, InvalidDType, FromGoType(nil))
}

func TestIsFloat(t *testing.T) {
	assert.True(t, Float16.IsFloat())
	assert.True(t, Float64.IsFloat())
	assert.False(t, Complex64.IsFloat())
	assert.False(t, Int32.IsFloat())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Float32", Float32.String())
	assert.Equal(t, "InvalidDType", InvalidDType.String())
	assert.Equal(t, "DType(99)", DType(99).String())

	dtype, err := DTypeString("uint16")
	require.NoError(t, err)
	assert.Equal(t, Uint16, dtype)
	_, err = DTypeString("Float8")
	require.Error(t, err)
	assert.Len(t, DTypeValues(), int(Complex128)+1)
}
