// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dtypes classifies the Go element types that arrays can hold.
//
// It includes converters from Go native types to the DType enum, and constraint
// interfaces to be used with generics (NumberNotComplex, GoFloat).
//
// Go float16 support uses the github.com/x448/float16 implementation.
package dtypes

import (
	"reflect"
	"strconv"

	"github.com/gomlx/exceptions"
	"github.com/x448/float16"
)

// DType enumerates the element types known to this package.
//
// Element types not in the list (e.g., vector-valued elements like [3]float32) have DType InvalidDType,
// but can still be stored in arrays.
type DType int32

//go:generate go tool enumer -type=DType -output=gen_dtype_enumer.go dtypes.go

const (
	InvalidDType DType = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float16
	Float32
	Float64
	Complex64
	Complex128
)

// NumberNotComplex represents the Go numeric types corresponding to supported DType's.
// Used as a Generics constraint.
type NumberNotComplex interface {
	float32 | float64 | int | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// GoFloat represent a continuous Go numeric type.
// It doesn't include complex numbers.
type GoFloat interface {
	~float32 | ~float64
}

var float16Type = reflect.TypeOf(float16.Float16(0))

// FromGenericsType returns the DType enum for the given type, or InvalidDType if the type has no DType.
func FromGenericsType[T any]() DType {
	return FromGoType(reflect.TypeFor[T]())
}

// FromGoType returns the DType for the given "reflect.Type", or InvalidDType.
func FromGoType(t reflect.Type) DType {
	if t == nil {
		return InvalidDType
	}
	if t == float16Type {
		return Float16
	}
	switch t.Kind() {
	case reflect.Int:
		switch strconv.IntSize {
		case 32:
			return Int32
		case 64:
			return Int64
		default:
			exceptions.Panicf("cannot use int of %d bits -- try using int32 or int64", strconv.IntSize)
		}
	case reflect.Int64:
		return Int64
	case reflect.Int32:
		return Int32
	case reflect.Int16:
		return Int16
	case reflect.Int8:
		return Int8
	case reflect.Uint64:
		return Uint64
	case reflect.Uint32:
		return Uint32
	case reflect.Uint16:
		return Uint16
	case reflect.Uint8:
		return Uint8
	case reflect.Bool:
		return Bool
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Complex64:
		return Complex64
	case reflect.Complex128:
		return Complex128
	}
	return InvalidDType
}

// IsFloat returns whether dtype is a supported float -- float types not yet supported will return false.
// It returns false for complex numbers.
func (dtype DType) IsFloat() bool {
	return dtype == Float32 || dtype == Float64 || dtype == Float16
}
