// Copyright 2025 The Axon Authors. SPDX-License-Identifier: Apache-2.0

// Package dtypes holds the DType enum of element types a backend can report
// support for, plus converters to and from Go native types.
//
// The enum is closed: it lists the types the runtime knows how to talk
// about, not the types any particular backend implements. Backends declare
// what they actually support through backends.Capabilities.DTypes.
package dtypes

import (
	"reflect"

	"github.com/axonml/axon/pkg/core/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// panicf panics with the formatted description.
//
// It is only used for "bugs in the code" -- when parameters don't follow
// the specifications. In principle, it should never happen, the same way
// nil-pointer panics should never happen.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

// DType is the element type of a buffer or scalar.
type DType int32

const (
	// InvalidDType is the zero value, to serve as default.
	InvalidDType DType = iota

	// Bool is a two-state predicate, stored one byte per element.
	Bool

	Int8
	Int16
	Int32
	Int64

	Uint8
	Uint16
	Uint32
	Uint64

	// Float16 is the IEEE 754 half-precision float, see github.com/x448/float16.
	Float16

	// BFloat16 is the truncated "brain float", see the bfloat16 subpackage.
	BFloat16

	Float32
	Float64

	Complex64
	Complex128
)

// Aliases closer to the short names used in ML literature.
const (
	F16  = Float16
	BF16 = BFloat16
	F32  = Float32
	F64  = Float64
)

var dtypeNames = map[DType]string{
	InvalidDType: "invalid",
	Bool:         "bool",
	Int8:         "int8",
	Int16:        "int16",
	Int32:        "int32",
	Int64:        "int64",
	Uint8:        "uint8",
	Uint16:       "uint16",
	Uint32:       "uint32",
	Uint64:       "uint64",
	Float16:      "float16",
	BFloat16:     "bfloat16",
	Float32:      "float32",
	Float64:      "float64",
	Complex64:    "complex64",
	Complex128:   "complex128",
}

// String implements fmt.Stringer.
func (dtype DType) String() string {
	if name, found := dtypeNames[dtype]; found {
		return name
	}
	return "invalid"
}

// Size returns the number of bytes one element of this dtype occupies.
// It panics on InvalidDType.
func (dtype DType) Size() int {
	switch dtype {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16, Float16, BFloat16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	}
	panicf("dtypes: Size of invalid dtype %d", int32(dtype))
	return 0
}

// IsFloat reports whether the dtype is a real float type, including the
// 16-bit variants.
func (dtype DType) IsFloat() bool {
	switch dtype {
	case Float16, BFloat16, Float32, Float64:
		return true
	}
	return false
}

// IsInt reports whether the dtype is a signed or unsigned integer type.
func (dtype DType) IsInt() bool {
	return dtype >= Int8 && dtype <= Uint64
}

// IsComplex reports whether the dtype is a complex number type.
func (dtype DType) IsComplex() bool {
	return dtype == Complex64 || dtype == Complex128
}

// Supported constrains the Go native types the runtime can map to a DType.
//
// float16.Float16 and bfloat16.BFloat16 stand in for the 16-bit floats, which
// have no native Go representation.
type Supported interface {
	bool | int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float16.Float16 | bfloat16.BFloat16 |
		float32 | float64 | complex64 | complex128
}

// FromGenericsType returns the DType for the given Go type parameter.
func FromGenericsType[T Supported]() DType {
	var t T
	return FromGoType(reflect.TypeOf(t))
}

var (
	goToDType = map[reflect.Type]DType{
		reflect.TypeOf(false):              Bool,
		reflect.TypeOf(int8(0)):            Int8,
		reflect.TypeOf(int16(0)):           Int16,
		reflect.TypeOf(int32(0)):           Int32,
		reflect.TypeOf(int64(0)):           Int64,
		reflect.TypeOf(uint8(0)):           Uint8,
		reflect.TypeOf(uint16(0)):          Uint16,
		reflect.TypeOf(uint32(0)):          Uint32,
		reflect.TypeOf(uint64(0)):          Uint64,
		reflect.TypeOf(float16.Float16(0)): Float16,
		reflect.TypeOf(bfloat16.BFloat16(0)):   BFloat16,
		reflect.TypeOf(float32(0)):         Float32,
		reflect.TypeOf(float64(0)):         Float64,
		reflect.TypeOf(complex64(0)):       Complex64,
		reflect.TypeOf(complex128(0)):      Complex128,
	}
	dtypeToGo map[DType]reflect.Type
)

func init() {
	dtypeToGo = make(map[DType]reflect.Type, len(goToDType))
	for goType, dtype := range goToDType {
		dtypeToGo[dtype] = goType
	}
}

// FromGoType returns the DType of the Go type, or InvalidDType if the
// runtime has no mapping for it.
func FromGoType(t reflect.Type) DType {
	return goToDType[t]
}

// GoType returns the reflect.Type of the Go representation of the dtype.
// It panics on InvalidDType.
func (dtype DType) GoType() reflect.Type {
	t, found := dtypeToGo[dtype]
	if !found {
		panicf("dtypes: GoType of invalid dtype %d", int32(dtype))
	}
	return t
}
