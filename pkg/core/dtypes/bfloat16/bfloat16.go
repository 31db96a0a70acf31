// Package bfloat16 is a minimal implementation of the bfloat16 type, the
// 16-bit companion of github.com/x448/float16 for the backends that prefer
// the wider-exponent format.
//
// bfloat16 is the 32-bit IEEE 754 single-precision format truncated to its
// top 16 bits: same exponent range, 8 bits of mantissa. Conversion to and
// from float32 is therefore a bit shift.
package bfloat16

import (
	"math"
	"strconv"
)

// BFloat16 is a bfloat16 ("brain float") value, stored as its raw 16 bits.
type BFloat16 uint16

// Float32 converts to a float32. The conversion is exact.
func (f BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(f) << 16)
}

// Float64 converts to a float64. The conversion is exact.
func (f BFloat16) Float64() float64 {
	return float64(f.Float32())
}

// Bits returns the raw 16-bit representation.
func (f BFloat16) Bits() uint16 {
	return uint16(f)
}

// String implements fmt.Stringer.
func (f BFloat16) String() string {
	return strconv.FormatFloat(f.Float64(), 'g', -1, 32)
}

// FromFloat32 converts a float32 to a BFloat16, truncating the mantissa.
func FromFloat32(x float32) BFloat16 {
	return BFloat16(math.Float32bits(x) >> 16)
}

// FromFloat64 converts a float64 to a BFloat16 via float32.
func FromFloat64(x float64) BFloat16 {
	return FromFloat32(float32(x))
}

// FromBits converts raw bits to a BFloat16.
func FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}
