package bfloat16_test

import (
	"testing"

	"github.com/axonml/axon/pkg/core/dtypes/bfloat16"
	"github.com/stretchr/testify/assert"
)

func TestExactRoundTrips(t *testing.T) {
	// Values whose mantissa fits in 8 bits survive the round trip exactly.
	for _, v := range []float32{0, 1, -1, 0.5, -2.5, 1.00390625, 65536} {
		assert.Equal(t, v, bfloat16.FromFloat32(v).Float32(), "value %g", v)
	}
}

func TestTruncation(t *testing.T) {
	// 1 + 2^-9 needs 9 mantissa bits; bfloat16 keeps 8 and truncates to 1.
	v := float32(1) + 1.0/512
	assert.Equal(t, float32(1), bfloat16.FromFloat32(v).Float32())
}

func TestBits(t *testing.T) {
	one := bfloat16.FromFloat32(1)
	assert.Equal(t, uint16(0x3F80), one.Bits())
	assert.Equal(t, one, bfloat16.FromBits(0x3F80))
}

func TestStringAndFloat64(t *testing.T) {
	assert.Equal(t, "1.5", bfloat16.FromFloat64(1.5).String())
	assert.Equal(t, -2.5, bfloat16.FromFloat64(-2.5).Float64())
}
