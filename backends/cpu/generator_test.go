package cpu_test

import (
	"testing"

	"github.com/axonml/axon/backends"
	"github.com/axonml/axon/backends/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T) backends.Generator {
	t.Helper()
	return cpu.New().(*cpu.Backend).DefaultGenerator()
}

func drawUint64(g backends.Generator, n int) []uint64 {
	values := make([]uint64, n)
	for i := range values {
		values[i] = g.Uint64()
	}
	return values
}

func TestGeneratorSeedDeterminism(t *testing.T) {
	g := newGenerator(t)

	g.SetSeed(42)
	require.EqualValues(t, 42, g.Seed())
	first := drawUint64(g, 8)

	g.SetSeed(42)
	assert.Equal(t, first, drawUint64(g, 8), "same seed, same stream")

	g.SetSeed(43)
	assert.NotEqual(t, first, drawUint64(g, 8), "different seed, different stream")
}

func TestGeneratorRanges(t *testing.T) {
	g := newGenerator(t)
	g.SetSeed(7)
	for range 1000 {
		v := g.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
	// Normal draws with mean 0 must change sign eventually.
	sawNegative, sawPositive := false, false
	for range 1000 {
		if v := g.Normal(); v < 0 {
			sawNegative = true
		} else if v > 0 {
			sawPositive = true
		}
	}
	assert.True(t, sawNegative && sawPositive)
}

func TestGeneratorSplit(t *testing.T) {
	g := newGenerator(t)
	g.SetSeed(7)
	child1 := g.Split()
	child2 := g.Split()

	// Children are deterministic functions of the parent seed and split
	// order, and independent of one another.
	c1 := drawUint64(child1, 4)
	c2 := drawUint64(child2, 4)
	assert.NotEqual(t, c1, c2)

	g.SetSeed(7)
	assert.Equal(t, c1, drawUint64(g.Split(), 4))
	assert.Equal(t, c2, drawUint64(g.Split(), 4))

	// Splitting does not perturb the parent stream.
	g.SetSeed(9)
	direct := drawUint64(g, 4)
	g.SetSeed(9)
	_ = g.Split()
	assert.Equal(t, direct, drawUint64(g, 4))
}

func TestCPUCapabilitiesTable(t *testing.T) {
	assert.True(t, cpu.Capabilities.Has(backends.CapabilityAsyncExecution))
	assert.False(t, cpu.Capabilities.Has(backends.CapabilityPinnedMemory))
}
