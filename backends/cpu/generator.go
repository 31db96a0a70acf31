package cpu

import (
	"math/rand/v2"
	"sync"

	"github.com/axonml/axon/backends"
)

// generator implements backends.Generator on top of the standard PCG
// stream, guarded by a mutex so the shared default generator is safe for
// concurrent use. Split derives deterministic child seeds, so a seeded
// parent yields the same family of streams on every run.
type generator struct {
	mu sync.Mutex

	seed   uint64
	splits uint64
	rng    *rand.Rand
}

// Compile-time check that generator implements backends.Generator.
var _ backends.Generator = &generator{}

func newGenerator(seed uint64) *generator {
	g := &generator{}
	g.reset(seed)
	return g
}

func (g *generator) reset(seed uint64) {
	g.seed = seed
	g.splits = 0
	g.rng = rand.New(rand.NewPCG(seed, splitmix64(seed)))
}

// Seed returns the seed the current stream was derived from.
func (g *generator) Seed() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seed
}

// SetSeed resets the generator to a deterministic stream derived from seed.
func (g *generator) SetSeed(seed uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset(seed)
}

// Uint64 returns the next value of the stream.
func (g *generator) Uint64() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Uint64()
}

// Float64 returns the next value, uniformly distributed in [0, 1).
func (g *generator) Float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

// Normal returns the next value of a standard normal distribution.
func (g *generator) Normal() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.NormFloat64()
}

// Split returns a new, independent generator. The child's seed is derived
// from the parent's seed and split count, not from the parent's stream, so
// splitting does not perturb the parent's sequence.
func (g *generator) Split() backends.Generator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.splits++
	return newGenerator(splitmix64(g.seed + g.splits))
}

// splitmix64 is the usual 64-bit mixer, here to derive stream and child
// seeds that don't correlate with the original seed.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
