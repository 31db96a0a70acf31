package backends

// Generator is a backend's random number generator.
//
// Each backend exposes one canonical shared generator through
// Hooks.DefaultGenerator, which carries the backend's reproducible-seed
// semantics: seeding the default generator with the same value yields the
// same stream on every run. The statistical algorithm behind the stream is
// the backend's concern.
//
// Implementations must be safe for concurrent use; callers wanting
// independent streams use Split instead of sharing one stream across
// goroutines.
type Generator interface {
	// Seed returns the seed the current stream was derived from.
	Seed() uint64

	// SetSeed resets the generator to a deterministic stream derived
	// from seed, discarding the current stream state.
	SetSeed(seed uint64)

	// Uint64 returns the next value of the stream.
	Uint64() uint64

	// Float64 returns the next value, uniformly distributed in [0, 1).
	Float64() float64

	// Normal returns the next value of a standard normal distribution
	// (mean 0, standard deviation 1).
	Normal() float64

	// Split returns a new generator that is independent of this one: the
	// same algorithm, different state. The receiver and the returned
	// generator may be used concurrently with each other.
	Split() Generator
}
