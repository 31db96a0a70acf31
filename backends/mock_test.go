package backends_test

import (
	"sync/atomic"

	"github.com/axonml/axon/backends"
)

// mockHooks is a scriptable backend used to exercise the registry and
// dispatcher without real hardware.
type mockHooks struct {
	device    backends.DeviceType
	name      string
	available bool
	caps      map[backends.Capability]bool

	alloc backends.Allocator
	gen   backends.Generator

	syncCalls atomic.Int64
	syncErr   error
}

var _ backends.Hooks = &mockHooks{}

func newMockHooks(device backends.DeviceType, available bool) *mockHooks {
	return &mockHooks{
		device:    device,
		name:      "mock-" + device.String(),
		available: available,
		alloc:     &mockAllocator{},
		gen:       &mockGenerator{},
	}
}

func (m *mockHooks) Name() string        { return m.name }
func (m *mockHooks) Description() string { return "mock backend for tests" }

func (m *mockHooks) IsAvailable() bool { return m.available }

func (m *mockHooks) HasCapability(c backends.Capability) bool { return m.caps[c] }

func (m *mockHooks) Allocator() backends.Allocator { return m.alloc }

func (m *mockHooks) DefaultGenerator() backends.Generator { return m.gen }

func (m *mockHooks) Synchronize() error {
	m.syncCalls.Add(1)
	if m.syncErr != nil {
		return &backends.DeviceError{Device: m.device, Err: m.syncErr}
	}
	return nil
}

// mockAllocator only needs identity; no test allocates through it.
type mockAllocator struct{}

func (*mockAllocator) Allocate(numBytes int) (*backends.Buffer, error) {
	return &backends.Buffer{Data: make([]byte, numBytes)}, nil
}
func (*mockAllocator) Free(*backends.Buffer)      {}
func (*mockAllocator) Stats() backends.AllocStats { return backends.AllocStats{} }

// mockGenerator counts up; deterministic and obviously not random.
type mockGenerator struct {
	seed uint64
	next uint64
}

func (g *mockGenerator) Seed() uint64        { return g.seed }
func (g *mockGenerator) SetSeed(seed uint64) { g.seed, g.next = seed, seed }
func (g *mockGenerator) Uint64() uint64      { g.next++; return g.next }
func (g *mockGenerator) Float64() float64    { return 0.5 }
func (g *mockGenerator) Normal() float64     { return 0 }

func (g *mockGenerator) Split() backends.Generator { return &mockGenerator{seed: g.seed + 1} }
