//go:build cuda

// Package cuda wires the CUDA device into the backends registry.
//
// Built with the "cuda" tag it registers a stub: the device type becomes
// known to the runtime, but IsAvailable reports false until real driver
// bindings back it. Without the tag the package is empty and nothing is
// registered, which to callers looks exactly the same through the
// backends stub.
package cuda

import (
	"github.com/axonml/axon/backends"
	"github.com/gomlx/exceptions"
)

func init() {
	backends.Register(backends.CUDA, New)
}

// New constructs the CUDA backend hooks.
func New() backends.Hooks {
	return &Backend{}
}

// Backend is the stub CUDA implementation of backends.Hooks.
type Backend struct{}

var _ backends.Hooks = &Backend{}

func (b *Backend) Name() string { return "cuda" }

func (b *Backend) Description() string {
	return "CUDA backend stub -- registered, but without device bindings"
}

// IsAvailable reports false: the stub has no driver bindings.
func (b *Backend) IsAvailable() bool { return false }

func (b *Backend) HasCapability(backends.Capability) bool { return false }

// Allocator panics: the CUDA device is not available. Check IsAvailable first.
func (b *Backend) Allocator() backends.Allocator {
	exceptions.Panicf("cuda backend is not available on this host -- check IsAvailable first")
	return nil
}

// DefaultGenerator panics: the CUDA device is not available. Check IsAvailable first.
func (b *Backend) DefaultGenerator() backends.Generator {
	exceptions.Panicf("cuda backend is not available on this host -- check IsAvailable first")
	return nil
}

func (b *Backend) Synchronize() error { return nil }
