package backends

import "github.com/gomlx/exceptions"

// theStub is the single process-wide stub instance, shared by every
// unregistered device type.
var theStub Hooks = stubHooks{}

// stubHooks is what HooksFor hands out when no backend is registered for a
// device type. It is stateless and immortal: IsAvailable and HasCapability
// always report false and Synchronize returns immediately, so "backend not
// compiled in" and "hardware absent" are indistinguishable to callers.
//
// Allocator and DefaultGenerator panic: calling them without having checked
// IsAvailable is a programming error, and the stub has nothing meaningful
// to return.
type stubHooks struct{}

func (stubHooks) Name() string { return "stub" }

func (stubHooks) Description() string {
	return "Stub backend, used when no real backend is registered for a device"
}

// IsAvailable always reports false.
func (stubHooks) IsAvailable() bool { return false }

// HasCapability always reports false.
func (stubHooks) HasCapability(Capability) bool { return false }

// Allocator panics: the stub has no device memory. Check IsAvailable first.
func (stubHooks) Allocator() Allocator {
	exceptions.Panicf("backend not available: Allocator called on the stub backend -- check IsAvailable first")
	return nil
}

// DefaultGenerator panics: the stub has no generator. Check IsAvailable first.
func (stubHooks) DefaultGenerator() Generator {
	exceptions.Panicf("backend not available: DefaultGenerator called on the stub backend -- check IsAvailable first")
	return nil
}

// Synchronize is a no-op: the stub never has outstanding device work.
func (stubHooks) Synchronize() error { return nil }
