// Package backends defines the seam between the Axon runtime core and its
// accelerator backends.
//
// The runtime core never links against CUDA, Metal or any other
// device-specific library. Instead, each backend package registers a factory
// for its Hooks implementation during initialization (usually from an init
// function, triggered by an underscore-import), and the rest of the runtime
// reaches the device exclusively through HooksFor. A backend that was not
// compiled in behaves exactly like a backend whose hardware is absent:
// HooksFor returns a stub whose IsAvailable returns false.
//
// Import github.com/axonml/axon/backends/default to link in the default set
// of backends.
//
// Following the rest of the runtime, violations of a programming contract
// panic with a stack trace (see github.com/gomlx/exceptions); expected
// runtime failures are returned as errors.
package backends

// Hooks is the capability surface a backend exposes to the runtime core.
//
// One Hooks instance exists per DeviceType for the lifetime of the process:
// it is constructed lazily by HooksFor on first use and shared by every
// caller from then on. Implementations must be safe for concurrent use.
type Hooks interface {
	// Name returns the short name of the backend. E.g.: "cpu".
	Name() string

	// Description is a longer description of the backend that can be used to pretty-print.
	Description() string

	// IsAvailable reports whether the backend can be used on the current
	// host: hardware present, drivers loaded, OS recent enough. It is
	// side-effect-free, safe to call before any other method, and never
	// panics -- absent hardware is an ordinary false, not an error.
	IsAvailable() bool

	// HasCapability reports whether the backend supports the optional
	// feature c. It may be called regardless of IsAvailable and returns
	// false, rather than failing, when the backend is absent entirely.
	HasCapability(c Capability) bool

	// Allocator returns the backend's device-memory allocator. The
	// allocator is owned by the backend and lives for the whole process.
	//
	// Calling Allocator when IsAvailable is false is a programming
	// error: callers must check availability first. The stub panics with
	// a stack trace; concrete backends document their own behavior.
	Allocator() Allocator

	// DefaultGenerator returns the backend's canonical shared random
	// number generator, the one that carries the backend's
	// reproducible-seed semantics. It is owned by the backend and
	// identity-stable for the process. Same availability precondition as
	// Allocator.
	DefaultGenerator() Generator

	// Synchronize blocks the calling thread until all previously issued
	// asynchronous device work has completed. It returns a *DeviceError
	// if any of that work failed -- a device fault is never swallowed.
	// Backends with no asynchronous work model return immediately.
	Synchronize() error
}

// Factory constructs the Hooks implementation for one backend.
//
// HooksFor invokes it at most once per process; the factory must return a
// fully constructed, ready-to-use instance.
type Factory func() Hooks
