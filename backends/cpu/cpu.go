// Package cpu implements the host (CPU) backend for the Axon runtime.
//
// It is the portable fallback: always available, host memory, work executed
// by a small pool of goroutines. Import it for side effects to register it:
//
//	import _ "github.com/axonml/axon/backends/cpu"
package cpu

import (
	"runtime"
	"sync"
	"time"

	"github.com/axonml/axon/backends"
	"github.com/axonml/axon/pkg/support/xsync"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Registers New as the constructor for the CPU device.
func init() {
	backends.Register(backends.CPU, New)
}

// New constructs the CPU backend hooks.
//
// It is invoked (once) by backends.HooksFor; tests that want a private
// instance with its own allocator and task queue can call it directly.
func New() backends.Hooks {
	return &Backend{
		alloc:   newHostAllocator(),
		pending: xsync.NewPendingGroup(),
	}
}

// Backend implements backends.Hooks on the host.
type Backend struct {
	alloc   *hostAllocator
	pending *xsync.PendingGroup

	genOnce sync.Once
	gen     *generator

	workersOnce sync.Once
	tasks       chan func() error
}

// Compile-time check that cpu.Backend implements backends.Hooks.
var _ backends.Hooks = &Backend{}

// Name returns the short name of the backend.
func (b *Backend) Name() string { return "cpu" }

// Description is a longer description of the backend that can be used to pretty-print.
func (b *Backend) Description() string {
	return "Host (CPU) backend -- portable fallback, always available"
}

// IsAvailable always reports true: the host is always there.
func (b *Backend) IsAvailable() bool { return true }

// HasCapability reports the flags in Capabilities.
func (b *Backend) HasCapability(c backends.Capability) bool {
	return Capabilities.Has(c)
}

// Allocator returns the backend's host allocator.
func (b *Backend) Allocator() backends.Allocator {
	return b.alloc
}

// DefaultGenerator returns the backend's canonical shared generator,
// created on first use with a time-derived seed. Call SetSeed on it for
// reproducible runs.
func (b *Backend) DefaultGenerator() backends.Generator {
	b.genOnce.Do(func() {
		b.gen = newGenerator(uint64(time.Now().UnixNano()))
	})
	return b.gen
}

// Run schedules fn on the backend's worker pool. It returns as soon as the
// task is queued; completion (and failure) is observed through Synchronize.
func (b *Backend) Run(fn func() error) {
	b.workersOnce.Do(b.startWorkers)
	b.pending.Add(1)
	b.tasks <- fn
}

// Synchronize blocks until every task scheduled with Run has completed. If
// any of them failed, it returns the first failure wrapped in a
// *backends.DeviceError; the failure is reported once, a following
// Synchronize returns nil.
func (b *Backend) Synchronize() error {
	if err := b.pending.Wait(); err != nil {
		return &backends.DeviceError{Device: backends.CPU, Err: err}
	}
	return nil
}

func (b *Backend) startWorkers() {
	b.tasks = make(chan func() error, 128)
	for range runtime.GOMAXPROCS(0) {
		go func() {
			for fn := range b.tasks {
				if err := runTask(fn); err != nil {
					b.pending.Fail(errors.WithMessage(err, "cpu backend task"))
				} else {
					b.pending.Done()
				}
			}
		}()
	}
}

// runTask converts a panicking task into a failed one, so a panic in device
// work surfaces through Synchronize instead of killing a worker.
func runTask(fn func() error) (err error) {
	exception := exceptions.Try(func() {
		err = fn()
	})
	if exception != nil {
		err = errors.Errorf("task panicked: %v", exception)
	}
	return
}
