package backends

import (
	"sync"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// The registry has a two-phase life: an initialization phase, where backend
// packages call Register from their init functions while the process is
// still single-threaded, and a steady-state phase where any goroutine may
// call HooksFor. All registration must happen-before the first HooksFor
// call; the per-device sync.Once below resolves racing first uses to one
// constructed instance, it does not make Register itself callable
// concurrently with lookups.
//
// The tables are arrays indexed by DeviceType, so the first use of one
// device never contends with lookups of another.
var (
	factories [numDeviceTypes]Factory
	hooksOnce [numDeviceTypes]sync.Once
	hooks     [numDeviceTypes]Hooks
)

// Register installs the factory that builds the Hooks for the given device
// type. Call it during package initialization, before any other goroutine
// can reach HooksFor.
//
// Registering the same device type twice is a configuration error and
// panics: two backends linked into one binary claiming the same device
// would otherwise silently shadow one another.
func Register(device DeviceType, factory Factory) {
	if !device.IsADeviceType() {
		exceptions.Panicf("backends.Register: invalid device type %d", device)
	}
	if factory == nil {
		exceptions.Panicf("backends.Register: nil factory for device %q", device)
	}
	if factories[device] != nil {
		exceptions.Panicf("backends.Register: a backend for device %q is already registered", device)
	}
	factories[device] = factory
	klog.V(1).Infof("backends: registered %q backend", device)
}

// IsRegistered reports whether a backend was compiled in and registered for
// the device type. Registered does not mean usable: check
// HooksFor(device).IsAvailable() for that.
func IsRegistered(device DeviceType) bool {
	return device.IsADeviceType() && factories[device] != nil
}

// HooksFor returns the Hooks for the device type, constructing them on
// first use. Every call for the same device type -- from any goroutine --
// returns the same instance for the remainder of the process.
//
// If no backend is registered for the device type it returns a stub whose
// IsAvailable always reports false, so generic runtime code never needs to
// distinguish "not compiled in" from "hardware absent".
func HooksFor(device DeviceType) Hooks {
	if !device.IsADeviceType() {
		exceptions.Panicf("backends.HooksFor: invalid device type %d", device)
	}
	hooksOnce[device].Do(func() {
		factory := factories[device]
		if factory == nil {
			klog.V(1).Infof("backends: no %q backend registered, using the stub", device)
			hooks[device] = theStub
			return
		}
		hooks[device] = factory()
		klog.V(1).Infof("backends: constructed %q backend hooks", device)
	})
	return hooks[device]
}

// IsAvailable reports whether a backend for the device type is registered
// and usable on the current host.
func IsAvailable(device DeviceType) bool {
	return HooksFor(device).IsAvailable()
}
