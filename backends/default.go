package backends

import (
	"os"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// EnvBackend is the environment variable that picks the default backend.
//
// Its value is a device type name, e.g. "cpu" or "cuda" -- see
// DeviceTypeStrings for the full list.
const EnvBackend = "AXON_BACKEND"

// DefaultPriority is the order in which device types are probed by Default
// when AXON_BACKEND is not set. Accelerators come first, the host CPU is
// the fallback.
var DefaultPriority = []DeviceType{CUDA, Metal, WebGPU, CPU}

// Default returns the hooks of the preferred backend:
//
//  1. The device type named by AXON_BACKEND, if the variable is set. An
//     unknown name panics: it is a configuration error.
//  2. Otherwise, the first device in DefaultPriority that is registered and
//     available.
//  3. Otherwise the stub, so the caller still gets a truthful
//     IsAvailable() == false instead of a failure.
func Default() Hooks {
	if name, found := os.LookupEnv(EnvBackend); found {
		device, err := DeviceTypeString(name)
		if err != nil {
			exceptions.Panicf("backends.Default: %s=%q is not a known device type (valid values: %v)",
				EnvBackend, name, DeviceTypeStrings())
		}
		return HooksFor(device)
	}
	for _, device := range DefaultPriority {
		h := HooksFor(device)
		if h.IsAvailable() {
			return h
		}
	}
	klog.Warningf("backends: no registered backend is available on this host, using the stub -- "+
		"maybe import the default set with import _ %q?", "github.com/axonml/axon/backends/default")
	return theStub
}
