package cpu

import (
	"github.com/axonml/axon/backends"
	"github.com/axonml/axon/pkg/core/dtypes"
)

// Capabilities describes what the CPU backend supports.
//
// Host memory is by definition unified, the worker pool gives it an
// asynchronous work model, and every dtype the runtime knows is supported
// in software. Pinning is meaningless on the host, so it is not claimed.
var Capabilities = backends.Capabilities{
	Features: map[backends.Capability]bool{
		backends.CapabilityAsyncExecution: true,
		backends.CapabilityUnifiedMemory:  true,
		backends.CapabilityFloat16:        true,
		backends.CapabilityBfloat16:       true,
	},
	DTypes: map[dtypes.DType]bool{
		dtypes.Bool:       true,
		dtypes.Int8:       true,
		dtypes.Int16:      true,
		dtypes.Int32:      true,
		dtypes.Int64:      true,
		dtypes.Uint8:      true,
		dtypes.Uint16:     true,
		dtypes.Uint32:     true,
		dtypes.Uint64:     true,
		dtypes.Float16:    true,
		dtypes.BFloat16:   true,
		dtypes.Float32:    true,
		dtypes.Float64:    true,
		dtypes.Complex64:  true,
		dtypes.Complex128: true,
	},
}
