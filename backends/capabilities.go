package backends

import (
	"maps"

	"github.com/axonml/axon/pkg/core/dtypes"
)

// Capability enumerates the optional features a backend may support, gated
// behind Hooks.HasCapability. Typical gates are a minimum driver or OS
// version; the probe itself is the backend's concern.
type Capability uint8

//go:generate go tool enumer -type=Capability -trimprefix=Capability -transform=snake -output=gen_capability_enumer.go capabilities.go

const (
	// CapabilityAsyncExecution means the backend queues device work
	// asynchronously, so Synchronize may actually have to wait.
	CapabilityAsyncExecution Capability = iota

	// CapabilityUnifiedMemory means device allocations are host-addressable.
	CapabilityUnifiedMemory

	// CapabilityPinnedMemory means the allocator can pin host memory for
	// faster host/device transfers.
	CapabilityPinnedMemory

	// CapabilityFloat16 means native IEEE 16-bit float support.
	CapabilityFloat16

	// CapabilityBfloat16 means native bfloat16 support.
	CapabilityBfloat16
)

// Capabilities holds mappings of what is supported by a backend.
//
// Backends typically keep one package-level Capabilities value and serve
// HasCapability from it. The stub reports nothing supported.
type Capabilities struct {
	// Features supported by a backend.
	// If not listed, it's assumed to be false, hence not supported.
	Features map[Capability]bool

	// DTypes lists the data types a backend can allocate and generate.
	// If not listed, it's assumed to be false, hence not supported.
	DTypes map[dtypes.DType]bool
}

// Clone makes a deep copy of the Capabilities.
func (c Capabilities) Clone() Capabilities {
	var c2 Capabilities
	c2.Features = make(map[Capability]bool, len(c.Features))
	maps.Copy(c2.Features, c.Features)
	c2.DTypes = make(map[dtypes.DType]bool, len(c.DTypes))
	maps.Copy(c2.DTypes, c.DTypes)
	return c2
}

// Has reports whether the feature flag is supported.
func (c Capabilities) Has(flag Capability) bool {
	return c.Features[flag]
}

// SupportsDType reports whether the data type is supported.
func (c Capabilities) SupportsDType(dtype dtypes.DType) bool {
	return c.DTypes[dtype]
}
