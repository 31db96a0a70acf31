package backends

// DeviceType identifies one of the accelerator backends the runtime can
// dispatch to.
//
// The set is closed and known at compile time: backends are statically wired
// into a binary by importing their package (e.g.
// import _ "github.com/axonml/axon/backends/cpu"), never discovered or
// loaded dynamically. DeviceTypeString exists for the AXON_BACKEND
// environment variable only; device types are not meant to be parsed from
// untrusted input.
type DeviceType uint8

//go:generate go tool enumer -type=DeviceType -transform=lower -output=gen_devicetype_enumer.go devicetype.go

const (
	// CPU is the portable host backend. It is always available when
	// compiled in and serves as the fallback for every other device.
	CPU DeviceType = iota

	// CUDA is the NVidia GPU backend.
	CUDA

	// Metal is the Apple GPU backend.
	Metal

	// WebGPU is the portable GPU backend on top of WebGPU/wgpu.
	WebGPU
)

// numDeviceTypes bounds the closed DeviceType set. The registry tables are
// arrays indexed by DeviceType.
const numDeviceTypes = int(WebGPU) + 1
