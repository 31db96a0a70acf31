//go:build !cuda

// Package cuda wires the CUDA device into the backends registry.
// This file is a no-op without the "cuda" build tag: the backend is not
// registered and the device resolves to the backends stub.
package cuda
