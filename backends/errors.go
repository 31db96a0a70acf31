package backends

import "fmt"

// DeviceError reports that previously issued asynchronous device work
// failed. It is returned by Hooks.Synchronize, wrapping the backend's
// underlying error.
//
// It is the one error class of this package a caller is expected to recover
// from: abandon the computation that was in flight, report it, and carry on.
type DeviceError struct {
	// Device is the backend whose work failed.
	Device DeviceType

	// Err is the underlying backend error.
	Err error
}

// Error implements the error interface.
func (e *DeviceError) Error() string {
	return fmt.Sprintf("device %q: %v", e.Device, e.Err)
}

// Unwrap returns the underlying backend error.
func (e *DeviceError) Unwrap() error {
	return e.Err
}
