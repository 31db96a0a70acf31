package backends

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Allocator hands out device memory for one backend.
//
// The allocator is owned by its backend and lives for the whole process;
// callers borrow it through Hooks.Allocator and never finalize it.
// Implementations must be safe for concurrent use. Pooling, alignment and
// fragmentation strategy are the backend's concern.
type Allocator interface {
	// Allocate returns a buffer with room for at least numBytes bytes.
	// The buffer's contents are unspecified. numBytes must be > 0.
	Allocate(numBytes int) (*Buffer, error)

	// Free returns the buffer to the allocator. The buffer must not be
	// used afterwards. Free(nil) is a no-op.
	Free(b *Buffer)

	// Stats returns a snapshot of the allocator bookkeeping.
	Stats() AllocStats
}

// Buffer is a handle to one device allocation.
//
// For host-resident backends Data points at the storage itself. Device
// backends may leave Data nil and refer to device-side storage through
// Handle; how the handle is interpreted is private to the owning backend.
type Buffer struct {
	// Data is the host-visible storage, when there is one.
	Data []byte

	// Handle is an opaque backend-side reference.
	Handle uintptr

	// Device is the device type whose allocator owns this buffer.
	Device DeviceType
}

// NumBytes returns the usable size of the buffer.
func (b *Buffer) NumBytes() int {
	if b == nil {
		return 0
	}
	return len(b.Data)
}

// AllocStats is a snapshot of an allocator's counters.
type AllocStats struct {
	// InUseBytes is the total size of live allocations.
	InUseBytes int64

	// PeakBytes is the high-water mark of InUseBytes.
	PeakBytes int64

	// NumAllocs counts Allocate calls over the life of the process.
	NumAllocs int64

	// NumFrees counts Free calls over the life of the process.
	NumFrees int64
}

// String implements fmt.Stringer, with humanized sizes.
func (s AllocStats) String() string {
	return fmt.Sprintf("in-use=%s, peak=%s, allocs=%d, frees=%d",
		humanize.IBytes(uint64(s.InUseBytes)), humanize.IBytes(uint64(s.PeakBytes)),
		s.NumAllocs, s.NumFrees)
}
