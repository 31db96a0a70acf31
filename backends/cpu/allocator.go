package cpu

import (
	"math/bits"
	"sync"
	"sync/atomic"

	"github.com/axonml/axon/backends"
	"github.com/pkg/errors"
)

const (
	// minBucketBytes is the smallest pooled allocation.
	minBucketBytes = 64

	// maxPoolBytes caps what goes back into the pools; anything larger is
	// handed to the garbage collector on Free.
	maxPoolBytes = 1 << 20
)

// hostAllocator serves host memory in power-of-two buckets backed by
// sync.Pools, so short-lived buffers of the same size class are recycled
// instead of re-allocated.
type hostAllocator struct {
	// pools maps bucket size (int) to *sync.Pool of []byte.
	pools sync.Map

	inUse  atomic.Int64
	peak   atomic.Int64
	allocs atomic.Int64
	frees  atomic.Int64
}

// Compile-time check that hostAllocator implements backends.Allocator.
var _ backends.Allocator = &hostAllocator{}

func newHostAllocator() *hostAllocator {
	return &hostAllocator{}
}

// bucketFor returns the pooled size class for a request: the next power of
// two, at least minBucketBytes.
func bucketFor(numBytes int) int {
	if numBytes <= minBucketBytes {
		return minBucketBytes
	}
	return 1 << bits.Len(uint(numBytes-1))
}

// Allocate returns a buffer with room for numBytes bytes. The contents are
// unspecified -- recycled buffers keep whatever was written to them before.
func (a *hostAllocator) Allocate(numBytes int) (*backends.Buffer, error) {
	if numBytes <= 0 {
		return nil, errors.Errorf("cpu allocator: invalid allocation size %d", numBytes)
	}

	var data []byte
	if bucket := bucketFor(numBytes); bucket <= maxPoolBytes {
		pool := a.poolFor(bucket)
		if recycled := pool.Get(); recycled != nil {
			data = recycled.([]byte)
		} else {
			data = make([]byte, bucket)
		}
		data = data[:numBytes]
	} else {
		data = make([]byte, numBytes)
	}

	a.allocs.Add(1)
	a.recordInUse(int64(cap(data)))
	return &backends.Buffer{Data: data, Device: backends.CPU}, nil
}

// Free returns the buffer's storage to its size-class pool. Free(nil) and
// freeing an already freed buffer are no-ops.
func (a *hostAllocator) Free(b *backends.Buffer) {
	if b == nil || b.Data == nil {
		return
	}
	data := b.Data[:cap(b.Data)]
	b.Data = nil

	a.frees.Add(1)
	a.inUse.Add(-int64(cap(data)))
	if cap(data) <= maxPoolBytes && cap(data) == bucketFor(cap(data)) {
		a.poolFor(cap(data)).Put(data) //nolint:staticcheck // []byte, not a pointer, is what we pool.
	}
}

// Stats returns a snapshot of the allocator counters.
func (a *hostAllocator) Stats() backends.AllocStats {
	return backends.AllocStats{
		InUseBytes: a.inUse.Load(),
		PeakBytes:  a.peak.Load(),
		NumAllocs:  a.allocs.Load(),
		NumFrees:   a.frees.Load(),
	}
}

func (a *hostAllocator) poolFor(bucket int) *sync.Pool {
	if p, found := a.pools.Load(bucket); found {
		return p.(*sync.Pool)
	}
	p, _ := a.pools.LoadOrStore(bucket, &sync.Pool{})
	return p.(*sync.Pool)
}

func (a *hostAllocator) recordInUse(delta int64) {
	inUse := a.inUse.Add(delta)
	for {
		peak := a.peak.Load()
		if inUse <= peak || a.peak.CompareAndSwap(peak, inUse) {
			return
		}
	}
}
