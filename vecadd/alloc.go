package vecadd

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// ElementBytes is the size of one array element.
const ElementBytes = 4

// ErrAllocation reports that a buffer could not be obtained.
var ErrAllocation = errors.New("vecadd: allocation failed")

// Allocator hands out the benchmark's buffers and takes them back.
type Allocator interface {
	Alloc(n int) ([]int32, error)
	Release(buf []int32)
}

// HeapAllocator allocates from the Go heap. A positive Limit caps the
// bytes outstanding at any time. The zero value has no cap.
//
// The runtime aborts the process when the heap cannot grow, so a Limit at
// or below the free memory is the only way to see ErrAllocation for a
// request the address space could otherwise hold.
type HeapAllocator struct {
	Limit int64

	mu    sync.Mutex
	inUse int64
}

// Alloc returns a zeroed buffer of n elements.
func (h *HeapAllocator) Alloc(n int) (buf []int32, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrAllocation, n)
	}
	if int64(n) > math.MaxInt64/ElementBytes {
		return nil, fmt.Errorf("%w: length %d overflows the byte count", ErrAllocation, n)
	}
	size := int64(n) * ElementBytes

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.Limit > 0 && h.inUse+size > h.Limit {
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use",
			ErrAllocation, size, h.inUse, h.Limit)
	}

	// makeslice panics with a runtime error when the length is too large
	// for the address space.
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	buf = make([]int32, n)
	h.inUse += size
	return buf, nil
}

// Release returns buf's bytes to the budget. Nil buffers are ignored.
func (h *HeapAllocator) Release(buf []int32) {
	if buf == nil {
		return
	}
	h.mu.Lock()
	h.inUse -= int64(cap(buf)) * ElementBytes
	h.mu.Unlock()
}

// InUse returns the bytes currently handed out.
func (h *HeapAllocator) InUse() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.inUse
}
