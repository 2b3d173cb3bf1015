package rawbuf

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/dynvec/internal/debug"
	"github.com/hupe1980/dynvec/internal/mmap"
)

var (
	// ErrInvalidCapacity is returned when a negative capacity is requested.
	ErrInvalidCapacity = errors.New("rawbuf: capacity must not be negative")
	// ErrSizeOverflow is returned when capacity*sizeof(T) exceeds the addressable range.
	ErrSizeOverflow = errors.New("rawbuf: capacity exceeds addressable size")
)

// Buffer owns raw storage for up to Cap() elements of type T. No slot is
// assumed to hold a constructed value.
//
// A Buffer must not be duplicated; transfer ownership with Move or Swap.
// The zero Buffer is a valid null buffer with capacity 0.
type Buffer[T any] struct {
	data    []T           // len == Cap(); slots are raw until the owner writes them
	mapping *mmap.Mapping // non-nil when the storage is an off-heap anonymous mapping
}

// Alloc allocates raw storage for capacity elements. No elements are
// constructed. A capacity of 0 yields a null buffer without allocating.
func Alloc[T any](capacity int) (Buffer[T], error) {
	if capacity < 0 {
		return Buffer[T]{}, ErrInvalidCapacity
	}
	if capacity == 0 {
		return Buffer[T]{}, nil
	}

	elemSize := int(unsafe.Sizeof(*new(T)))
	if elemSize == 0 {
		// Zero-sized elements occupy no bytes; slots are still tracked.
		return Buffer[T]{data: make([]T, capacity)}, nil
	}
	if capacity > math.MaxInt/elemSize {
		return Buffer[T]{}, ErrSizeOverflow
	}

	if HasPointers[T]() {
		// Pointers stored in the slots must stay visible to the garbage
		// collector, so the backing array lives on the Go heap.
		return Buffer[T]{data: make([]T, capacity)}, nil
	}

	m, err := mmap.MapAnon(capacity * elemSize)
	if err != nil {
		return Buffer[T]{}, fmt.Errorf("rawbuf: alloc %d elements: %w", capacity, err)
	}

	b := m.Bytes()
	data := unsafe.Slice((*T)(unsafe.Pointer(&b[0])), capacity) //nolint:gosec // unsafe is required to type the raw block

	return Buffer[T]{data: data, mapping: m}, nil
}

// Cap returns the number of element slots the buffer can hold.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// OffHeap reports whether the storage is an anonymous mapping outside the Go heap.
func (b *Buffer[T]) OffHeap() bool {
	return b.mapping != nil
}

// At returns a reference into the raw block. The slot may or may not hold a
// live value; the owner must only dereference slots it has constructed.
// The index is validated against capacity only under the dynvec_assert tag.
func (b *Buffer[T]) At(i int) *T {
	debug.Assertf(i >= 0 && i < len(b.data), "rawbuf index %d out of capacity %d", i, len(b.data))
	return &b.data[i]
}

// Slice returns the raw slots [lo, hi). Like At, the returned slots carry no
// liveness guarantee.
func (b *Buffer[T]) Slice(lo, hi int) []T {
	debug.Assertf(0 <= lo && lo <= hi && hi <= len(b.data), "rawbuf slice [%d:%d) out of capacity %d", lo, hi, len(b.data))
	return b.data[lo:hi]
}

// Move transfers ownership of the storage to the returned buffer. The
// receiver becomes a null buffer that is safe to Release independently.
func (b *Buffer[T]) Move() Buffer[T] {
	out := Buffer[T]{data: b.data, mapping: b.mapping}
	b.data = nil
	b.mapping = nil
	return out
}

// Swap exchanges storage with another buffer in constant time.
func (b *Buffer[T]) Swap(o *Buffer[T]) {
	b.data, o.data = o.data, b.data
	b.mapping, o.mapping = o.mapping, b.mapping
}

// Release deallocates the raw block without running element destructors; the
// buffer does not know which slots are live. No-op on a null buffer, safe to
// call more than once.
func (b *Buffer[T]) Release() {
	if b.mapping != nil {
		_ = b.mapping.Close()
		b.mapping = nil
	}
	b.data = nil
}
