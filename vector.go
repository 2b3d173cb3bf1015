package dynvec

import (
	"fmt"

	"github.com/hupe1980/dynvec/internal/debug"
	"github.com/hupe1980/dynvec/internal/rawbuf"
)

// Vector is a dynamically sized sequence of T layered over a move-only raw
// buffer. Slots [0, Len()) hold constructed values; slots [Len(), Cap()) are
// raw storage. The invariant 0 <= Len() <= Cap() holds at the start and end
// of every exported operation.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	buf     rawbuf.Buffer[T]
	size    int
	life    Lifecycle[T]
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty vector with zero capacity. No storage is allocated
// until the first element is added or Reserve is called.
func New[T any](opts ...Option[T]) *Vector[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	return &Vector[T]{
		life:    o.lifecycle,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// NewWithSize creates a vector of n value-constructed elements with capacity
// exactly n. If allocation or any element construction fails, elements
// constructed so far are destroyed and no vector is produced.
func NewWithSize[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)

	buf, err := v.alloc(n)
	if err != nil {
		return nil, err
	}
	if err := v.life.constructN(buf.Slice(0, n)); err != nil {
		buf.Release()
		return nil, err
	}

	v.buf = buf
	v.size = n
	return v, nil
}

// Clone creates an independent copy with capacity exactly Len(). A failure
// while copying destroys the partial copy and produces no vector; the
// receiver is never modified.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if v.life.NoCopy {
		return nil, ErrNotCopyable
	}

	out := &Vector[T]{life: v.life, logger: v.logger, metrics: v.metrics}

	buf, err := out.alloc(v.size)
	if err != nil {
		return nil, err
	}
	if err := v.life.copyInto(buf.Slice(0, v.size), v.live()); err != nil {
		buf.Release()
		return nil, err
	}

	out.buf = buf
	out.size = v.size
	return out, nil
}

// Move transfers the buffer and length to a new vector. The receiver is left
// empty and relieved of its allocation, and remains usable. Move cannot fail.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{
		buf:     v.buf.Move(),
		size:    v.size,
		life:    v.life,
		logger:  v.logger,
		metrics: v.metrics,
	}
	v.size = 0
	return out
}

// MoveFrom replaces the receiver's contents with o's, releasing the previous
// elements and buffer. o is left empty. MoveFrom cannot fail.
func (v *Vector[T]) MoveFrom(o *Vector[T]) {
	if v == o {
		return
	}
	v.life.destroyAll(v.live())
	v.releaseBuf()

	v.buf = o.buf.Move()
	v.size = o.size
	v.life = o.life
	o.size = 0
}

// CopyFrom replaces the receiver's contents with a copy of o's, with the
// strong guarantee: on failure the receiver is left completely unmodified
// when its capacity is insufficient (copy-and-swap path), and always in a
// valid state otherwise.
//
// Both vectors are expected to share the same lifecycle.
func (v *Vector[T]) CopyFrom(o *Vector[T]) error {
	if v == o {
		return nil
	}
	if o.life.NoCopy {
		return ErrNotCopyable
	}

	// Not enough room: build a complete temporary copy and swap it in, so
	// either the whole assignment succeeds or the receiver is untouched.
	if v.Cap() < o.size {
		tmp, err := o.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Close()
		return nil
	}

	// Existing capacity suffices: overwrite live slots in place, then
	// construct or destroy the tail. Overwriting reuses constructed objects
	// and gives the basic guarantee.
	n := min(v.size, o.size)
	for i := 0; i < n; i++ {
		if err := v.life.copyAssign(v.buf.At(i), *o.buf.At(i)); err != nil {
			return err
		}
	}
	if o.size > v.size {
		if err := v.life.copyInto(v.buf.Slice(v.size, o.size), o.buf.Slice(v.size, o.size)); err != nil {
			return err
		}
	} else {
		v.life.destroyAll(v.buf.Slice(o.size, v.size))
	}
	v.size = o.size
	return nil
}

// Swap exchanges contents (buffer, length and lifecycle) with o in constant
// time. Swap cannot fail.
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.buf.Swap(&o.buf)
	v.size, o.size = o.size, v.size
	v.life, o.life = o.life, v.life
}

// Close destroys all live elements and releases the raw storage. The vector
// is left empty and remains usable. Close is idempotent and cannot fail.
func (v *Vector[T]) Close() {
	if v == nil {
		return
	}
	v.life.destroyAll(v.live())
	v.size = 0
	v.releaseBuf()
}

// Clear destroys all live elements but keeps the capacity.
func (v *Vector[T]) Clear() {
	v.life.destroyAll(v.live())
	v.size = 0
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of elements the current buffer can hold.
func (v *Vector[T]) Cap() int {
	return v.buf.Cap()
}

// At returns a reference to the element at index i, valid for both reading
// and writing. Access is unchecked: i must be in [0, Len()). The bound is
// asserted only under the dynvec_assert tag.
//
// The reference is invalidated by any operation that may reallocate or shift
// elements.
func (v *Vector[T]) At(i int) *T {
	debug.Assertf(i >= 0 && i < v.size, "index %d out of length %d", i, v.size)
	return v.buf.At(i)
}

func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector{len: %d, cap: %d, offheap: %t}", v.size, v.buf.Cap(), v.buf.OffHeap())
}

// live returns the constructed slots [0, size).
func (v *Vector[T]) live() []T {
	return v.buf.Slice(0, v.size)
}

// alloc requests raw storage for capacity elements, wiring metrics and the
// allocation error surface.
func (v *Vector[T]) alloc(capacity int) (rawbuf.Buffer[T], error) {
	buf, err := rawbuf.Alloc[T](capacity)
	if err != nil {
		return buf, &ErrAllocFailed{Capacity: capacity, cause: err}
	}
	if capacity > 0 {
		v.metrics.RecordAlloc(capacity)
		v.logger.LogAlloc(capacity, buf.OffHeap())
	}
	return buf, nil
}

// releaseBuf releases the current buffer, recording the release.
func (v *Vector[T]) releaseBuf() {
	if c := v.buf.Cap(); c > 0 {
		v.metrics.RecordRelease(c)
	}
	v.buf.Release()
}
