package dynvec

import (
	"github.com/hupe1980/dynvec/internal/debug"
	"github.com/hupe1980/dynvec/internal/rawbuf"
)

// growCapacity returns the doubled capacity, growing 0 to 1.
func growCapacity(c int) int {
	if c == 0 {
		return 1
	}
	return c * 2
}

// Reserve guarantees capacity for at least n elements. If n does not exceed
// the current capacity it is a no-op; otherwise a buffer of exactly n slots
// is allocated and the live elements relocate into it. Length is unchanged.
// On failure the vector is left in its prior state (see relocate for the one
// documented exception).
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}

	newBuf, err := v.alloc(n)
	if err != nil {
		return err
	}

	moved, err := v.relocate(newBuf.Slice(0, v.size), v.live())
	if err != nil {
		newBuf.Release()
		return err
	}
	if !moved {
		v.life.destroyAll(v.live())
	}

	v.adopt(&newBuf)
	return nil
}

// Resize changes the length to n. Shrinking destroys the trailing surplus
// without reducing capacity; growing reserves room and value-constructs the
// new tail. A construction failure destroys the partially built tail and
// leaves the previous elements untouched.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		return ErrInvalidLength
	case n == v.size:
		return nil
	case n < v.size:
		v.life.destroyAll(v.buf.Slice(n, v.size))
		v.size = n
	default:
		if err := v.Reserve(n); err != nil {
			return err
		}
		if err := v.life.constructN(v.buf.Slice(v.size, n)); err != nil {
			return err
		}
		v.size = n
	}
	return nil
}

// EmplaceBack appends an element built by construct (nil means value
// construction per the lifecycle) and returns a reference to it. The
// reference stays valid until the next operation that may reallocate.
//
// The operation either fully succeeds (length grows by one) or leaves the
// vector in its prior observable state: on growth, the new element is
// constructed in the new buffer before any relocation, so a relocation
// failure tears it down with that buffer.
func (v *Vector[T]) EmplaceBack(construct func() (T, error)) (*T, error) {
	if construct == nil {
		construct = v.life.construct
	}

	if v.size < v.Cap() {
		val, err := construct()
		if err != nil {
			return nil, err
		}
		slot := v.buf.At(v.size)
		*slot = val
		v.size++
		return slot, nil
	}

	newBuf, err := v.alloc(growCapacity(v.Cap()))
	if err != nil {
		return nil, err
	}

	val, err := construct()
	if err != nil {
		newBuf.Release()
		return nil, err
	}
	*newBuf.At(v.size) = val

	moved, err := v.relocate(newBuf.Slice(0, v.size), v.live())
	if err != nil {
		v.life.destroy(newBuf.At(v.size))
		newBuf.Release()
		return nil, err
	}
	if !moved {
		v.life.destroyAll(v.live())
	}

	v.adopt(&newBuf)
	v.size++
	return v.buf.At(v.size - 1), nil
}

// PushBack appends value, taking ownership of it, and returns a reference to
// the stored element.
func (v *Vector[T]) PushBack(value T) (*T, error) {
	return v.EmplaceBack(func() (T, error) { return value, nil })
}

// Emplace inserts an element built by construct before index i, preserving
// the order of all other elements, and returns the index of the new element.
// i must be in [0, Len()]; inserting at Len() appends.
//
// With spare capacity the insertion shifts elements in place and gives the
// basic guarantee on a move failure. When growth is needed the element and
// both halves of the sequence are constructed in the new buffer before it is
// adopted, so a failure leaves the vector unmodified (strong guarantee,
// except for NoCopy types whose move can fail).
func (v *Vector[T]) Emplace(i int, construct func() (T, error)) (int, error) {
	debug.Assertf(i >= 0 && i <= v.size, "insert position %d out of length %d", i, v.size)

	if i == v.size {
		if _, err := v.EmplaceBack(construct); err != nil {
			return 0, err
		}
		return v.size - 1, nil
	}

	if construct == nil {
		construct = v.life.construct
	}

	if v.size < v.Cap() {
		return v.emplaceShift(i, construct)
	}
	return v.emplaceGrow(i, construct)
}

// Insert inserts value before index i, taking ownership of it.
func (v *Vector[T]) Insert(i int, value T) (int, error) {
	return v.Emplace(i, func() (T, error) { return value, nil })
}

// emplaceShift inserts at i using the spare slot at the end: the value is
// built in a temporary, the last element move-constructs into the raw end
// slot, the range [i, size-1) shifts one slot right, and the temporary
// move-assigns into the vacated slot. No slot is ever double-destroyed.
func (v *Vector[T]) emplaceShift(i int, construct func() (T, error)) (int, error) {
	tmp, err := construct()
	if err != nil {
		return 0, err
	}

	out, err := v.life.moveOne(v.buf.At(v.size - 1))
	if err != nil {
		v.life.destroy(&tmp)
		return 0, err
	}
	*v.buf.At(v.size) = out
	v.size++

	for j := v.size - 2; j > i; j-- {
		if err := v.life.moveAssign(v.buf.At(j), v.buf.At(j-1)); err != nil {
			v.life.destroy(&tmp)
			return 0, err
		}
	}
	if err := v.life.moveAssign(v.buf.At(i), &tmp); err != nil {
		v.life.destroy(&tmp)
		return 0, err
	}
	return i, nil
}

// emplaceGrow inserts at i via a new doubled buffer: the new element is
// constructed at its target slot first, then the prefix [0, i) and suffix
// [i, size) relocate around it. Either both relocations succeed and the new
// buffer is adopted, or everything constructed in it is destroyed and the
// vector keeps its prior state.
func (v *Vector[T]) emplaceGrow(i int, construct func() (T, error)) (int, error) {
	newBuf, err := v.alloc(growCapacity(v.Cap()))
	if err != nil {
		return 0, err
	}

	val, err := construct()
	if err != nil {
		newBuf.Release()
		return 0, err
	}
	*newBuf.At(i) = val

	moved, err := v.relocate(newBuf.Slice(0, i), v.buf.Slice(0, i))
	if err != nil {
		v.life.destroy(newBuf.At(i))
		newBuf.Release()
		return 0, err
	}
	if _, err := v.relocate(newBuf.Slice(i+1, v.size+1), v.buf.Slice(i, v.size)); err != nil {
		v.life.destroyAll(newBuf.Slice(0, i+1))
		newBuf.Release()
		return 0, err
	}
	if !moved {
		v.life.destroyAll(v.live())
	}

	v.adopt(&newBuf)
	v.size++
	return i, nil
}

// PopBack destroys the last element and shrinks the length by one. The
// vector must not be empty; this is asserted only under the dynvec_assert
// tag. PopBack cannot fail.
func (v *Vector[T]) PopBack() {
	debug.Assert(v.size > 0, "PopBack on empty vector")

	v.size--
	v.life.destroy(v.buf.At(v.size))
}

// Erase removes the element at index i, shifting every following element one
// slot left by move assignment and destroying the surplus trailing slot. It
// returns the index now holding the element that followed the erased one (or
// the new end). A move failure mid-shift gives the basic guarantee.
func (v *Vector[T]) Erase(i int) (int, error) {
	debug.Assert(v.size > 0, "Erase on empty vector")
	debug.Assertf(i >= 0 && i < v.size, "erase position %d out of length %d", i, v.size)

	for j := i; j < v.size-1; j++ {
		if err := v.life.moveAssign(v.buf.At(j), v.buf.At(j+1)); err != nil {
			return 0, err
		}
	}
	v.size--
	v.life.destroy(v.buf.At(v.size))
	return i, nil
}

// relocate constructs the elements of src into dst, choosing move or copy by
// the lifecycle's failure guarantees. It reports whether the sources were
// consumed by moving; after a copy-relocation the caller destroys the
// sources once the whole transfer is done.
//
// On failure everything constructed in dst is destroyed. A copy failure
// leaves all sources untouched (strong guarantee). A failing fallible move,
// reachable only for NoCopy types, leaves already-moved sources consumed
// (basic guarantee); half a move cannot be safely undone.
func (v *Vector[T]) relocate(dst, src []T) (moved bool, err error) {
	if len(src) == 0 {
		return v.life.relocateByMove(), nil
	}

	if v.life.relocateByMove() {
		for i := range src {
			out, err := v.life.moveOne(&src[i])
			if err != nil {
				v.life.destroyAll(dst[:i])
				return true, err
			}
			dst[i] = out
		}
		v.metrics.RecordRelocation(len(src), true)
		v.logger.LogRelocation(len(src), true)
		return true, nil
	}

	if err := v.life.copyInto(dst, src); err != nil {
		return false, err
	}
	v.metrics.RecordRelocation(len(src), false)
	v.logger.LogRelocation(len(src), false)
	return false, nil
}

// adopt swaps in a fully prepared buffer and releases the old one. The old
// buffer's elements must already be destroyed or moved out.
func (v *Vector[T]) adopt(newBuf *rawbuf.Buffer[T]) {
	oldCap := v.Cap()
	v.buf.Swap(newBuf)

	if c := newBuf.Cap(); c > 0 {
		v.metrics.RecordRelease(c)
	}
	newBuf.Release()

	v.metrics.RecordGrow(oldCap, v.Cap())
	v.logger.LogGrow(oldCap, v.Cap(), v.size)
}
