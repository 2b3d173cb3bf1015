package dynvec

import "iter"

// All returns an iterator over index/value pairs of the live elements in
// order. The vector must not be mutated during iteration: any operation that
// reallocates or shifts elements invalidates the traversal.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.buf.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.buf.At(i)) {
				return
			}
		}
	}
}

// Refs returns an iterator over index/reference pairs for in-place mutation.
// References obey the same invalidation rules as At.
func (v *Vector[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.At(i)) {
				return
			}
		}
	}
}
