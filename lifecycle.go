package dynvec

// Lifecycle describes how values of the element type are constructed,
// copied, moved and destroyed. The zero Lifecycle describes a trivial type:
// value construction yields the zero value, copies are shallow, moves are a
// plain transfer, and no hook can fail.
//
// The capability flags mirror the questions the relocation policy asks of an
// element type: can its move fail, and can it be copied at all.
type Lifecycle[T any] struct {
	// New value-constructs an element. Nil means the zero value, never failing.
	New func() (T, error)

	// Copy copy-constructs a new element from src. Nil means a shallow copy
	// that never fails. Ignored when NoCopy is set.
	Copy func(src T) (T, error)

	// NoCopy marks the type as not copy-capable. Clone, CopyFrom and the
	// copy-relocation path are unavailable; relocation always moves.
	NoCopy bool

	// Move move-constructs an element out of *src, leaving *src in its
	// moved-from state. Nil means a trivial move: take the value and zero the
	// source; a trivial move never fails.
	Move func(src *T) (T, error)

	// MoveSafe declares that Move never returns an error. A nil Move is
	// always safe.
	MoveSafe bool

	// Destroy releases resources owned by *p. Nil means no cleanup. Destroy
	// must tolerate moved-from (zero) values.
	Destroy func(p *T)
}

func (l Lifecycle[T]) construct() (T, error) {
	if l.New != nil {
		return l.New()
	}
	var zero T
	return zero, nil
}

func (l Lifecycle[T]) copyOne(src T) (T, error) {
	if l.Copy != nil {
		return l.Copy(src)
	}
	return src, nil
}

// moveOne move-constructs out of *src, leaving the source moved-from.
func (l Lifecycle[T]) moveOne(src *T) (T, error) {
	if l.Move != nil {
		return l.Move(src)
	}
	out := *src
	var zero T
	*src = zero
	return out, nil
}

// destroy runs the destructor and zeroes the slot so dead slots never pin
// memory for the garbage collector.
func (l Lifecycle[T]) destroy(p *T) {
	if l.Destroy != nil {
		l.Destroy(p)
	}
	var zero T
	*p = zero
}

func (l Lifecycle[T]) destroyAll(s []T) {
	for i := range s {
		l.destroy(&s[i])
	}
}

// moveIsSafe reports whether move construction is guaranteed not to fail.
func (l Lifecycle[T]) moveIsSafe() bool {
	return l.Move == nil || l.MoveSafe
}

// relocateByMove decides how live elements transfer between buffers during
// reallocation: move when the move cannot fail, or when moving is the only
// option; copy otherwise, so sources stay intact until every new element is
// constructed.
func (l Lifecycle[T]) relocateByMove() bool {
	return l.moveIsSafe() || l.NoCopy
}

// copyAssign replaces the live value at dst with a copy of src. The copy is
// constructed first so a failure leaves dst untouched.
func (l Lifecycle[T]) copyAssign(dst *T, src T) error {
	out, err := l.copyOne(src)
	if err != nil {
		return err
	}
	if l.Destroy != nil {
		l.Destroy(dst)
	}
	*dst = out
	return nil
}

// moveAssign replaces the live value at dst with the value moved out of src.
func (l Lifecycle[T]) moveAssign(dst, src *T) error {
	out, err := l.moveOne(src)
	if err != nil {
		return err
	}
	if l.Destroy != nil {
		l.Destroy(dst)
	}
	*dst = out
	return nil
}

// constructN value-constructs every slot of dst, destroying the partially
// built run on failure so no partial live range is ever exposed.
func (l Lifecycle[T]) constructN(dst []T) error {
	for i := range dst {
		v, err := l.construct()
		if err != nil {
			l.destroyAll(dst[:i])
			return err
		}
		dst[i] = v
	}
	return nil
}

// copyInto copy-constructs src into dst slot for slot, destroying the
// partially built run on failure. Sources are never mutated.
func (l Lifecycle[T]) copyInto(dst, src []T) error {
	for i := range src {
		v, err := l.copyOne(src[i])
		if err != nil {
			l.destroyAll(dst[:i])
			return err
		}
		dst[i] = v
	}
	return nil
}
