package dynvec

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCopyable is returned when a copy is requested of a vector whose
	// element lifecycle is marked NoCopy.
	ErrNotCopyable = errors.New("dynvec: element type is not copyable")
	// ErrInvalidLength is returned when a negative length is passed to Resize.
	ErrInvalidLength = errors.New("dynvec: length must not be negative")
)

// ErrAllocFailed indicates the raw storage layer could not satisfy an
// allocation request. The vector that triggered it is left in its prior
// valid state.
//
// The underlying cause can be accessed via errors.Unwrap.
type ErrAllocFailed struct {
	Capacity int
	cause    error
}

func (e *ErrAllocFailed) Error() string {
	return fmt.Sprintf("allocation for capacity %d failed: %v", e.Capacity, e.cause)
}

func (e *ErrAllocFailed) Unwrap() error { return e.cause }
