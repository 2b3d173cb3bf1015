//go:build dynvec_assert

package debug

import "fmt"

// Enabled reports whether debug assertions are compiled in.
const Enabled = true

// Assert panics with msg if cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic("dynvec: assertion failed: " + msg)
	}
}

// Assertf panics with a formatted message if cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("dynvec: assertion failed: " + fmt.Sprintf(format, args...))
	}
}
