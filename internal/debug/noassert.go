//go:build !dynvec_assert

package debug

// Enabled reports whether debug assertions are compiled in.
const Enabled = false

// Assert is a no-op unless the dynvec_assert build tag is set.
func Assert(bool, string) {}

// Assertf is a no-op unless the dynvec_assert build tag is set.
func Assertf(bool, string, ...any) {}
