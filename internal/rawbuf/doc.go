// Package rawbuf provides move-only ownership of raw element storage.
//
// # Overview
//
// A Buffer owns a block of uninitialized storage sized for a fixed number of
// elements of type T. It knows only about slots and capacity, never about
// live values: it does not construct elements, and releasing it does not run
// destructors. The typed container layered on top tracks which slots are
// live and is responsible for element lifecycle.
//
// # Backing Storage
//
// Two backing strategies are chosen per element type:
//
//   - Pointer-free T: an anonymous memory mapping outside the Go heap, so
//     large buffers add no garbage collector scan work.
//   - T containing pointers: a heap-allocated array, keeping stored pointers
//     visible to the garbage collector.
//
// Both behave identically at the Buffer level.
//
// # Ownership
//
// Buffer values are move-only: duplicating an unowned byte range has no
// element-level meaning, so ownership is transferred with Move or Swap,
// never by copying the struct. Release is idempotent and a no-op on a null
// buffer.
package rawbuf
