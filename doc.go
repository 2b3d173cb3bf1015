// Package dynvec provides a generic dynamic array built on raw storage.
//
// A Vector separates raw memory ownership from element lifecycle: an internal
// move-only buffer owns uninitialized slots and capacity, while the Vector
// tracks exactly which slots hold live values. This gives the same low-level
// control a systems container needs: allocation without construction,
// amortized doubling growth, and strong failure guarantees during
// reallocation.
//
// # Quick Start
//
//	v := dynvec.New[int]()
//	defer v.Close()
//
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(1, 99)        // [1, 99, 2]
//	v.Erase(0)             // [99, 2]
//
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//
// # Element Lifecycle
//
// Types whose values own resources, or whose construction and copying can
// fail, describe themselves with a Lifecycle:
//
//	life := dynvec.Lifecycle[*os.File]{
//	    NoCopy:  true,                       // files cannot be copy-constructed
//	    Destroy: func(f **os.File) { (*f).Close() },
//	}
//	v := dynvec.New(dynvec.WithLifecycle(life))
//
// The lifecycle drives the relocation policy during growth: elements move
// when their move cannot fail (or when they cannot be copied at all), and are
// copied otherwise, so a failed reallocation never leaves the vector in a
// half-transferred state.
//
// # Failure Guarantees
//
// Operations that allocate or construct return an error and leave the vector
// in its prior observable state wherever the strong guarantee is documented.
// In-place shifting paths (Emplace with spare capacity, Erase) give the basic
// guarantee: every slot stays valid, but element order may have changed.
//
// # Storage
//
// Buffers for pointer-free element types live in anonymous memory mappings
// outside the Go heap, so large vectors add no garbage collector scan work.
// Element types containing pointers use heap-backed storage to keep stored
// pointers visible to the collector.
//
// # Concurrency
//
// A Vector is a single-owner, single-threaded container. It performs no
// internal locking; concurrent use requires external synchronization.
//
// # Debug Assertions
//
// Index and position preconditions are unchecked in normal builds. Build with
// the dynvec_assert tag to turn precondition violations into panics.
package dynvec
