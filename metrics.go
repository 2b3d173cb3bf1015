package dynvec

import (
	"fmt"
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordAlloc is called after each successful raw storage allocation.
	// capacity is the number of element slots allocated.
	RecordAlloc(capacity int)

	// RecordGrow is called after a reallocation changes the capacity.
	RecordGrow(oldCap, newCap int)

	// RecordRelocation is called after live elements transfer between
	// buffers. moved reports whether the transfer moved (true) or copied.
	RecordRelocation(count int, moved bool)

	// RecordRelease is called when a buffer of the given capacity is released.
	RecordRelease(capacity int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(int)            {}
func (NoopMetricsCollector) RecordGrow(int, int)        {}
func (NoopMetricsCollector) RecordRelocation(int, bool) {}
func (NoopMetricsCollector) RecordRelease(int)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocCount     atomic.Int64
	AllocSlots     atomic.Int64
	GrowCount      atomic.Int64
	MovedElements  atomic.Int64
	CopiedElements atomic.Int64
	ReleaseCount   atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(capacity int) {
	b.AllocCount.Add(1)
	b.AllocSlots.Add(int64(capacity))
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCap, newCap int) {
	b.GrowCount.Add(1)
}

// RecordRelocation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelocation(count int, moved bool) {
	if moved {
		b.MovedElements.Add(int64(count))
	} else {
		b.CopiedElements.Add(int64(count))
	}
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(int) {
	b.ReleaseCount.Add(1)
}

func (b *BasicMetricsCollector) String() string {
	return fmt.Sprintf(
		"Metrics{allocs: %d, slots: %d, grows: %d, moved: %d, copied: %d, releases: %d}",
		b.AllocCount.Load(),
		b.AllocSlots.Load(),
		b.GrowCount.Load(),
		b.MovedElements.Load(),
		b.CopiedElements.Load(),
		b.ReleaseCount.Load(),
	)
}
