package dynvec_test

import (
	"testing"

	"github.com/hupe1980/dynvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &dynvec.BasicMetricsCollector{}
	v := dynvec.New[int](dynvec.WithMetrics[int](mc))

	for i := 0; i < 5; i++ {
		_, err := v.PushBack(i)
		require.NoError(t, err)
	}

	// Capacity walked 0 -> 1 -> 2 -> 4 -> 8: four allocations, four grows.
	assert.Equal(t, int64(4), mc.AllocCount.Load())
	assert.Equal(t, int64(1+2+4+8), mc.AllocSlots.Load())
	assert.Equal(t, int64(4), mc.GrowCount.Load())

	// Trivial elements relocate by move: 1 + 2 + 4 elements transferred.
	assert.Equal(t, int64(7), mc.MovedElements.Load())
	assert.Equal(t, int64(0), mc.CopiedElements.Load())

	v.Close()
	assert.GreaterOrEqual(t, mc.ReleaseCount.Load(), int64(1))

	assert.Contains(t, mc.String(), "allocs: 4")
}

func TestMetrics_CopyRelocation(t *testing.T) {
	mc := &dynvec.BasicMetricsCollector{}
	v := dynvec.New(
		dynvec.WithMetrics[int](mc),
		dynvec.WithLifecycle(dynvec.Lifecycle[int]{
			// A fallible move with copying available forces copy relocation.
			Move: func(src *int) (int, error) { out := *src; *src = 0; return out, nil },
		}),
	)
	defer v.Close()

	_, err := v.PushBack(1)
	require.NoError(t, err)
	_, err = v.PushBack(2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), mc.CopiedElements.Load())
	assert.Equal(t, int64(0), mc.MovedElements.Load())
}
