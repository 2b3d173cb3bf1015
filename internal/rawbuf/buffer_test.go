package rawbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlloc(t *testing.T) {
	t.Run("zero capacity is a null buffer", func(t *testing.T) {
		b, err := Alloc[int](0)
		require.NoError(t, err)

		assert.Equal(t, 0, b.Cap())
		assert.False(t, b.OffHeap())

		b.Release()
	})

	t.Run("negative capacity", func(t *testing.T) {
		_, err := Alloc[int](-1)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("pointer-free type maps off heap", func(t *testing.T) {
		b, err := Alloc[int64](128)
		require.NoError(t, err)
		defer b.Release()

		assert.Equal(t, 128, b.Cap())
		assert.True(t, b.OffHeap())

		// Slots are writable and hold values.
		for i := 0; i < 128; i++ {
			*b.At(i) = int64(i * 3)
		}
		for i := 0; i < 128; i++ {
			assert.Equal(t, int64(i*3), *b.At(i))
		}
	})

	t.Run("pointer-carrying type stays on heap", func(t *testing.T) {
		b, err := Alloc[string](16)
		require.NoError(t, err)
		defer b.Release()

		assert.Equal(t, 16, b.Cap())
		assert.False(t, b.OffHeap())

		*b.At(0) = "hello"
		assert.Equal(t, "hello", *b.At(0))
	})

	t.Run("zero-sized element type", func(t *testing.T) {
		b, err := Alloc[struct{}](10)
		require.NoError(t, err)
		defer b.Release()

		assert.Equal(t, 10, b.Cap())
		assert.False(t, b.OffHeap())
	})

	t.Run("capacity overflow", func(t *testing.T) {
		type wide struct{ a, b, c, d uint64 }

		_, err := Alloc[wide](1 << 61)
		assert.ErrorIs(t, err, ErrSizeOverflow)
	})
}

func TestBuffer_Move(t *testing.T) {
	b, err := Alloc[uint32](8)
	require.NoError(t, err)

	*b.At(0) = 42

	moved := b.Move()
	defer moved.Release()

	// Source is a null buffer, independently releasable.
	assert.Equal(t, 0, b.Cap())
	assert.False(t, b.OffHeap())
	b.Release()

	assert.Equal(t, 8, moved.Cap())
	assert.Equal(t, uint32(42), *moved.At(0))
}

func TestBuffer_Swap(t *testing.T) {
	a, err := Alloc[uint32](4)
	require.NoError(t, err)
	defer a.Release()

	b, err := Alloc[uint32](16)
	require.NoError(t, err)
	defer b.Release()

	*a.At(0) = 1
	*b.At(0) = 2

	a.Swap(&b)

	assert.Equal(t, 16, a.Cap())
	assert.Equal(t, 4, b.Cap())
	assert.Equal(t, uint32(2), *a.At(0))
	assert.Equal(t, uint32(1), *b.At(0))
}

func TestBuffer_Release(t *testing.T) {
	b, err := Alloc[float64](32)
	require.NoError(t, err)

	b.Release()
	assert.Equal(t, 0, b.Cap())

	// Idempotent, and valid on a null buffer.
	b.Release()

	var null Buffer[float64]
	null.Release()
}

func TestBuffer_Slice(t *testing.T) {
	b, err := Alloc[int16](8)
	require.NoError(t, err)
	defer b.Release()

	s := b.Slice(2, 6)
	require.Len(t, s, 4)

	s[0] = 7
	assert.Equal(t, int16(7), *b.At(2))
}
