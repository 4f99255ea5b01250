package mapping

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashedAcquire(t *testing.T) {
	h := NewHashed()

	idx, existed, err := h.Acquire(100.0, 0)
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Equal(t, uint32(0), idx)

	idx, existed, err = h.Acquire(101.0, 1)
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Equal(t, uint32(1), idx)

	// Re-acquiring an existing key returns its slot unchanged.
	idx, existed, err = h.Acquire(100.0, 2)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, uint32(0), idx)

	assert.Equal(t, 2, h.Live())
}

func TestHashedReuseLIFO(t *testing.T) {
	h := NewHashed()

	for i, key := range []float64{100.0, 101.0, 102.0} {
		_, _, err := h.Acquire(key, uint32(i))
		require.NoError(t, err)
	}

	idx0, ok := h.Release(100.0)
	require.True(t, ok)
	assert.Equal(t, uint32(0), idx0)
	idx1, ok := h.Release(101.0)
	require.True(t, ok)
	assert.Equal(t, uint32(1), idx1)
	assert.Equal(t, 2, h.FreeLen())

	// Most recently freed index is handed out first.
	idx, existed, err := h.Acquire(200.0, 3)
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Equal(t, uint32(1), idx)

	idx, _, err = h.Acquire(201.0, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), idx)
	assert.Equal(t, 0, h.FreeLen())

	// Free-list exhausted: fresh slot at next.
	idx, _, err = h.Acquire(202.0, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), idx)
}

func TestHashedOccupancy(t *testing.T) {
	h := NewHashed()

	_, _, err := h.Acquire(100.0, 0)
	require.NoError(t, err)
	_, _, err = h.Acquire(101.0, 1)
	require.NoError(t, err)
	_, _, err = h.Acquire(102.0, 2)
	require.NoError(t, err)

	_, ok := h.Release(101.0)
	require.True(t, ok)

	assert.True(t, h.Occupied(0))
	assert.False(t, h.Occupied(1))
	assert.True(t, h.Occupied(2))

	// Skip-scan jumps over the tombstoned slot.
	next, ok := h.NextOccupied(1)
	require.True(t, ok)
	assert.Equal(t, uint32(2), next)

	_, ok = h.NextOccupied(3)
	assert.False(t, ok)
}

func TestHashedInvalidKeys(t *testing.T) {
	h := NewHashed()

	for _, key := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, _, err := h.Acquire(key, 0)
		var ik *ErrInvalidKey
		require.ErrorAs(t, err, &ik, "key %v", key)
	}
	assert.Equal(t, 0, h.Live())
}

func TestHashedRelease(t *testing.T) {
	h := NewHashed()

	_, ok := h.Release(100.0)
	assert.False(t, ok)

	_, _, err := h.Acquire(100.0, 0)
	require.NoError(t, err)

	_, ok = h.Release(100.0)
	assert.True(t, ok)
	_, ok = h.Release(100.0)
	assert.False(t, ok, "double release must report absence")
}

func TestHashedClear(t *testing.T) {
	h := NewHashed()

	for i, key := range []float64{100.0, 101.0, 102.0} {
		_, _, err := h.Acquire(key, uint32(i))
		require.NoError(t, err)
	}

	h.Clear()
	assert.Equal(t, 0, h.Live())
	assert.Equal(t, 3, h.FreeLen())
	_, ok := h.Resolve(100.0)
	assert.False(t, ok)

	// Cleared slots are recycled before the store would grow.
	idx, _, err := h.Acquire(300.0, 3)
	require.NoError(t, err)
	assert.Less(t, idx, uint32(3))
}

func TestHashedClone(t *testing.T) {
	h := NewHashed()
	_, _, err := h.Acquire(100.0, 0)
	require.NoError(t, err)
	_, _, err = h.Acquire(101.0, 1)
	require.NoError(t, err)
	_, ok := h.Release(100.0)
	require.True(t, ok)

	c := h.Clone()
	_, _, err = c.Acquire(102.0, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, h.Live())
	assert.Equal(t, 2, c.Live())
	assert.Equal(t, 1, h.FreeLen())
	assert.Equal(t, 0, c.FreeLen(), "clone reuses the copied free-list")
}
