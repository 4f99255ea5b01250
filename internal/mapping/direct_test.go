package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirect(t *testing.T) *Direct {
	t.Helper()
	d, err := NewDirect(100.0, 10.0, 10.0, 0.01)
	require.NoError(t, err)
	return d
}

func TestNewDirect(t *testing.T) {
	d := newTestDirect(t)

	assert.InDelta(t, 90.0, d.MinPrice(), 1e-9)
	assert.InDelta(t, 110.0, d.MaxPrice(), 1e-9)
	assert.Equal(t, 0.01, d.TickSize())
	assert.GreaterOrEqual(t, d.Levels(), uint32(2001))
}

func TestNewDirectInvalid(t *testing.T) {
	for _, tick := range []float64{0, -0.01} {
		_, err := NewDirect(100, 10, 10, tick)
		var it *ErrInvalidTick
		require.ErrorAs(t, err, &it, "tick %v", tick)
		assert.Equal(t, tick, it.Tick)
	}

	for _, tt := range []struct{ up, down float64 }{{-5, 10}, {10, -5}} {
		_, err := NewDirect(100, tt.up, tt.down, 0.01)
		var il *ErrInvalidLimit
		require.ErrorAs(t, err, &il, "limits %v/%v", tt.up, tt.down)
	}
}

func TestPriceToIndexOutOfRange(t *testing.T) {
	d := newTestDirect(t)

	for _, p := range []float64{89.0, 50.0, 110.02, 200.0} {
		_, err := d.PriceToIndex(p)
		var oor *ErrPriceOutOfRange
		require.ErrorAs(t, err, &oor, "price %v", p)
		assert.Equal(t, p, oor.Price)
	}
}

func TestRoundTrip(t *testing.T) {
	d := newTestDirect(t)

	for _, p := range []float64{90.0, 95.37, 99.99, 100.0, 100.01, 100.50, 109.99, 110.0} {
		idx, err := d.PriceToIndex(p)
		require.NoError(t, err, "price %v", p)
		assert.InDelta(t, p, d.IndexToPrice(idx), d.TickSize()/2, "price %v", p)
	}
}

func TestAlignment(t *testing.T) {
	d := newTestDirect(t)

	assert.True(t, d.IsValidPrice(100.50))
	assert.True(t, d.IsValidPrice(90.0))
	assert.False(t, d.IsValidPrice(100.505))
	assert.False(t, d.IsValidPrice(100.0051))
	assert.False(t, d.IsValidPrice(200.0))

	var mis *ErrPriceMisaligned
	assert.ErrorAs(t, d.Validate(100.505), &mis)
	assert.NoError(t, d.Validate(100.50))

	// Misaligned prices resolve as absent, never as errors.
	_, ok := d.Resolve(100.505)
	assert.False(t, ok)
}

func TestDirectAcquireRelease(t *testing.T) {
	d := newTestDirect(t)

	idx, existed, err := d.Acquire(100.50, 0)
	require.NoError(t, err)
	assert.False(t, existed)
	assert.True(t, d.Occupied(idx))
	assert.Equal(t, 1, d.Live())

	idx2, existed, err := d.Acquire(100.50, 0)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, idx, idx2)
	assert.Equal(t, 1, d.Live())

	got, ok := d.Resolve(100.50)
	assert.True(t, ok)
	assert.Equal(t, idx, got)

	rel, ok := d.Release(100.50)
	assert.True(t, ok)
	assert.Equal(t, idx, rel)
	assert.False(t, d.Occupied(idx))
	assert.Equal(t, 0, d.Live())

	_, ok = d.Release(100.50)
	assert.False(t, ok)
}

func TestDirectNextOccupied(t *testing.T) {
	d := newTestDirect(t)

	a, _, err := d.Acquire(95.0, 0)
	require.NoError(t, err)
	b, _, err := d.Acquire(105.0, 0)
	require.NoError(t, err)
	require.Less(t, a, b)

	next, ok := d.NextOccupied(0)
	require.True(t, ok)
	assert.Equal(t, a, next)

	next, ok = d.NextOccupied(a + 1)
	require.True(t, ok)
	assert.Equal(t, b, next)

	_, ok = d.NextOccupied(b + 1)
	assert.False(t, ok)
}

func TestDirectClear(t *testing.T) {
	d := newTestDirect(t)

	_, _, err := d.Acquire(100.0, 0)
	require.NoError(t, err)
	_, _, err = d.Acquire(101.0, 0)
	require.NoError(t, err)

	d.Clear()
	assert.Equal(t, 0, d.Live())
	_, ok := d.Resolve(100.0)
	assert.False(t, ok)
	assert.Equal(t, 0, d.FreeLen())
}

func TestDirectClone(t *testing.T) {
	d := newTestDirect(t)
	_, _, err := d.Acquire(100.0, 0)
	require.NoError(t, err)

	c := d.Clone()
	_, _, err = c.Acquire(101.0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, d.Live())
	assert.Equal(t, 2, c.Live())
	_, ok := d.Resolve(101.0)
	assert.False(t, ok)
}
