package mapping

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Hashed maps arbitrary finite keys to slot indices through a hash table.
//
// Released indices go onto a LIFO free-list and are handed out again before
// any fresh slot is claimed, so the backing store only grows while the
// free-list is empty. Occupancy is tracked in a roaring bitmap; testing a
// slot or skip-scanning to the next live one never touches the free-list.
type Hashed struct {
	table map[float64]uint32
	free  []uint32
	occ   *roaring.Bitmap
}

// NewHashed creates an empty Hashed strategy.
func NewHashed() *Hashed {
	return &Hashed{
		table: make(map[float64]uint32),
		occ:   roaring.New(),
	}
}

// Validate rejects keys that cannot round-trip through the table.
// NaN never compares equal to itself and would leak a slot per insert.
func (h *Hashed) Validate(key float64) error {
	if math.IsNaN(key) || math.IsInf(key, 0) {
		return &ErrInvalidKey{Key: key}
	}
	return nil
}

// Resolve returns the slot index for key.
func (h *Hashed) Resolve(key float64) (uint32, bool) {
	idx, ok := h.table[key]
	return idx, ok
}

// Acquire resolves key or allocates a slot: the most recently freed index if
// any, otherwise next.
func (h *Hashed) Acquire(key float64, next uint32) (uint32, bool, error) {
	if idx, ok := h.table[key]; ok {
		return idx, true, nil
	}
	if err := h.Validate(key); err != nil {
		return 0, false, err
	}

	var idx uint32
	if n := len(h.free); n > 0 {
		idx = h.free[n-1]
		h.free = h.free[:n-1]
	} else {
		idx = next
	}
	h.table[key] = idx
	h.occ.Add(idx)
	return idx, false, nil
}

// Release removes key from the table and pushes its index onto the
// free-list. The slot's stale content is overwritten on reuse.
func (h *Hashed) Release(key float64) (uint32, bool) {
	idx, ok := h.table[key]
	if !ok {
		return 0, false
	}
	delete(h.table, key)
	h.free = append(h.free, idx)
	h.occ.Remove(idx)
	return idx, true
}

// Occupied reports whether the slot at idx holds a live entry.
func (h *Hashed) Occupied(idx uint32) bool {
	return h.occ.Contains(idx)
}

// NextOccupied returns the smallest occupied index >= idx.
func (h *Hashed) NextOccupied(idx uint32) (uint32, bool) {
	it := h.occ.Iterator()
	it.AdvanceIfNeeded(idx)
	if !it.HasNext() {
		return 0, false
	}
	return it.Next(), true
}

// Live returns the number of live entries.
func (h *Hashed) Live() int { return len(h.table) }

// FreeLen returns the number of reclaimed indices awaiting reuse.
func (h *Hashed) FreeLen() int { return len(h.free) }

// Clear tombstones every entry. Every previously allocated index moves to
// the free-list so the store's slots are recycled before it grows again.
func (h *Hashed) Clear() {
	for _, idx := range h.table {
		h.free = append(h.free, idx)
	}
	h.table = make(map[float64]uint32)
	h.occ.Clear()
}

// Clone returns an independent deep copy.
func (h *Hashed) Clone() Strategy {
	c := &Hashed{
		table: make(map[float64]uint32, len(h.table)),
		occ:   h.occ.Clone(),
	}
	for k, v := range h.table {
		c.table[k] = v
	}
	if len(h.free) > 0 {
		c.free = append([]uint32(nil), h.free...)
	}
	return c
}
