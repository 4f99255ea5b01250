package pricemap

import "iter"

// Iterator is a forward iterator over the live entries of a Map. It holds
// the map and a logical slot index; advancing skips tombstoned slots via the
// strategy's occupancy structure, so each step is O(1). Traversal order is
// slot order and carries no relation to key order.
type Iterator[T any] struct {
	m   *Map[T]
	idx int
}

// seek returns an iterator at the first occupied slot >= i, or End().
func (m *Map[T]) seek(i int) Iterator[T] {
	if i < 0 {
		i = 0
	}
	if next, ok := m.strategy.NextOccupied(uint32(i)); ok && int(next) < m.data.Len() {
		return Iterator[T]{m: m, idx: int(next)}
	}
	return m.End()
}

// at returns an iterator positioned directly at slot i.
func (m *Map[T]) at(i int) Iterator[T] {
	return Iterator[T]{m: m, idx: i}
}

// Begin returns an iterator at the first live entry, or End() if the map is
// empty.
func (m *Map[T]) Begin() Iterator[T] { return m.seek(0) }

// End returns the past-the-end iterator.
func (m *Map[T]) End() Iterator[T] {
	return Iterator[T]{m: m, idx: m.data.Len()}
}

// Valid reports whether the iterator references a live entry.
func (it Iterator[T]) Valid() bool {
	return it.m != nil && it.idx < it.m.data.Len() && it.m.strategy.Occupied(uint32(it.idx))
}

// Next returns an iterator at the next live entry, or End().
func (it Iterator[T]) Next() Iterator[T] {
	return it.m.seek(it.idx + 1)
}

// Key returns the referenced entry's key.
func (it Iterator[T]) Key() float64 {
	return it.m.data.Get(it.idx).key
}

// Value returns a pointer to the referenced entry's value. The pointer stays
// valid across future insertions.
func (it Iterator[T]) Value() *T {
	return &it.m.data.Get(it.idx).value
}

// Index returns the iterator's slot index.
func (it Iterator[T]) Index() int { return it.idx }

// Equal reports whether it and o reference the same map and slot.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.m == o.m && it.idx == o.idx
}

// All returns a range-over-func sequence of (key, value pointer) over the
// live entries.
func (m *Map[T]) All() iter.Seq2[float64, *T] {
	return func(yield func(float64, *T) bool) {
		for it := m.Begin(); it.Valid(); it = it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
