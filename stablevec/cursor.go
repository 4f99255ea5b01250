package stablevec

// Cursor is a random-access position within a StableVector. It holds the
// vector and a logical index, so it stays valid across growth.
//
// Cursors from different vectors must not be compared with Diff or Less;
// doing so is a programming error and panics.
type Cursor[T any] struct {
	vec *StableVector[T]
	idx int
}

// Begin returns a cursor at index 0.
func (v *StableVector[T]) Begin() Cursor[T] { return Cursor[T]{vec: v} }

// End returns a cursor one past the last element.
func (v *StableVector[T]) End() Cursor[T] { return Cursor[T]{vec: v, idx: v.size} }

// CursorAt returns a cursor at index i.
func (v *StableVector[T]) CursorAt(i int) Cursor[T] { return Cursor[T]{vec: v, idx: i} }

// Index returns the cursor's logical index.
func (c Cursor[T]) Index() int { return c.idx }

// Valid reports whether the cursor references an element in [0, Len()).
func (c Cursor[T]) Valid() bool { return c.vec != nil && c.idx >= 0 && c.idx < c.vec.size }

// Ref returns a pointer to the referenced element. No bounds checking.
func (c Cursor[T]) Ref() *T { return c.vec.Get(c.idx) }

// Value returns a copy of the referenced element. No bounds checking.
func (c Cursor[T]) Value() T { return *c.vec.Get(c.idx) }

// Next returns a cursor advanced by one.
func (c Cursor[T]) Next() Cursor[T] { return Cursor[T]{vec: c.vec, idx: c.idx + 1} }

// Prev returns a cursor moved back by one.
func (c Cursor[T]) Prev() Cursor[T] { return Cursor[T]{vec: c.vec, idx: c.idx - 1} }

// Add returns a cursor advanced by n.
func (c Cursor[T]) Add(n int) Cursor[T] { return Cursor[T]{vec: c.vec, idx: c.idx + n} }

// Sub returns a cursor moved back by n.
func (c Cursor[T]) Sub(n int) Cursor[T] { return Cursor[T]{vec: c.vec, idx: c.idx - n} }

// Diff returns the distance c - o. Panics if the cursors reference
// different vectors.
func (c Cursor[T]) Diff(o Cursor[T]) int {
	c.mustShareVector(o)
	return c.idx - o.idx
}

// Less reports whether c precedes o. Panics if the cursors reference
// different vectors.
func (c Cursor[T]) Less(o Cursor[T]) bool {
	c.mustShareVector(o)
	return c.idx < o.idx
}

// Equal reports whether c and o reference the same vector and index.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.vec == o.vec && c.idx == o.idx
}

func (c Cursor[T]) mustShareVector(o Cursor[T]) {
	if c.vec != o.vec {
		panic("stablevec: cursors reference different vectors")
	}
}
