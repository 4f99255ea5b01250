// Package stablevec implements a segmented growable vector with stable
// element addresses.
//
// Unlike a contiguous slice, which relocates its backing array on growth,
// StableVector stores elements in fixed-size segments and only ever appends
// new segments. A pointer obtained from Get or Append stays valid and keeps
// pointing at the same logical element for the lifetime of the vector.
package stablevec

import (
	"fmt"
	"math/bits"
)

// DefaultSegmentSize is the number of elements per segment.
const DefaultSegmentSize = 512

// ErrIndexOutOfRange indicates an index at or beyond the current length.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("stablevec: index %d out of range [0,%d)", e.Index, e.Len)
}

type options struct {
	segmentSize int
}

// Option configures a StableVector at construction time.
type Option func(*options)

// WithSegmentSize sets the per-segment capacity. Values that are not a power
// of two are rounded up to the next power of two.
func WithSegmentSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.segmentSize = n
		}
	}
}

// StableVector is a segmented growable vector.
//
// Growth appends segments and never moves existing elements. Capacity is
// monotonic: segments are only released when the whole vector becomes
// unreachable.
type StableVector[T any] struct {
	segments []*segment[T]
	size     int
	segBits  uint
	segSize  int
	segMask  int
}

// segment is a fully allocated fixed-size block. Element addresses inside the
// block never change because the backing array is allocated once.
type segment[T any] struct {
	items []T
}

// New creates an empty StableVector.
func New[T any](opts ...Option) *StableVector[T] {
	o := options{segmentSize: DefaultSegmentSize}
	for _, opt := range opts {
		opt(&o)
	}

	// Round up to next power of 2 for shift/mask addressing.
	segBits := bits.Len(uint(o.segmentSize - 1))
	segSize := 1 << segBits

	return &StableVector[T]{
		segBits: uint(segBits),
		segSize: segSize,
		segMask: segSize - 1,
	}
}

// Of creates a StableVector holding the given values.
func Of[T any](vs ...T) *StableVector[T] {
	v := New[T]()
	for _, val := range vs {
		v.Append(val)
	}
	return v
}

// Repeat creates a StableVector holding n copies of val.
func Repeat[T any](n int, val T) *StableVector[T] {
	v := New[T]()
	v.Reserve(n)
	for i := 0; i < n; i++ {
		v.Append(val)
	}
	return v
}

// Len returns the number of elements.
func (v *StableVector[T]) Len() int { return v.size }

// Cap returns the total element capacity across all segments.
func (v *StableVector[T]) Cap() int { return len(v.segments) * v.segSize }

// Empty returns true if the vector holds no elements.
func (v *StableVector[T]) Empty() bool { return v.size == 0 }

// SegmentSize returns the per-segment capacity.
func (v *StableVector[T]) SegmentSize() int { return v.segSize }

// Segments returns the number of allocated segments.
func (v *StableVector[T]) Segments() int { return len(v.segments) }

func (v *StableVector[T]) addSegment() {
	v.segments = append(v.segments, &segment[T]{items: make([]T, v.segSize)})
}

// Append adds val at the end and returns a pointer to the stored element.
// The returned pointer stays valid across any future growth.
func (v *StableVector[T]) Append(val T) *T {
	if v.size == v.Cap() {
		v.addSegment()
	}
	seg := v.segments[v.size>>v.segBits]
	p := &seg.items[v.size&v.segMask]
	*p = val
	v.size++
	return p
}

// Get returns a pointer to the element at index i. No bounds checking.
func (v *StableVector[T]) Get(i int) *T {
	return &v.segments[i>>v.segBits].items[i&v.segMask]
}

// At returns a pointer to the element at index i, or ErrIndexOutOfRange if
// i is not in [0, Len()).
func (v *StableVector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, &ErrIndexOutOfRange{Index: i, Len: v.size}
	}
	return v.Get(i), nil
}

// Front returns a pointer to the first element, or nil if empty.
func (v *StableVector[T]) Front() *T {
	if v.size == 0 {
		return nil
	}
	return v.Get(0)
}

// Back returns a pointer to the last element, or nil if empty.
func (v *StableVector[T]) Back() *T {
	if v.size == 0 {
		return nil
	}
	return v.Get(v.size - 1)
}

// Reserve appends empty segments until Cap() >= n. It never removes segments
// and never changes Len().
func (v *StableVector[T]) Reserve(n int) {
	for v.Cap() < n {
		v.addSegment()
	}
}

// Extend grows the vector with zero values until Len() >= n. Slots between
// the old and new length are zero: they were never written, since the length
// is monotonic.
func (v *StableVector[T]) Extend(n int) {
	if n <= v.size {
		return
	}
	v.Reserve(n)
	v.size = n
}

// ShrinkToFit is a no-op. The vector never gives memory back: releasing
// segments would invalidate live element addresses.
func (v *StableVector[T]) ShrinkToFit() {}

// Clone returns a deep, segment-for-segment copy.
func (v *StableVector[T]) Clone() *StableVector[T] {
	c := &StableVector[T]{
		segments: make([]*segment[T], len(v.segments)),
		size:     v.size,
		segBits:  v.segBits,
		segSize:  v.segSize,
		segMask:  v.segMask,
	}
	for i, seg := range v.segments {
		items := make([]T, v.segSize)
		copy(items, seg.items)
		c.segments[i] = &segment[T]{items: items}
	}
	return c
}

// EqualFunc reports whether v and o hold equal elements in order, using eq
// to compare elements.
func (v *StableVector[T]) EqualFunc(o *StableVector[T], eq func(a, b T) bool) bool {
	if v.size != o.size {
		return false
	}
	for i := 0; i < v.size; i++ {
		if !eq(*v.Get(i), *o.Get(i)) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold equal elements in order.
func Equal[T comparable](a, b *StableVector[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}
