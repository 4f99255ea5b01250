package pricemap

import (
	"fmt"

	"github.com/hupe1980/pricemap/internal/mapping"
	"github.com/hupe1980/pricemap/stablevec"
)

// Pair is an exported (key, value) tuple, used for bulk insertion.
type Pair[T any] struct {
	Key   float64
	Value T
}

// entry is the stored slot content. The key is kept alongside the value so
// iteration and equality checks never need a reverse index lookup.
type entry[T any] struct {
	key   float64
	value T
}

// Map is an associative container from float64 keys to values of type T.
//
// Values are stored in a segmented, pointer-stable store; keys resolve to
// store slots through the configured strategy. Erasing tombstones a slot
// without destroying its content, which keeps every still-live value address
// valid. The zero Map is not usable; construct with New.
type Map[T any] struct {
	data     *stablevec.StableVector[entry[T]]
	strategy mapping.Strategy
	logger   *Logger
	reused   uint64
}

// New creates a Map. The default configuration uses the hash strategy with
// 512-element segments and no logging.
func New[T any](opts ...Option) (*Map[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var strategy mapping.Strategy
	if o.band != nil {
		d, err := mapping.NewDirect(o.band.opening, o.band.upPct, o.band.downPct, o.band.tick)
		if err != nil {
			return nil, translateError(err)
		}
		strategy = d
	} else {
		strategy = mapping.NewHashed()
	}

	return &Map[T]{
		data:     stablevec.New[entry[T]](stablevec.WithSegmentSize(o.segmentSize)),
		strategy: strategy,
		logger:   o.logger,
	}, nil
}

// place writes (key, value) into slot idx, growing the store if the slot is
// past the current length. Slots below the length are rewrites of tombstoned
// or default-filled storage.
func (m *Map[T]) place(idx uint32, key float64, value T) *entry[T] {
	i := int(idx)
	if i >= m.data.Len() {
		before := m.data.Segments()
		m.data.Extend(i + 1)
		if after := m.data.Segments(); after != before {
			m.logger.LogGrow(after, m.data.Cap())
		}
	} else {
		m.reused++
	}

	e := m.data.Get(i)
	e.key = key
	e.value = value
	return e
}

// Insert adds (key, value) if key is absent. It returns an iterator to the
// entry and true if the key was newly added, or an iterator to the existing
// entry and false. The map is unmodified when the key is already present or
// when validation fails.
func (m *Map[T]) Insert(key float64, value T) (Iterator[T], bool, error) {
	idx, existed, err := m.strategy.Acquire(key, uint32(m.data.Len()))
	if err != nil {
		m.logger.LogInsert(key, 0, err)
		return m.End(), false, translateError(err)
	}
	if existed {
		return m.at(int(idx)), false, nil
	}

	m.place(idx, key, value)
	m.logger.LogInsert(key, idx, nil)
	return m.at(int(idx)), true, nil
}

// Emplace is Insert with deferred construction: construct runs only when the
// key is absent.
func (m *Map[T]) Emplace(key float64, construct func() T) (Iterator[T], bool, error) {
	if idx, ok := m.strategy.Resolve(key); ok {
		return m.at(int(idx)), false, nil
	}

	idx, _, err := m.strategy.Acquire(key, uint32(m.data.Len()))
	if err != nil {
		m.logger.LogInsert(key, 0, err)
		return m.End(), false, translateError(err)
	}

	m.place(idx, key, construct())
	m.logger.LogInsert(key, idx, nil)
	return m.at(int(idx)), true, nil
}

// InsertPairs inserts the given pairs in order, stopping at the first
// validation error. Pairs with already-present keys are skipped.
func (m *Map[T]) InsertPairs(pairs ...Pair[T]) error {
	for _, p := range pairs {
		if _, _, err := m.Insert(p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// GetOrInsert returns a pointer to the value under key, inserting a zero
// value first if the key is absent.
func (m *Map[T]) GetOrInsert(key float64) (*T, error) {
	if idx, ok := m.strategy.Resolve(key); ok {
		return &m.data.Get(int(idx)).value, nil
	}

	idx, _, err := m.strategy.Acquire(key, uint32(m.data.Len()))
	if err != nil {
		return nil, translateError(err)
	}

	var zero T
	e := m.place(idx, key, zero)
	m.logger.LogInsert(key, idx, nil)
	return &e.value, nil
}

// At returns a pointer to the value under key. Absent keys report
// ErrNotFound; in the price-band variant, keys that could never be inserted
// report the strategy's validation error instead.
func (m *Map[T]) At(key float64) (*T, error) {
	if idx, ok := m.strategy.Resolve(key); ok {
		return &m.data.Get(int(idx)).value, nil
	}
	if err := m.strategy.Validate(key); err != nil {
		return nil, translateError(err)
	}
	return nil, fmt.Errorf("%w: %v", ErrNotFound, key)
}

// Find returns an iterator to the entry under key, or End() if the key is
// absent or invalid.
func (m *Map[T]) Find(key float64) Iterator[T] {
	idx, ok := m.strategy.Resolve(key)
	if !ok {
		return m.End()
	}
	return m.at(int(idx))
}

// Contains reports whether key is present.
func (m *Map[T]) Contains(key float64) bool {
	_, ok := m.strategy.Resolve(key)
	return ok
}

// Count returns 1 if key is present, 0 otherwise.
func (m *Map[T]) Count(key float64) int {
	if m.Contains(key) {
		return 1
	}
	return 0
}

// Erase removes the entry under key and returns 1, or 0 if the key is absent
// or invalid. The slot is tombstoned; no other entry moves.
func (m *Map[T]) Erase(key float64) int {
	_, ok := m.strategy.Release(key)
	m.logger.LogErase(key, ok)
	if !ok {
		return 0
	}
	return 1
}

// EraseAt removes the entry at it and returns an iterator to the next live
// entry. An invalid iterator is returned unchanged as End().
func (m *Map[T]) EraseAt(it Iterator[T]) Iterator[T] {
	if !it.Valid() {
		return m.End()
	}
	key := it.Key()
	m.strategy.Release(key)
	m.logger.LogErase(key, true)
	return m.seek(it.idx + 1)
}

// Clear tombstones every entry. The backing store keeps its memory and its
// length; previously used slots are recycled by future insertions.
func (m *Map[T]) Clear() {
	released := m.strategy.Live()
	m.strategy.Clear()
	m.logger.LogClear(released)
}

// Len returns the number of live entries.
func (m *Map[T]) Len() int { return m.strategy.Live() }

// Empty returns true if the map holds no live entries.
func (m *Map[T]) Empty() bool { return m.Len() == 0 }

// Clone returns an independent deep copy of the map, its store and its
// strategy state.
func (m *Map[T]) Clone() *Map[T] {
	return &Map[T]{
		data:     m.data.Clone(),
		strategy: m.strategy.Clone(),
		logger:   m.logger,
		reused:   m.reused,
	}
}

// EqualFunc reports whether m and o hold the same keys with equal values,
// using eq to compare values. Physical slot order is irrelevant.
func (m *Map[T]) EqualFunc(o *Map[T], eq func(a, b T) bool) bool {
	if m.Len() != o.Len() {
		return false
	}
	for it := m.Begin(); it.Valid(); it = it.Next() {
		idx, ok := o.strategy.Resolve(it.Key())
		if !ok || !eq(*it.Value(), o.data.Get(int(idx)).value) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same keys with equal values.
func Equal[T comparable](a, b *Map[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}
