package mapping

// Strategy resolves float64 keys to slot indices in the backing store.
//
// Indices handed out by Acquire address slots in a store the strategy does
// not own; the caller grows the store to cover any returned index. Release
// tombstones a slot: the index stops resolving but the slot's content is left
// in place until reuse.
type Strategy interface {
	// Resolve returns the slot index for key, or ok=false if the key is
	// absent. Invalid keys (out of band, misaligned, NaN) resolve as absent.
	Resolve(key float64) (idx uint32, ok bool)

	// Acquire resolves key or allocates a slot index for it. next is the
	// store's current length, used when a fresh slot is needed. existed
	// reports whether the key was already present; in that case the strategy
	// state is unchanged. Validation happens before any mutation.
	Acquire(key float64, next uint32) (idx uint32, existed bool, err error)

	// Release tombstones the key's slot and returns its index. Absent or
	// invalid keys report ok=false and leave the state unchanged.
	Release(key float64) (idx uint32, ok bool)

	// Validate reports why key could not be inserted, or nil.
	Validate(key float64) error

	// Occupied reports whether the slot at idx holds a live entry.
	Occupied(idx uint32) bool

	// NextOccupied returns the smallest occupied index >= idx, or ok=false
	// if there is none.
	NextOccupied(idx uint32) (uint32, bool)

	// Live returns the number of live entries.
	Live() int

	// FreeLen returns the number of reclaimed indices awaiting reuse.
	FreeLen() int

	// Clear tombstones every entry. Previously allocated indices become
	// reusable; no store slot is released.
	Clear()

	// Clone returns an independent deep copy.
	Clone() Strategy
}
