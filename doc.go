// Package pricemap provides an associative container keyed by float64 prices
// with stable value addresses.
//
// Values live in a segmented store (package stablevec) that grows by
// appending fixed-size segments and never relocates elements, so a pointer
// returned by At, Find or GetOrInsert stays valid until the map is garbage
// collected. Erased slots are tombstoned, not destroyed, and reused by later
// insertions.
//
// Keys are resolved to store slots by one of two strategies:
//
//   - the default hash strategy accepts any finite key and recycles erased
//     slots through a free-list;
//   - WithPriceBand selects a tick-quantized strategy for a bounded price
//     band, which addresses slots arithmetically with no hashing at all.
//
// The container is not safe for concurrent use; callers needing shared access
// must guard a Map instance with their own lock.
package pricemap
