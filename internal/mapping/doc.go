// Package mapping implements the key-to-slot index strategies used by the
// price map facade.
//
// Two strategies share one contract: Direct quantizes a bounded, tick-aligned
// price band onto a dense level index, Hashed maps arbitrary keys through a
// hash table with a free-list of reclaimed indices. Both keep their own
// occupancy structure so that tombstone checks and iteration skip-scans are
// O(1) per step.
package mapping
