package pricemap

import "fmt"

// Stats is a snapshot of a Map's storage accounting.
type Stats struct {
	Live        int    // live entries
	Slots       int    // store slots ever written or extended over
	Capacity    int    // total slot capacity across segments
	Segments    int    // allocated segments
	SegmentSize int    // slots per segment
	FreeList    int    // reclaimed indices awaiting reuse (hash strategy)
	Reused      uint64 // cumulative writes that recycled an existing slot
}

// Tombstones returns the number of slots that are allocated but not live.
// This counts erased slots and, in the price-band variant, default-filled
// slack between occupied levels.
func (s Stats) Tombstones() int { return s.Slots - s.Live }

func (s Stats) String() string {
	return fmt.Sprintf(
		"Map{live: %d, slots: %d, capacity: %d, segments: %d×%d, free: %d, reused: %d}",
		s.Live,
		s.Slots,
		s.Capacity,
		s.Segments,
		s.SegmentSize,
		s.FreeList,
		s.Reused,
	)
}

// Stats returns the current storage accounting.
func (m *Map[T]) Stats() Stats {
	return Stats{
		Live:        m.strategy.Live(),
		Slots:       m.data.Len(),
		Capacity:    m.data.Cap(),
		Segments:    m.data.Segments(),
		SegmentSize: m.data.SegmentSize(),
		FreeList:    m.strategy.FreeLen(),
		Reused:      m.reused,
	}
}
