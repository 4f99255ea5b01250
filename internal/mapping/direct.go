package mapping

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// alignmentEpsilon bounds how far (price-min)/tick may sit from an integer
// before the price counts as misaligned.
const alignmentEpsilon = 1e-9

// Direct maps a bounded, tick-quantized price band onto a dense level index.
//
// The band parameters are fixed at construction and define a bijection
// between tick-aligned prices in [min, max] and indices in [0, levels).
// Occupancy is a dense bitset with one bit per level, so lookups and
// iteration skip-scans cost O(1) without hashing. The trade-off is memory
// proportional to the band width over the tick size, which only pays off when
// the key domain is known ahead of time.
type Direct struct {
	opening float64
	min     float64
	max     float64
	tick    float64
	levels  uint32
	occ     *bitset.BitSet
	live    int
}

// NewDirect creates a Direct strategy for the band
// [opening*(1-downPct/100), opening*(1+upPct/100)] quantized by tick.
func NewDirect(opening, upPct, downPct, tick float64) (*Direct, error) {
	if tick <= 0 {
		return nil, &ErrInvalidTick{Tick: tick}
	}
	if upPct < 0 {
		return nil, &ErrInvalidLimit{Pct: upPct}
	}
	if downPct < 0 {
		return nil, &ErrInvalidLimit{Pct: downPct}
	}

	min := opening * (1 - downPct/100)
	max := opening * (1 + upPct/100)
	levels := uint32(math.Ceil((max-min)/tick)) + 1

	return &Direct{
		opening: opening,
		min:     min,
		max:     max,
		tick:    tick,
		levels:  levels,
		occ:     bitset.New(uint(levels)),
	}, nil
}

// MinPrice returns the lower band limit.
func (d *Direct) MinPrice() float64 { return d.min }

// MaxPrice returns the upper band limit.
func (d *Direct) MaxPrice() float64 { return d.max }

// TickSize returns the quantization step.
func (d *Direct) TickSize() float64 { return d.tick }

// Levels returns the number of addressable price levels.
func (d *Direct) Levels() uint32 { return d.levels }

// PriceToIndex quantizes price to its level index. The rounded index is
// clamped to levels-1 to absorb floating point error at the band edge.
func (d *Direct) PriceToIndex(price float64) (uint32, error) {
	if price < d.min || price > d.max {
		return 0, &ErrPriceOutOfRange{Price: price, Min: d.min, Max: d.max}
	}
	idx := uint32(math.Round((price - d.min) / d.tick))
	if idx >= d.levels {
		idx = d.levels - 1
	}
	return idx, nil
}

// IndexToPrice returns the price at level idx, the exact inverse of
// PriceToIndex for tick-aligned prices.
func (d *Direct) IndexToPrice(idx uint32) float64 {
	return d.min + float64(idx)*d.tick
}

func (d *Direct) aligned(price float64) bool {
	steps := (price - d.min) / d.tick
	return math.Abs(steps-math.Round(steps)) <= alignmentEpsilon
}

// IsValidPrice reports whether price is inside the band and tick-aligned.
func (d *Direct) IsValidPrice(price float64) bool {
	return price >= d.min && price <= d.max && d.aligned(price)
}

// Validate returns the reason price cannot be used as a key, or nil.
func (d *Direct) Validate(key float64) error {
	if key < d.min || key > d.max || math.IsNaN(key) {
		return &ErrPriceOutOfRange{Price: key, Min: d.min, Max: d.max}
	}
	if !d.aligned(key) {
		return &ErrPriceMisaligned{Price: key, Tick: d.tick}
	}
	return nil
}

// Resolve returns the occupied level for key. Invalid prices resolve as
// absent, not as errors.
func (d *Direct) Resolve(key float64) (uint32, bool) {
	if !d.IsValidPrice(key) {
		return 0, false
	}
	idx, err := d.PriceToIndex(key)
	if err != nil {
		return 0, false
	}
	if !d.occ.Test(uint(idx)) {
		return 0, false
	}
	return idx, true
}

// Acquire validates key and marks its level occupied. The level index is
// fully determined by the price, so next is unused.
func (d *Direct) Acquire(key float64, _ uint32) (uint32, bool, error) {
	if err := d.Validate(key); err != nil {
		return 0, false, err
	}
	idx, err := d.PriceToIndex(key)
	if err != nil {
		return 0, false, err
	}
	if d.occ.Test(uint(idx)) {
		return idx, true, nil
	}
	d.occ.Set(uint(idx))
	d.live++
	return idx, false, nil
}

// Release clears the level's occupancy bit. The slot content stays in place.
func (d *Direct) Release(key float64) (uint32, bool) {
	idx, ok := d.Resolve(key)
	if !ok {
		return 0, false
	}
	d.occ.Clear(uint(idx))
	d.live--
	return idx, true
}

// Occupied reports whether level idx holds a live entry.
func (d *Direct) Occupied(idx uint32) bool {
	return d.occ.Test(uint(idx))
}

// NextOccupied returns the smallest occupied level >= idx.
func (d *Direct) NextOccupied(idx uint32) (uint32, bool) {
	next, ok := d.occ.NextSet(uint(idx))
	return uint32(next), ok
}

// Live returns the number of occupied levels.
func (d *Direct) Live() int { return d.live }

// FreeLen returns 0: levels are addressed by price, never recycled through
// a free-list.
func (d *Direct) FreeLen() int { return 0 }

// Clear tombstones every level.
func (d *Direct) Clear() {
	d.occ.ClearAll()
	d.live = 0
}

// Clone returns an independent deep copy.
func (d *Direct) Clone() Strategy {
	c := *d
	c.occ = d.occ.Clone()
	return &c
}
