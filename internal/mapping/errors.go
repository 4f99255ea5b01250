package mapping

import "fmt"

// ErrPriceOutOfRange indicates a key outside the configured price band.
type ErrPriceOutOfRange struct {
	Price float64
	Min   float64
	Max   float64
}

func (e *ErrPriceOutOfRange) Error() string {
	return fmt.Sprintf("price %v out of range [%v, %v]", e.Price, e.Min, e.Max)
}

// ErrPriceMisaligned indicates a key inside the band that is not a whole
// number of ticks above the band minimum.
type ErrPriceMisaligned struct {
	Price float64
	Tick  float64
}

func (e *ErrPriceMisaligned) Error() string {
	return fmt.Sprintf("price %v is not aligned to tick size %v", e.Price, e.Tick)
}

// ErrInvalidTick indicates a non-positive tick size at construction.
type ErrInvalidTick struct {
	Tick float64
}

func (e *ErrInvalidTick) Error() string {
	return fmt.Sprintf("invalid tick size: %v", e.Tick)
}

// ErrInvalidLimit indicates a negative limit percentage at construction.
type ErrInvalidLimit struct {
	Pct float64
}

func (e *ErrInvalidLimit) Error() string {
	return fmt.Sprintf("invalid limit percentage: %v", e.Pct)
}

// ErrInvalidKey indicates a key that cannot be stored (NaN or infinite).
type ErrInvalidKey struct {
	Key float64
}

func (e *ErrInvalidKey) Error() string {
	return fmt.Sprintf("invalid key: %v", e.Key)
}
