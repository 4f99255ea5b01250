package pricemap

import (
	"errors"
	"fmt"

	"github.com/hupe1980/pricemap/internal/mapping"
)

var (
	// ErrNotFound is returned when a key is not present in the map.
	ErrNotFound = errors.New("key not found")
)

// ErrPriceOutOfRange indicates a key outside the configured price band.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrPriceOutOfRange struct {
	Price float64
	Min   float64
	Max   float64
	cause error
}

func (e *ErrPriceOutOfRange) Error() string {
	return fmt.Sprintf("price %v out of range [%v, %v]", e.Price, e.Min, e.Max)
}

func (e *ErrPriceOutOfRange) Unwrap() error { return e.cause }

// ErrPriceMisaligned indicates an in-band key that is not tick-aligned.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrPriceMisaligned struct {
	Price float64
	Tick  float64
	cause error
}

func (e *ErrPriceMisaligned) Error() string {
	return fmt.Sprintf("price %v is not aligned to tick size %v", e.Price, e.Tick)
}

func (e *ErrPriceMisaligned) Unwrap() error { return e.cause }

// ErrInvalidTick indicates a non-positive tick size passed to WithPriceBand.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidTick struct {
	Tick  float64
	cause error
}

func (e *ErrInvalidTick) Error() string {
	return fmt.Sprintf("invalid tick size: %v", e.Tick)
}

func (e *ErrInvalidTick) Unwrap() error { return e.cause }

// ErrInvalidLimit indicates a negative limit percentage passed to
// WithPriceBand.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidLimit struct {
	Pct   float64
	cause error
}

func (e *ErrInvalidLimit) Error() string {
	return fmt.Sprintf("invalid limit percentage: %v", e.Pct)
}

func (e *ErrInvalidLimit) Unwrap() error { return e.cause }

// ErrInvalidKey indicates a key that cannot be stored (NaN or infinite).
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidKey struct {
	Key   float64
	cause error
}

func (e *ErrInvalidKey) Error() string {
	return fmt.Sprintf("invalid key: %v", e.Key)
}

func (e *ErrInvalidKey) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var por *mapping.ErrPriceOutOfRange
	if errors.As(err, &por) {
		return &ErrPriceOutOfRange{Price: por.Price, Min: por.Min, Max: por.Max, cause: err}
	}
	var pm *mapping.ErrPriceMisaligned
	if errors.As(err, &pm) {
		return &ErrPriceMisaligned{Price: pm.Price, Tick: pm.Tick, cause: err}
	}
	var it *mapping.ErrInvalidTick
	if errors.As(err, &it) {
		return &ErrInvalidTick{Tick: it.Tick, cause: err}
	}
	var il *mapping.ErrInvalidLimit
	if errors.As(err, &il) {
		return &ErrInvalidLimit{Pct: il.Pct, cause: err}
	}
	var ik *mapping.ErrInvalidKey
	if errors.As(err, &ik) {
		return &ErrInvalidKey{Key: ik.Key, cause: err}
	}

	return err
}
