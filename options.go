package pricemap

import "github.com/hupe1980/pricemap/stablevec"

type priceBand struct {
	opening float64
	upPct   float64
	downPct float64
	tick    float64
}

type options struct {
	segmentSize int
	logger      *Logger
	band        *priceBand
}

// Option configures Map construction behavior.
type Option func(*options)

// WithPriceBand selects the tick-quantized slot strategy for the band
// [opening*(1-downPct/100), opening*(1+upPct/100)] with the given tick size.
//
// Without this option the map uses the general hash strategy, which accepts
// any finite key. Invalid band parameters surface as an error from New.
func WithPriceBand(opening, upPct, downPct, tick float64) Option {
	return func(o *options) {
		o.band = &priceBand{
			opening: opening,
			upPct:   upPct,
			downPct: downPct,
			tick:    tick,
		}
	}
}

// WithSegmentSize sets the backing store's per-segment capacity. Values that
// are not a power of two are rounded up to the next power of two.
func WithSegmentSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.segmentSize = n
		}
	}
}

// WithLogger sets the logger used for debug-level operation logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		segmentSize: stablevec.DefaultSegmentSize,
		logger:      NoopLogger(),
	}
}
