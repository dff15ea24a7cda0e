package iro

import "github.com/gogpu/iro/internal/quant"

// Rounding selects how Quantize reduces a normalized value to its integer
// display form.
type Rounding uint8

const (
	// RoundDefault applies the model's own policy: truncation toward zero
	// for RGB and CMYK, round-half-away-from-zero for HSL.
	RoundDefault Rounding = iota

	// RoundTruncate drops the fractional part.
	RoundTruncate

	// RoundNearest rounds half away from zero.
	RoundNearest
)

// String returns the rounding policy name.
func (r Rounding) String() string {
	switch r {
	case RoundDefault:
		return "Default"
	case RoundTruncate:
		return "Truncate"
	case RoundNearest:
		return "Nearest"
	default:
		return "Unknown"
	}
}

// QuantizeOption configures a Quantize call.
// Use functional options to override the per-model defaults.
//
// Example:
//
//	// Default policy (truncation for CMYK)
//	c := iro.RGB{R: 85, G: 191, B: 100}.CMYKf().Quantize()
//
//	// Nearest rounding instead
//	c = iro.RGB{R: 85, G: 191, B: 100}.CMYKf().Quantize(iro.WithRounding(iro.RoundNearest))
type QuantizeOption func(*quantizeOptions)

// quantizeOptions holds optional configuration for Quantize.
type quantizeOptions struct {
	rounding Rounding
}

// defaultQuantizeOptions returns the default quantize options.
func defaultQuantizeOptions() quantizeOptions {
	return quantizeOptions{
		rounding: RoundDefault, // resolved per model
	}
}

// WithRounding sets the rounding policy for a Quantize call.
// Unknown values behave like RoundDefault.
func WithRounding(r Rounding) QuantizeOption {
	return func(o *quantizeOptions) {
		o.rounding = r
	}
}

// roundingMode applies opts and resolves the result against the model's
// default mode.
func roundingMode(opts []QuantizeOption, model quant.Mode) quant.Mode {
	if len(opts) == 0 {
		return model
	}
	o := defaultQuantizeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.rounding {
	case RoundTruncate:
		return quant.Truncate
	case RoundNearest:
		return quant.Nearest
	default:
		return model
	}
}
