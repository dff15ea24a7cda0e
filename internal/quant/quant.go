// Package quant reduces normalized channel values to bounded display
// integers.
//
// Every function here is total: NaN, infinities and out-of-range inputs
// are clamped into the target domain and reported to the caller, never
// propagated.
package quant

import "math"

// Nudge is added before truncation so float noise such as
// 0.58*100 = 57.99999999999999 does not drop a whole display step.
// It is several orders of magnitude below 1/255, so a genuinely
// fractional value keeps its integer part.
const Nudge = 1e-9

// Mode selects how a scaled value is reduced to an integer.
type Mode uint8

const (
	// Truncate drops the fractional part (after Nudge).
	Truncate Mode = iota
	// Nearest rounds half away from zero.
	Nearest
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Truncate:
		return "Truncate"
	case Nearest:
		return "Nearest"
	default:
		return "Unknown"
	}
}

// Scale multiplies v by scale and reduces the product to an integer in
// [0, limit] using mode. The result is returned as float64 so callers can
// convert it to whatever integer width the model uses.
//
// clamped reports whether v fell outside the representable range.
func Scale(v, scale, limit float64, mode Mode) (n float64, clamped bool) {
	if math.IsNaN(v) {
		return 0, true
	}
	x := v * scale
	if mode == Nearest {
		x = math.Round(x)
	} else {
		x = math.Floor(x + Nudge)
	}
	switch {
	case x < 0:
		return 0, true
	case x > limit:
		return limit, true
	}
	return x, false
}

// WrapDegrees maps an angle in degrees into [0, 360).
// NaN and infinities map to 0.
func WrapDegrees(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-15 + 360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// Degrees reduces a hue to an integer degree in [0, 360) using mode.
// A hue that rounds up to 360 wraps to 0.
func Degrees(h float64, mode Mode) float64 {
	n, _ := Scale(WrapDegrees(h), 1, 360, mode)
	if n >= 360 {
		return 0
	}
	return n
}

// Clamp01 restricts v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// InUnit reports whether v lies in [0, 1].
func InUnit(v float64) bool {
	return v >= 0 && v <= 1
}
