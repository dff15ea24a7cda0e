package iro

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/gogpu/iro/internal/hue"
	"github.com/gogpu/iro/internal/quant"
)

// HSL is a color in display form: hue in degrees [0, 360), saturation and
// lightness as percentages in [0, 100].
type HSL struct {
	H    uint16
	S, L uint8
}

// HSLf is a normalized HSL color.
//
// Unlike the other normalized forms, the hue is not unit-scaled: H stays in
// degrees, [0, 360). S and L are in [0, 1].
type HSLf struct {
	H, S, L float64
}

// NewHSL creates a color from display values. The hue wraps modulo 360
// (so 360 becomes 0); saturation and lightness above 100 are clamped.
func NewHSL(h uint16, s, l uint8) HSL {
	return HSL{
		H: h % hueDegrees,
		S: percent("HSL", "S", s),
		L: percent("HSL", "L", l),
	}
}

// NewHSLf creates a normalized color. The hue wraps into [0, 360);
// saturation and lightness are clamped to [0, 1].
func NewHSLf(h, s, l float64) HSLf {
	return HSLf{
		H: quant.WrapDegrees(h),
		S: unit("HSLf", "S", s),
		L: unit("HSLf", "L", l),
	}
}

// HSLf converts a normalized RGB color to HSL.
//
// Colors whose chroma (max - min channel) is below 1e-3 are achromatic:
// they get H = 0 and S = 0 instead of dividing by a vanishing chroma.
func (c RGBf) HSLf() HSLf {
	lo, hi := min(c.R, c.G, c.B), max(c.R, c.G, c.B)
	chroma := hi - lo
	l := (lo + hi) / 2

	if chroma < hue.Epsilon {
		if lg, ok := debugLogger(); ok {
			lg.Debug("iro: achromatic guard, hue and saturation forced to zero",
				slog.Float64("chroma", chroma),
				slog.Float64("lightness", l),
			)
		}
		return HSLf{L: l}
	}

	s := chroma / (1 - math.Abs(2*l-1))
	return HSLf{
		H: hue.Degrees(c.R, c.G, c.B, hi, chroma),
		S: min(s, 1),
		L: l,
	}
}

// RGBf converts a normalized HSL color to RGB.
//
// A saturation below 1e-3 is treated as gray: every channel equals L.
func (c HSLf) RGBf() RGBf {
	s, l := c.S, c.L
	if s < hue.Epsilon {
		return RGBf{R: l, G: l, B: l}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	h := quant.WrapDegrees(c.H) / hueDegrees
	return RGBf{
		R: hue.Channel(p, q, h+1.0/3),
		G: hue.Channel(p, q, h),
		B: hue.Channel(p, q, h-1.0/3),
	}
}

// CMYKf converts a normalized HSL color to CMYK through RGB.
func (c HSLf) CMYKf() CMYKf {
	return c.RGBf().CMYKf()
}

// Quantize returns the display form of c.
// By default hue is rounded to the nearest degree (359.5 and above wrap to
// 0) and saturation and lightness are rounded to the nearest percent; pass
// WithRounding(RoundTruncate) to truncate instead.
func (c HSLf) Quantize(opts ...QuantizeOption) HSL {
	mode := roundingMode(opts, hslRounding)
	return HSL{
		//nolint:gosec // G115: quant.Degrees returns [0, 360)
		H: uint16(quant.Degrees(c.H, mode)),
		S: quantize8("HSL", "S", c.S, percentScale, mode),
		L: quantize8("HSL", "L", c.L, percentScale, mode),
	}
}

// Validate reports whether H lies in [0, 360) and S and L in [0, 1].
// The returned error wraps ErrOutOfRange.
func (c HSLf) Validate() error {
	if !(c.H >= 0 && c.H < hueDegrees) {
		return fmt.Errorf("iro: HSLf.H = %g, want [0, 360): %w", c.H, ErrOutOfRange)
	}
	return firstError(
		checkUnit("HSLf", "S", c.S),
		checkUnit("HSLf", "L", c.L),
	)
}

// ApproxEqual reports whether S and L are within tol of other and the hues
// are within tol degrees of each other around the wheel.
func (c HSLf) ApproxEqual(other HSLf, tol float64) bool {
	dh := math.Abs(quant.WrapDegrees(c.H) - quant.WrapDegrees(other.H))
	dh = min(dh, hueDegrees-dh)
	return dh <= tol &&
		scalar.EqualWithinAbs(c.S, other.S, tol) &&
		scalar.EqualWithinAbs(c.L, other.L, tol)
}

// Normalize returns the color with saturation and lightness divided by 100.
// The hue stays in degrees.
func (c HSL) Normalize() HSLf {
	return HSLf{
		H: float64(c.H % hueDegrees),
		S: float64(c.S) / percentScale,
		L: float64(c.L) / percentScale,
	}
}

// RGBf converts c to normalized RGB.
func (c HSL) RGBf() RGBf { return c.Normalize().RGBf() }

// RGB converts c to display RGB using the RGB truncation policy.
func (c HSL) RGB() RGB { return c.RGBf().Quantize() }

// CMYKf converts c to normalized CMYK.
func (c HSL) CMYKf() CMYKf { return c.RGBf().CMYKf() }

// CMYK converts c to percentage CMYK.
func (c HSL) CMYK() CMYK { return c.CMYKf().Quantize() }

// Validate reports whether H lies in [0, 360] and S and L in [0, 100].
// A hue of exactly 360 is accepted and treated as 0.
// The returned error wraps ErrOutOfRange.
func (c HSL) Validate() error {
	if c.H > hueDegrees {
		return fmt.Errorf("iro: HSL.H = %d, want [0, 360]: %w", c.H, ErrOutOfRange)
	}
	return firstError(
		checkPercent("HSL", "S", c.S),
		checkPercent("HSL", "L", c.L),
	)
}

// HSLf converts c to normalized HSL.
func (c RGB) HSLf() HSLf { return c.Normalize().HSLf() }

// HSL converts c to display HSL using the HSL rounding policy.
func (c RGB) HSL() HSL { return c.HSLf().Quantize() }

// String returns a debug representation such as "HSL(131, 46, 53)".
func (c HSL) String() string {
	return fmt.Sprintf("HSL(%d, %d, %d)", c.H, c.S, c.L)
}

// String returns a debug representation such as "HSLf(130.909, 0.458, 0.529)".
func (c HSLf) String() string {
	return fmt.Sprintf("HSLf(%.3f, %.3f, %.3f)", c.H, c.S, c.L)
}
