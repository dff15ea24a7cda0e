package iro

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats/scalar"
)

// CMYK is a subtractive color in display form: cyan, magenta, yellow and
// key (black) percentages in [0, 100].
type CMYK struct {
	C, M, Y, K uint8
}

// CMYKf is a normalized CMYK color. Each channel is in [0, 1].
type CMYKf struct {
	C, M, Y, K float64
}

// NewCMYK creates a color from percentages. Values above 100 are clamped.
func NewCMYK(c, m, y, k uint8) CMYK {
	return CMYK{
		C: percent("CMYK", "C", c),
		M: percent("CMYK", "M", m),
		Y: percent("CMYK", "Y", y),
		K: percent("CMYK", "K", k),
	}
}

// NewCMYKf creates a normalized color. Channels outside [0, 1] are clamped.
func NewCMYKf(c, m, y, k float64) CMYKf {
	return CMYKf{
		C: unit("CMYKf", "C", c),
		M: unit("CMYKf", "M", m),
		Y: unit("CMYKf", "Y", y),
		K: unit("CMYKf", "K", k),
	}
}

// CMYKf converts a normalized RGB color to CMYK.
//
// K is the smallest of 1-R, 1-G, 1-B; the remaining ink is rescaled by
// 1-K. Pure black (K = 1) returns C = M = Y = 0.
func (c RGBf) CMYKf() CMYKf {
	cc, mc, yc := 1-c.R, 1-c.G, 1-c.B
	k := min(cc, mc, yc)
	if k >= 1-blackEpsilon {
		if l, ok := debugLogger(); ok {
			l.Debug("iro: black guard, chromatic ink forced to zero", slog.Float64("k", k))
		}
		return CMYKf{K: 1}
	}
	d := 1 - k
	return CMYKf{
		C: (cc - k) / d,
		M: (mc - k) / d,
		Y: (yc - k) / d,
		K: k,
	}
}

// RGBf converts a normalized CMYK color to RGB.
func (c CMYKf) RGBf() RGBf {
	return RGBf{
		R: (1 - c.C) * (1 - c.K),
		G: (1 - c.M) * (1 - c.K),
		B: (1 - c.Y) * (1 - c.K),
	}
}

// HSLf converts a normalized CMYK color to HSL through RGB.
func (c CMYKf) HSLf() HSLf {
	return c.RGBf().HSLf()
}

// Quantize returns the percentage form of c.
// By default each channel is multiplied by 100 and truncated toward zero;
// pass WithRounding(RoundNearest) to round instead.
func (c CMYKf) Quantize(opts ...QuantizeOption) CMYK {
	mode := roundingMode(opts, cmykRounding)
	return CMYK{
		C: quantize8("CMYK", "C", c.C, percentScale, mode),
		M: quantize8("CMYK", "M", c.M, percentScale, mode),
		Y: quantize8("CMYK", "Y", c.Y, percentScale, mode),
		K: quantize8("CMYK", "K", c.K, percentScale, mode),
	}
}

// Validate reports whether every channel lies in [0, 1].
// The returned error wraps ErrOutOfRange.
func (c CMYKf) Validate() error {
	return firstError(
		checkUnit("CMYKf", "C", c.C),
		checkUnit("CMYKf", "M", c.M),
		checkUnit("CMYKf", "Y", c.Y),
		checkUnit("CMYKf", "K", c.K),
	)
}

// ApproxEqual reports whether every channel of c is within tol of other.
func (c CMYKf) ApproxEqual(other CMYKf, tol float64) bool {
	return scalar.EqualWithinAbs(c.C, other.C, tol) &&
		scalar.EqualWithinAbs(c.M, other.M, tol) &&
		scalar.EqualWithinAbs(c.Y, other.Y, tol) &&
		scalar.EqualWithinAbs(c.K, other.K, tol)
}

// Normalize returns the color with each percentage divided by 100.
func (c CMYK) Normalize() CMYKf {
	return CMYKf{
		C: float64(c.C) / percentScale,
		M: float64(c.M) / percentScale,
		Y: float64(c.Y) / percentScale,
		K: float64(c.K) / percentScale,
	}
}

// RGBf converts c to normalized RGB.
func (c CMYK) RGBf() RGBf { return c.Normalize().RGBf() }

// RGB converts c to display RGB using the RGB truncation policy.
func (c CMYK) RGB() RGB { return c.RGBf().Quantize() }

// HSLf converts c to normalized HSL.
func (c CMYK) HSLf() HSLf { return c.RGBf().HSLf() }

// HSL converts c to display HSL.
func (c CMYK) HSL() HSL { return c.HSLf().Quantize() }

// Validate reports whether every percentage lies in [0, 100].
// The returned error wraps ErrOutOfRange.
func (c CMYK) Validate() error {
	return firstError(
		checkPercent("CMYK", "C", c.C),
		checkPercent("CMYK", "M", c.M),
		checkPercent("CMYK", "Y", c.Y),
		checkPercent("CMYK", "K", c.K),
	)
}

// CMYKf converts c to normalized CMYK.
func (c RGB) CMYKf() CMYKf { return c.Normalize().CMYKf() }

// CMYK converts c to percentage CMYK using the CMYK truncation policy.
func (c RGB) CMYK() CMYK { return c.CMYKf().Quantize() }

// String returns a debug representation such as "CMYK(58, 0, 47, 25)".
func (c CMYK) String() string {
	return fmt.Sprintf("CMYK(%d, %d, %d, %d)", c.C, c.M, c.Y, c.K)
}

// String returns a debug representation such as
// "CMYKf(0.581, 0.000, 0.476, 0.251)".
func (c CMYKf) String() string {
	return fmt.Sprintf("CMYKf(%.3f, %.3f, %.3f, %.3f)", c.C, c.M, c.Y, c.K)
}
