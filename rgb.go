package iro

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// RGB is a color in display form: red, green and blue channels in [0, 255].
//
// RGB is the anchor of the package; every other model converts through
// its normalized form RGBf.
type RGB struct {
	R, G, B uint8
}

// RGBf is a normalized RGB color. Each channel is in [0, 1].
type RGBf struct {
	R, G, B float64
}

// NewRGB creates a color from 8-bit channels.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// NewRGBf creates a normalized color. Channels outside [0, 1] are clamped.
func NewRGBf(r, g, b float64) RGBf {
	return RGBf{
		R: unit("RGBf", "R", r),
		G: unit("RGBf", "G", g),
		B: unit("RGBf", "B", b),
	}
}

// Normalize returns the color with each channel divided by 255.
func (c RGB) Normalize() RGBf {
	return RGBf{
		R: float64(c.R) / rgbScale,
		G: float64(c.G) / rgbScale,
		B: float64(c.B) / rgbScale,
	}
}

// Quantize returns the 8-bit display form of c.
// By default each channel is multiplied by 255 and truncated toward zero;
// pass WithRounding(RoundNearest) to round instead. Out-of-range channels
// are clamped to [0, 255].
func (c RGBf) Quantize(opts ...QuantizeOption) RGB {
	mode := roundingMode(opts, rgbRounding)
	return RGB{
		R: quantize8("RGB", "R", c.R, rgbScale, mode),
		G: quantize8("RGB", "G", c.G, rgbScale, mode),
		B: quantize8("RGB", "B", c.B, rgbScale, mode),
	}
}

// Validate reports whether every channel lies in [0, 1].
// The returned error wraps ErrOutOfRange.
func (c RGBf) Validate() error {
	return firstError(
		checkUnit("RGBf", "R", c.R),
		checkUnit("RGBf", "G", c.G),
		checkUnit("RGBf", "B", c.B),
	)
}

// ApproxEqual reports whether every channel of c is within tol of other.
func (c RGBf) ApproxEqual(other RGBf, tol float64) bool {
	return scalar.EqualWithinAbs(c.R, other.R, tol) &&
		scalar.EqualWithinAbs(c.G, other.G, tol) &&
		scalar.EqualWithinAbs(c.B, other.B, tol)
}

// String returns a debug representation such as "RGB(80, 191, 100)".
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// String returns a debug representation such as "RGBf(0.314, 0.749, 0.392)".
func (c RGBf) String() string {
	return fmt.Sprintf("RGBf(%.3f, %.3f, %.3f)", c.R, c.G, c.B)
}
