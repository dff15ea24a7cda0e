// Package hue implements the hexcone sector math shared by the RGB ↔ HSL
// transforms.
//
// Both directions work on normalized channels in [0, 1]. Degrees maps an
// RGB triple onto the 0-360° wheel, Channel maps a point on the wheel back
// to one RGB channel.
//
// References:
//   - https://www.w3.org/TR/css-color-3/#hsl-color
//   - https://stackoverflow.com/questions/39118528/rgb-to-hsl-conversion
package hue

import "gonum.org/v1/gonum/floats/scalar"

// Epsilon is the tolerance used to decide which channel attains the
// maximum and whether a color has any chroma at all.
const Epsilon = 1e-3

// Degrees returns the hue in [0, 360) of the normalized color (r, g, b)
// whose largest channel is hi and whose chroma (hi - lo) is chroma.
//
// chroma must be at least Epsilon; achromatic colors have no hue and are
// handled by the caller.
//
// The sector is chosen by comparing hi with r, g and b in that order using
// an Epsilon-tolerant equality, so two nearly equal channels never select
// a sector by rounding accident.
func Degrees(r, g, b, hi, chroma float64) float64 {
	var segment float64
	switch {
	case scalar.EqualWithinAbs(hi, r, Epsilon):
		segment = (g - b) / chroma
		if segment < 0 {
			segment += 6
		}
	case scalar.EqualWithinAbs(hi, g, Epsilon):
		segment = (b-r)/chroma + 2
	default:
		segment = (r-g)/chroma + 4
	}

	h := 60 * segment
	if h >= 360 {
		h -= 360
	}
	return h
}

// Channel evaluates the piecewise hue-to-channel function at t, where t is
// the normalized hue (degrees/360) already shifted for the channel
// (+1/3 for red, 0 for green, -1/3 for blue). p and q are the lower and
// upper channel bounds derived from saturation and lightness.
func Channel(p, q, t float64) float64 {
	if t < 0 {
		t++
	} else if t >= 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
