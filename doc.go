// Package iro converts colors between RGB, CMYK and HSL.
//
// # Overview
//
// Every model has two value types: an integer display form and a
// normalized float form.
//
//	RGB   R, G, B     uint8    0-255
//	RGBf  R, G, B     float64  0-1
//	CMYK  C, M, Y, K  uint8    0-100
//	CMYKf C, M, Y, K  float64  0-1
//	HSL   H           uint16   0-359 (degrees)
//	      S, L        uint8    0-100
//	HSLf  H           float64  [0, 360) degrees, not unit-scaled
//	      S, L        float64  0-1
//
// All types are small comparable structs, passed by value and never
// mutated. Conversions are pure functions and safe for concurrent use.
//
// # Quick Start
//
//	import "github.com/gogpu/iro"
//
//	c := iro.RGB{R: 80, G: 190, B: 100}
//	fmt.Println(c.HSL())  // HSL(131, 46, 53)
//	fmt.Println(c.CMYK()) // CMYK(57, 0, 47, 25)
//
// # Conversion Path
//
// Every conversion runs display form → Normalize → float transform →
// Quantize. RGB is the hub: CMYK ↔ HSL goes through RGBf.
//
// # Rounding Policy
//
// Quantize is the only lossy step. By default:
//   - RGB truncates toward zero (8-bit channel packing)
//   - CMYK truncates toward zero
//   - HSL rounds to nearest; a hue that rounds to 360 wraps to 0
//
// Truncation ignores float noise below 1e-9, so 0.58 quantizes to 58 and
// not 57. Pass WithRounding to override the default for a single call.
//
// Round trips through the float forms reproduce RGB within one step per
// channel. Round trips through integer CMYK lose up to one percent per
// channel, which can move an RGB channel by a few steps.
//
// # Edge Cases
//
// Achromatic colors (chroma below 1e-3) get hue 0 and saturation 0. Pure
// black converts to CMYK(0, 0, 0, 100). Quantize clamps out-of-range
// values instead of overflowing; use Validate for strict checking.
//
// # Logging
//
// iro is silent by default. SetLogger installs a [log/slog] logger that
// receives debug records when an edge-case guard fires or a value is
// clamped.
package iro
