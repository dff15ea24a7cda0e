package iro

import (
	"log/slog"

	"github.com/gogpu/iro/internal/quant"
)

// Display scales. Hue is not scaled: it stays in degrees in both forms.
const (
	rgbScale     = 255
	percentScale = 100
	hueDegrees   = 360
)

// Default quantization policies. RGB and CMYK truncate like 8-bit channel
// packing does; HSL rounds to nearest.
const (
	rgbRounding  = quant.Truncate
	cmykRounding = quant.Truncate
	hslRounding  = quant.Nearest
)

// Epsilons for the division-by-zero guards.
const (
	// blackEpsilon is how close K must be to 1 for RGB → CMYK to treat the
	// color as pure black.
	blackEpsilon = 1e-9
)

// quantize scales a normalized channel to an integer in [0, limit] and
// logs when the input had to be clamped.
func quantize(model, channel string, v, scale, limit float64, mode quant.Mode) float64 {
	n, clamped := quant.Scale(v, scale, limit, mode)
	if clamped {
		if l, ok := debugLogger(); ok {
			l.Debug("iro: quantize clamped out-of-range value",
				slog.String("model", model),
				slog.String("channel", channel),
				slog.Float64("value", v),
				slog.Float64("result", n),
			)
		}
	}
	return n
}

// quantize8 is quantize narrowed to a uint8 channel.
func quantize8(model, channel string, v, scale float64, mode quant.Mode) uint8 {
	//nolint:gosec // G115: quantize clamps to [0, scale] and scale ≤ 255
	return uint8(quantize(model, channel, v, scale, scale, mode))
}

// percent clamps a display percentage to [0, 100].
func percent(model, channel string, v uint8) uint8 {
	if v <= percentScale {
		return v
	}
	if l, ok := debugLogger(); ok {
		l.Debug("iro: percentage clamped",
			slog.String("model", model),
			slog.String("channel", channel),
			slog.Int("value", int(v)),
		)
	}
	return percentScale
}

// unit clamps a normalized channel to [0, 1].
func unit(model, channel string, v float64) float64 {
	c := quant.Clamp01(v)
	if c != v {
		if l, ok := debugLogger(); ok {
			l.Debug("iro: normalized value clamped",
				slog.String("model", model),
				slog.String("channel", channel),
				slog.Float64("value", v),
			)
		}
	}
	return c
}
