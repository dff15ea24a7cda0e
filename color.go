package iro

import (
	"image/color"
	"math"

	"github.com/gogpu/iro/internal/quant"
)

// Verify at compile time that the display forms implement color.Color.
var (
	_ color.Color = RGB{}
	_ color.Color = CMYK{}
	_ color.Color = HSL{}
)

// Color models for use with image.Image and color.Palette.
// Alpha is ignored: every converted color is treated as opaque and
// non-premultiplied.
var (
	RGBModel  color.Model = color.ModelFunc(rgbModel)
	CMYKModel color.Model = color.ModelFunc(cmykModel)
	HSLModel  color.Model = color.ModelFunc(hslModel)
)

// RGBA implements color.Color. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// RGBA implements color.Color using the full-precision RGB conversion,
// not the 8-bit display form.
func (c CMYK) RGBA() (r, g, b, a uint32) {
	return rgba16(c.RGBf())
}

// RGBA implements color.Color using the full-precision RGB conversion,
// not the 8-bit display form.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return rgba16(c.RGBf())
}

// FromColor converts a standard color.Color to display RGB.
// Premultiplied colors are un-premultiplied first; alpha is dropped.
func FromColor(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// fromColorf converts a standard color.Color to normalized RGB at 16-bit
// precision.
func fromColorf(c color.Color) RGBf {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBf{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
	}
}

// rgba16 scales a normalized color to opaque 16-bit color.Color channels.
func rgba16(c RGBf) (r, g, b, a uint32) {
	return scale16(c.R), scale16(c.G), scale16(c.B), 0xffff
}

// scale16 maps a normalized channel to [0, 0xffff].
func scale16(v float64) uint32 {
	return uint32(math.Round(quant.Clamp01(v) * 0xffff))
}

func rgbModel(c color.Color) color.Color {
	return FromColor(c)
}

func cmykModel(c color.Color) color.Color {
	if cmyk, ok := c.(CMYK); ok {
		return cmyk
	}
	return fromColorf(c).CMYKf().Quantize()
}

func hslModel(c color.Color) color.Color {
	if hsl, ok := c.(HSL); ok {
		return hsl
	}
	return fromColorf(c).HSLf().Quantize()
}

// Common colors
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Green   = RGB{0, 255, 0}
	Blue    = RGB{0, 0, 255}
	Yellow  = RGB{255, 255, 0}
	Cyan    = RGB{0, 255, 255}
	Magenta = RGB{255, 0, 255}
)
