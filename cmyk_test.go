package iro

import (
	"errors"
	"testing"
)

func TestRGB_CMYK(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want CMYK
	}{
		{"white", White, CMYK{0, 0, 0, 0}},
		{"black", Black, CMYK{0, 0, 0, 100}},
		{"no magenta", RGB{80, 191, 100}, CMYK{58, 0, 47, 25}},
		{"sea green", RGB{85, 191, 100}, CMYK{55, 0, 47, 25}},
		{"red", Red, CMYK{0, 100, 100, 0}},
		{"cyan", Cyan, CMYK{100, 0, 0, 0}},
		{"mid gray", RGB{128, 128, 128}, CMYK{0, 0, 0, 49}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.CMYK(); got != tt.want {
				t.Errorf("%v.CMYK() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGB_CMYKf(t *testing.T) {
	const tolerance = 1e-3

	got := RGB{85, 191, 100}.CMYKf()
	want := CMYKf{C: 0.555, M: 0, Y: 0.476, K: 0.251}
	if !got.ApproxEqual(want, tolerance) {
		t.Errorf("RGB(85, 191, 100).CMYKf() = %v, want %v", got, want)
	}
	if got.M != 0 {
		t.Errorf("magenta = %v, want exactly 0", got.M)
	}
}

func TestCMYKf_Quantize_Rounding(t *testing.T) {
	in := RGB{85, 191, 100}.CMYKf()
	tests := []struct {
		name string
		opts []QuantizeOption
		want CMYK
	}{
		{"default truncates", nil, CMYK{55, 0, 47, 25}},
		{"truncate", []QuantizeOption{WithRounding(RoundTruncate)}, CMYK{55, 0, 47, 25}},
		{"nearest", []QuantizeOption{WithRounding(RoundNearest)}, CMYK{55, 0, 48, 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := in.Quantize(tt.opts...); got != tt.want {
				t.Errorf("%v.Quantize() = %v, want %v", in, got, tt.want)
			}
		})
	}
}

func TestCMYKf_RGBf(t *testing.T) {
	tests := []struct {
		name string
		in   CMYKf
		want RGB
	}{
		{"no magenta", CMYKf{C: 0.58, M: 0, Y: 0.47, K: 0.25}, RGB{80, 191, 101}},
		{"white", CMYKf{}, White},
		{"black", CMYKf{K: 1}, Black},
		{"black with ink", CMYKf{C: 1, M: 1, Y: 1, K: 1}, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.RGBf().Quantize(); got != tt.want {
				t.Errorf("%v.RGBf().Quantize() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCMYK_RGB(t *testing.T) {
	tests := []struct {
		in   CMYK
		want RGB
	}{
		{CMYK{58, 0, 47, 25}, RGB{80, 191, 101}},
		{CMYK{0, 0, 0, 0}, White},
		{CMYK{0, 0, 0, 100}, Black},
		{CMYK{0, 100, 100, 0}, Red},
	}

	for _, tt := range tests {
		if got := tt.in.RGB(); got != tt.want {
			t.Errorf("%v.RGB() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestCMYK_BlackGuard checks that pure black never divides by 1-K.
func TestCMYK_BlackGuard(t *testing.T) {
	got := RGBf{}.CMYKf()
	if got != (CMYKf{K: 1}) {
		t.Errorf("RGBf{}.CMYKf() = %v, want CMYKf{K: 1}", got)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("black CMYKf invalid: %v", err)
	}
}

// TestCMYK_RoundTripFloat converts RGB → CMYKf → RGB for a grid of colors.
// The float path is exact up to the truncation nudge.
func TestCMYK_RoundTripFloat(t *testing.T) {
	for r := 0; r <= 255; r += 3 {
		for g := 0; g <= 255; g += 3 {
			for b := 0; b <= 255; b += 3 {
				in := RGB{uint8(r), uint8(g), uint8(b)}
				got := in.CMYKf().RGBf().Quantize()
				if maxChannelDiff(in, got) > 1 {
					t.Fatalf("%v → %v → %v, drift > 1", in, in.CMYKf(), got)
				}
			}
		}
	}
}

// TestCMYK_RoundTripInteger converts through percentage CMYK. Truncating
// C and K to whole percents can move an RGB channel by up to ~5 steps.
func TestCMYK_RoundTripInteger(t *testing.T) {
	const maxDrift = 6

	for r := 0; r <= 255; r += 5 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 5 {
				in := RGB{uint8(r), uint8(g), uint8(b)}
				cmyk := in.CMYK()
				got := cmyk.RGB()
				if d := maxChannelDiff(in, got); d > maxDrift {
					t.Fatalf("%v → %v → %v, drift %d > %d", in, cmyk, got, d, maxDrift)
				}
			}
		}
	}
}

func TestCMYK_Domain(t *testing.T) {
	for r := 0; r <= 255; r += 5 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 5 {
				in := RGB{uint8(r), uint8(g), uint8(b)}
				if err := in.CMYK().Validate(); err != nil {
					t.Fatalf("%v.CMYK(): %v", in, err)
				}
				if err := in.CMYKf().Validate(); err != nil {
					t.Fatalf("%v.CMYKf(): %v", in, err)
				}
			}
		}
	}
}

func TestNewCMYK_Clamps(t *testing.T) {
	got := NewCMYK(101, 50, 255, 100)
	want := CMYK{100, 50, 100, 100}
	if got != want {
		t.Errorf("NewCMYK(101, 50, 255, 100) = %v, want %v", got, want)
	}

	gotf := NewCMYKf(-0.5, 0.5, 1.5, 0.25)
	wantf := CMYKf{0, 0.5, 1, 0.25}
	if gotf != wantf {
		t.Errorf("NewCMYKf(-0.5, 0.5, 1.5, 0.25) = %v, want %v", gotf, wantf)
	}
}

func TestCMYK_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      CMYK
		wantErr bool
	}{
		{"valid", CMYK{58, 0, 47, 25}, false},
		{"bounds", CMYK{100, 100, 100, 100}, false},
		{"cyan over", CMYK{C: 101}, true},
		{"key over", CMYK{K: 200}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("%v.Validate() = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Validate() error %v does not wrap ErrOutOfRange", err)
			}
		})
	}
}

func TestCMYKf_Validate(t *testing.T) {
	if err := (CMYKf{C: 0.5, K: 1}).Validate(); err != nil {
		t.Errorf("valid CMYKf rejected: %v", err)
	}
	err := CMYKf{Y: 1.01}.Validate()
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("CMYKf{Y: 1.01}.Validate() = %v, want ErrOutOfRange", err)
	}
}

func TestCMYK_String(t *testing.T) {
	if got := (CMYK{58, 0, 47, 25}).String(); got != "CMYK(58, 0, 47, 25)" {
		t.Errorf("String() = %q", got)
	}
	if got := (CMYKf{C: 0.5, K: 0.25}).String(); got != "CMYKf(0.500, 0.000, 0.000, 0.250)" {
		t.Errorf("String() = %q", got)
	}
}

// maxChannelDiff returns the largest per-channel difference between a and b.
func maxChannelDiff(a, b RGB) int {
	d := 0
	for _, p := range [][2]uint8{{a.R, b.R}, {a.G, b.G}, {a.B, b.B}} {
		x := int(p[0]) - int(p[1])
		if x < 0 {
			x = -x
		}
		d = max(d, x)
	}
	return d
}
