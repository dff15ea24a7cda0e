package iro

import (
	"slices"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Named returns the color for an SVG 1.1 / CSS keyword such as
// "seagreen" or "DarkSlateGray". Matching ignores case (full Unicode case
// folding) and surrounding white space.
//
// The second result is false if the name is not a known keyword.
func Named(name string) (RGB, bool) {
	// A cases.Caser is stateful and must not be shared between goroutines.
	key := cases.Fold().String(strings.TrimSpace(name))
	c, ok := colornames.Map[key]
	if !ok {
		return RGB{}, false
	}
	return RGB{R: c.R, G: c.G, B: c.B}, true
}

// Names returns the known color keywords in sorted order.
// The returned slice is a copy and may be modified by the caller.
func Names() []string {
	return slices.Clone(colornames.Names)
}
