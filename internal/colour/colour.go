// Package colour provides the colour model used by palette generation:
// HSL and RGB representations, parsing of CSS colour syntax, and WCAG
// contrast evaluation.
package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL represents a colour in HSL space.
// H is the hue in degrees (0-360), S and L are fractions (0-1).
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the colour in CSS hsl() notation.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", c.H, c.S*100, c.L*100)
}

// RGB represents a colour in sRGB space with components as fractions (0-1).
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Hex returns the colour as a 6-digit lowercase hex string (e.g., "#1a2b3c").
// Components are clamped to [0, 1] and rounded to the nearest byte.
func (c RGB) Hex() string {
	return c.colorful().Clamped().Hex()
}

// Bytes returns the colour as 8-bit components.
func (c RGB) Bytes() (r, g, b uint8) {
	r, g, b = c.colorful().Clamped().RGB255()
	return r, g, b
}

// String returns the RGB colour in CSS rgb() notation using 8-bit components.
func (c RGB) String() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Value is an immutable projection of a single colour into HSL, RGB and hex.
// The hex string is always derived from the RGB components.
type Value struct {
	HSL HSL    `json:"hsl"`
	RGB RGB    `json:"rgb"`
	Hex string `json:"hex"`
}

// NewValue builds a Value from a hue in degrees and saturation/lightness as
// percentages (0-100). This is the primitive every palette stop is built with.
func NewValue(h, s, l float64) Value {
	return ValueOf(HSL{H: h, S: s / 100, L: l / 100})
}

// ValueOf builds a Value from an HSL colour with fractional saturation and
// lightness. The HSL triple is kept as given; RGB and hex are derived from it.
func ValueOf(c HSL) Value {
	rgb := HSLToRGB(c)
	return Value{
		HSL: c,
		RGB: rgb,
		Hex: rgb.Hex(),
	}
}

// HSLToRGB converts an HSL colour to RGB.
func HSLToRGB(c HSL) RGB {
	col := colorful.Hsl(normaliseHue(c.H), clamp01(c.S), clamp01(c.L))
	return RGB{R: col.R, G: col.G, B: col.B}
}

// RGBToHSL converts an RGB colour to HSL. Achromatic colours report a hue of 0.
func RGBToHSL(c RGB) HSL {
	h, s, l := c.colorful().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSL{H: h, S: s, L: l}
}

// normaliseHue wraps a hue in degrees into [0, 360).
func normaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
