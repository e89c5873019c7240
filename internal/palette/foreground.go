package palette

import "github.com/optics-ui/optics/internal/colour"

// ForegroundKind identifies which foreground candidate a stop recommends.
type ForegroundKind string

const (
	ForegroundLight ForegroundKind = "light"
	ForegroundDark  ForegroundKind = "dark"
)

// Foreground candidate parameters, as fractions of the background.
const (
	lightForegroundSaturation = 0.10
	lightForegroundLightness  = 0.98
	darkForegroundSaturation  = 0.15
	darkForegroundLightness   = 0.08
)

// Candidate is a foreground colour paired with its contrast against a background.
type Candidate struct {
	Colour   colour.HSL
	Contrast float64
}

// DeriveForegrounds derives a near-white and a near-black foreground for bg.
// Both keep the background hue with most of its saturation removed, so text
// carries a faint tint of the palette rather than pure white or black.
func DeriveForegrounds(bg colour.HSL) (light, dark Candidate) {
	bgRGB := colour.HSLToRGB(bg)

	light.Colour = colour.HSL{H: bg.H, S: bg.S * lightForegroundSaturation, L: lightForegroundLightness}
	light.Contrast = colour.ContrastRatio(bgRGB, colour.HSLToRGB(light.Colour))

	dark.Colour = colour.HSL{H: bg.H, S: bg.S * darkForegroundSaturation, L: darkForegroundLightness}
	dark.Contrast = colour.ContrastRatio(bgRGB, colour.HSLToRGB(dark.Colour))

	return light, dark
}

// Recommend picks the candidate with the higher contrast. Equal contrast
// resolves to dark.
func Recommend(light, dark Candidate) ForegroundKind {
	if light.Contrast > dark.Contrast {
		return ForegroundLight
	}
	return ForegroundDark
}
