// Package palette generates parametric and Optics colour palettes from a
// single base colour.
package palette

import "math"

// Lightness window for parametric scales, in percent. Stops never reach
// pure white or pure black.
const (
	maxLightness = 95.0
	minLightness = 5.0
)

// LightnessScale returns totalStops lightness values (fractions) from light
// to dark. Positions are eased with a quadratic in-out curve so that more
// stops fall in the mid-range and fewer bunch up at the extremes.
// A single stop sits at the light end; totalStops <= 0 yields nil.
func LightnessScale(totalStops int) []float64 {
	if totalStops <= 0 {
		return nil
	}

	lightnesses := make([]float64, totalStops)
	for i := range lightnesses {
		var position float64
		if totalStops > 1 {
			position = float64(i) / float64(totalStops-1)
		}

		eased := easeInOutQuad(position)
		lightness := maxLightness - eased*(maxLightness-minLightness)
		lightnesses[i] = lightness / 100
	}

	return lightnesses
}

// easeInOutQuad maps t in [0, 1] onto a symmetric quadratic ease-in-out curve.
func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// AdjustSaturation scales saturation according to lightness.
// Near-white stops lose saturation rapidly, near-black stops keep between
// half and all of it, and the mid-range gets a slight boost capped at 1.
func AdjustSaturation(baseSaturation, lightness float64) float64 {
	switch {
	case lightness > 0.9:
		s := baseSaturation * (1 - (lightness-0.9)*8)
		return math.Max(0, math.Min(baseSaturation, s))
	case lightness < 0.2:
		return baseSaturation * (0.5 + lightness*2.5)
	default:
		return math.Min(baseSaturation*1.1, 1)
	}
}
