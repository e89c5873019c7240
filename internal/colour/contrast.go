package colour

import "math"

// WCAG 2.0 contrast thresholds.
const (
	// AANormal is the minimum contrast for AA compliance with normal text.
	AANormal = 4.5
	// AALarge is the minimum contrast for AA compliance with large text (18pt+).
	AALarge = 3.0
	// AAANormal is the minimum contrast for AAA compliance with normal text.
	AAANormal = 7.0
	// AAALarge is the minimum contrast for AAA compliance with large text.
	AAALarge = 4.5
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	r := linearise(c.R)
	g := linearise(c.G)
	b := linearise(c.B)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearise applies the sRGB transfer function to a single channel.
func linearise(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// The ratio is symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// MeetsAA reports whether a contrast ratio meets WCAG AA.
// AA requires 4.5:1 for normal text, 3:1 for large text.
func MeetsAA(ratio float64, largeText bool) bool {
	if largeText {
		return ratio >= AALarge
	}
	return ratio >= AANormal
}

// MeetsAAA reports whether a contrast ratio meets WCAG AAA.
// AAA requires 7:1 for normal text, 4.5:1 for large text.
func MeetsAAA(ratio float64, largeText bool) bool {
	if largeText {
		return ratio >= AAALarge
	}
	return ratio >= AAANormal
}

// Level classifies a contrast ratio for labelling.
type Level string

const (
	LevelAAA     Level = "AAA"
	LevelAA      Level = "AA"
	LevelAALarge Level = "AA Large"
	LevelFail    Level = "Fail"
)

// LevelFor returns the highest WCAG level a contrast ratio achieves.
func LevelFor(ratio float64) Level {
	switch {
	case ratio >= AAANormal:
		return LevelAAA
	case ratio >= AANormal:
		return LevelAA
	case ratio >= AALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}
