package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when an input cannot be interpreted as a colour.
var ErrInvalidColor = errors.New("invalid color input")

// Input is anything that can be resolved to a base colour for palette generation.
type Input interface {
	Resolve() (HSL, error)
}

// String is a colour given in any supported CSS syntax
// (hex, rgb(), rgba(), hsl(), hsla() or a named colour).
type String string

// Resolve parses the string into an HSL colour.
func (s String) Resolve() (HSL, error) {
	return Parse(string(s))
}

// Resolve validates an explicitly given HSL colour.
// Saturation and lightness above 1 are taken to be percentages.
func (c HSL) Resolve() (HSL, error) {
	s, l := c.S, c.L
	if s > 1 {
		s /= 100
	}
	if l > 1 {
		l /= 100
	}

	for _, v := range []float64{c.H, s, l} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return HSL{}, fmt.Errorf("%w: %v", ErrInvalidColor, c)
		}
	}
	if s < 0 || s > 1 || l < 0 || l > 1 {
		return HSL{}, fmt.Errorf("%w: %v", ErrInvalidColor, c)
	}

	return HSL{H: normaliseHue(c.H), S: s, L: l}, nil
}

// Parse parses a CSS colour string into HSL.
//
// Supported forms:
//   - hex: #rgb, #rgba, #rrggbb, #rrggbbaa (the leading # is optional)
//   - rgb(r, g, b) / rgba(r, g, b, a), components as 0-255 or percentages
//   - hsl(h, s%, l%) / hsla(h, s%, l%, a), hue in deg, rad, grad or turn
//   - space separated CSS Color 4 forms such as rgb(59 130 246 / 50%)
//   - named colours (e.g., "rebeccapurple", "steelblue") and "transparent"
//
// Alpha is accepted and ignored.
func Parse(input string) (HSL, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return HSL{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	var (
		rgb RGB
		err error
	)
	switch {
	case strings.HasPrefix(s, "rgb"):
		rgb, err = parseRGBFunc(s)
	case strings.HasPrefix(s, "hsl"):
		var c HSL
		c, err = parseHSLFunc(s)
		if err == nil {
			return c, nil
		}
	default:
		rgb, err = parseHexOrName(s)
	}
	if err != nil {
		return HSL{}, fmt.Errorf("%w: %s", ErrInvalidColor, input)
	}

	return RGBToHSL(rgb), nil
}


func parseHexOrName(s string) (RGB, error) {
	switch s {
	case "transparent":
		return RGB{}, nil
	case "rebeccapurple":
		return RGB{R: 102.0 / 255, G: 51.0 / 255, B: 153.0 / 255}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return RGB{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}, nil
	}
	return ParseHex(s)
}

// ParseHex parses a hex colour string in #rgb, #rgba, #rrggbb or #rrggbbaa form.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	for _, ch := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", ch) {
			return RGB{}, fmt.Errorf("invalid hex digit %q", ch)
		}
	}

	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		for _, ch := range hex[:3] {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		hex = b.String()
	case 6:
	case 8:
		hex = hex[:6]
	default:
		return RGB{}, fmt.Errorf("invalid hex length: %d", len(hex))
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}

// functionArgs splits the arguments of a CSS colour function such as
// "rgb(1, 2, 3)" or "hsl(1 2% 3% / 0.5)". The alpha component, if any,
// is checked and dropped.
func functionArgs(s, name string) ([]string, error) {
	rest := strings.TrimPrefix(s, name)
	rest = strings.TrimPrefix(rest, "a")
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return nil, fmt.Errorf("malformed %s() syntax", name)
	}
	body := strings.TrimSpace(rest[1 : len(rest)-1])

	var args []string
	if strings.Contains(body, ",") {
		// Legacy syntax: "rgb(r, g, b)" or "rgba(r, g, b, a)".
		for _, part := range strings.Split(body, ",") {
			args = append(args, strings.TrimSpace(part))
		}
		if len(args) == 4 {
			if _, err := parseNumber(strings.TrimSuffix(args[3], "%")); err != nil {
				return nil, fmt.Errorf("%s() alpha: %w", name, err)
			}
			args = args[:3]
		}
	} else {
		// Modern syntax: alpha only after a slash, "hsl(h s l / a)".
		if before, alpha, ok := strings.Cut(body, "/"); ok {
			if _, err := parseNumber(strings.TrimSuffix(strings.TrimSpace(alpha), "%")); err != nil {
				return nil, fmt.Errorf("%s() alpha: %w", name, err)
			}
			body = before
		}
		args = strings.Fields(body)
	}

	if len(args) != 3 {
		return nil, fmt.Errorf("%s() expects 3 components, got %d", name, len(args))
	}
	for _, a := range args {
		if a == "" {
			return nil, fmt.Errorf("%s() has an empty component", name)
		}
	}
	return args, nil
}

func parseRGBFunc(s string) (RGB, error) {
	args, err := functionArgs(s, "rgb")
	if err != nil {
		return RGB{}, err
	}

	var vals [3]float64
	for i, a := range args {
		if pct, ok := strings.CutSuffix(a, "%"); ok {
			v, err := parseNumber(pct)
			if err != nil {
				return RGB{}, err
			}
			vals[i] = v / 100
			continue
		}
		v, err := parseNumber(a)
		if err != nil {
			return RGB{}, err
		}
		vals[i] = v / 255
	}

	return RGB{R: clamp01(vals[0]), G: clamp01(vals[1]), B: clamp01(vals[2])}, nil
}

func parseHSLFunc(s string) (HSL, error) {
	args, err := functionArgs(s, "hsl")
	if err != nil {
		return HSL{}, err
	}

	h, err := parseHue(args[0])
	if err != nil {
		return HSL{}, err
	}
	sat, err := parsePercent(args[1])
	if err != nil {
		return HSL{}, err
	}
	light, err := parsePercent(args[2])
	if err != nil {
		return HSL{}, err
	}

	return HSL{H: normaliseHue(h), S: clamp01(sat), L: clamp01(light)}, nil
}

// parseHue parses a CSS hue, returning degrees.
func parseHue(a string) (float64, error) {
	units := []struct {
		suffix string
		scale  float64
	}{
		{"deg", 1},
		{"grad", 0.9},
		{"rad", 180 / math.Pi},
		{"turn", 360},
	}
	for _, u := range units {
		if v, ok := strings.CutSuffix(a, u.suffix); ok {
			f, err := parseNumber(strings.TrimSpace(v))
			if err != nil {
				return 0, err
			}
			return f * u.scale, nil
		}
	}
	return parseNumber(a)
}

// parsePercent parses "50%" or a bare number (CSS Color 4 allows both) as a fraction.
func parsePercent(a string) (float64, error) {
	v, err := parseNumber(strings.TrimSuffix(a, "%"))
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

// parseNumber parses a finite CSS number. strconv accepts "nan" and "inf",
// which are not valid colour components.
func parseNumber(a string) (float64, error) {
	v, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite number %q", a)
	}
	return v, nil
}
