package palette

import (
	"fmt"
	"time"

	"github.com/optics-ui/optics/internal/colour"
)

// Defaults applied when the caller leaves a value unset.
const (
	DefaultName       = "palette"
	DefaultOpticsName = "primary"
	DefaultStops      = 16
)

// Generator builds palettes. It holds no mutable state and is safe for
// concurrent use.
type Generator struct {
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock used to stamp palette metadata.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// GenerateParametric builds a parametric palette using the wall clock.
func GenerateParametric(input colour.Input, name string, totalStops int) (*Parametric, error) {
	return defaultGenerator.Parametric(input, name, totalStops)
}

// GenerateOptics builds an Optics palette using the wall clock.
func GenerateOptics(input colour.Input, name string) (*Optics, error) {
	return defaultGenerator.Optics(input, name)
}

// Parametric builds a palette of totalStops stops from light to dark.
// The stop count is not range checked beyond defaulting non-positive values.
func (g *Generator) Parametric(input colour.Input, name string, totalStops int) (*Parametric, error) {
	if name == "" {
		name = DefaultName
	}
	if totalStops <= 0 {
		totalStops = DefaultStops
	}

	base, err := resolve(input)
	if err != nil {
		return nil, err
	}

	lightnesses := LightnessScale(totalStops)
	stops := make([]ParametricStop, len(lightnesses))
	for i, lightness := range lightnesses {
		bg := colour.HSL{
			H: base.H,
			S: AdjustSaturation(base.S, lightness),
			L: lightness,
		}

		light, dark := DeriveForegrounds(bg)
		stops[i] = ParametricStop{
			Stop:       i,
			Background: colour.ValueOf(bg),
			Foregrounds: Foregrounds{
				Light: newForeground(light),
				Dark:  newForeground(dark),
			},
			RecommendedForeground: Recommend(light, dark),
		}
	}

	return &Parametric{
		Name:      name,
		BaseColor: colour.ValueOf(base),
		Stops:     stops,
		Metadata: Metadata{
			GeneratedAt: g.now(),
			TotalStops:  totalStops,
		},
	}, nil
}

// Optics builds a palette on the fixed Optics scale. Every stop keeps the
// base hue and saturation; only lightness changes.
func (g *Generator) Optics(input colour.Input, name string) (*Optics, error) {
	if name == "" {
		name = DefaultOpticsName
	}

	base, err := resolve(input)
	if err != nil {
		return nil, err
	}

	h := base.H
	s := base.S * 100

	stops := make([]OpticsStop, len(OpticsScale))
	for i, entry := range OpticsScale {
		stop := OpticsStop{
			Name: entry.Name,
			Background: ModeValue{
				Light: colour.NewValue(h, s, entry.Light.Background),
				Dark:  colour.NewValue(h, s, entry.Dark.Background),
			},
			On: ModeValue{
				Light: colour.NewValue(h, s, entry.Light.On),
				Dark:  colour.NewValue(h, s, entry.Dark.On),
			},
			OnAlt: ModeValue{
				Light: colour.NewValue(h, s, entry.Light.OnAlt),
				Dark:  colour.NewValue(h, s, entry.Dark.OnAlt),
			},
		}
		stop.LightModeContrast = ContrastPair{
			On:    colour.ContrastRatio(stop.Background.Light.RGB, stop.On.Light.RGB),
			OnAlt: colour.ContrastRatio(stop.Background.Light.RGB, stop.OnAlt.Light.RGB),
		}
		stop.DarkModeContrast = ContrastPair{
			On:    colour.ContrastRatio(stop.Background.Dark.RGB, stop.On.Dark.RGB),
			OnAlt: colour.ContrastRatio(stop.Background.Dark.RGB, stop.OnAlt.Dark.RGB),
		}
		stops[i] = stop
	}

	return &Optics{
		Name: name,
		BaseColor: OpticsBaseColor{
			H:     h,
			S:     s,
			L:     base.L * 100,
			Value: colour.ValueOf(base),
		},
		Stops: stops,
		Metadata: Metadata{
			GeneratedAt: g.now(),
			TotalStops:  len(OpticsScale),
			Format:      KindOptics,
		},
	}, nil
}

func resolve(input colour.Input) (colour.HSL, error) {
	if input == nil {
		return colour.HSL{}, fmt.Errorf("%w: no colour given", colour.ErrInvalidColor)
	}
	return input.Resolve()
}

func newForeground(c Candidate) Foreground {
	return Foreground{
		Value:    colour.ValueOf(c.Colour),
		Contrast: c.Contrast,
		WCAGAA:   colour.MeetsAA(c.Contrast, false),
		WCAGAAA:  colour.MeetsAAA(c.Contrast, false),
	}
}
