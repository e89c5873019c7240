package palette

import (
	"time"

	"github.com/optics-ui/optics/internal/colour"
)

// Kind discriminates the two palette variants.
type Kind string

const (
	KindParametric Kind = "parametric"
	KindOptics     Kind = "optics"
)

// Palette is the read-only view shared by both palette variants.
// Exporters type-switch on *Parametric and *Optics for the full data.
type Palette interface {
	PaletteName() string
	Kind() Kind
	Base() colour.Value
	StopCount() int
}

// Foreground is a foreground colour with its contrast against the stop background.
type Foreground struct {
	colour.Value
	Contrast float64 `json:"contrast"`
	WCAGAA   bool    `json:"wcagAA"`
	WCAGAAA  bool    `json:"wcagAAA"`
}

// Foregrounds holds both foreground candidates of a parametric stop.
type Foregrounds struct {
	Light Foreground `json:"light"`
	Dark  Foreground `json:"dark"`
}

// Get returns the foreground of the given kind.
func (f Foregrounds) Get(kind ForegroundKind) Foreground {
	if kind == ForegroundLight {
		return f.Light
	}
	return f.Dark
}

// ParametricStop is one rung of an N-stop scale. Stop 0 is the lightest.
type ParametricStop struct {
	Stop                  int            `json:"stop"`
	Background            colour.Value   `json:"background"`
	Foregrounds           Foregrounds    `json:"foregrounds"`
	RecommendedForeground ForegroundKind `json:"recommendedForeground"`
}

// Recommended returns the recommended foreground of the stop.
func (s ParametricStop) Recommended() Foreground {
	return s.Foregrounds.Get(s.RecommendedForeground)
}

// Metadata describes when and how a palette was generated.
type Metadata struct {
	GeneratedAt time.Time `json:"generatedAt"`
	TotalStops  int       `json:"totalStops"`
	Format      Kind      `json:"format,omitempty"`
}

// Parametric is a palette with a caller-chosen number of stops.
type Parametric struct {
	Name      string           `json:"name"`
	BaseColor colour.Value     `json:"baseColor"`
	Stops     []ParametricStop `json:"stops"`
	Metadata  Metadata         `json:"metadata"`
}

func (p *Parametric) PaletteName() string { return p.Name }
func (p *Parametric) Kind() Kind          { return KindParametric }
func (p *Parametric) Base() colour.Value  { return p.BaseColor }
func (p *Parametric) StopCount() int      { return len(p.Stops) }

// ModeValue holds independent light-mode and dark-mode colours.
type ModeValue struct {
	Light colour.Value `json:"light"`
	Dark  colour.Value `json:"dark"`
}

// ContrastPair holds the contrast of "on" and "on-alt" against a background.
type ContrastPair struct {
	On    float64 `json:"on"`
	OnAlt float64 `json:"onAlt"`
}

// OpticsStop is one of the 19 fixed Optics stops.
type OpticsStop struct {
	Name              StopName     `json:"name"`
	Background        ModeValue    `json:"background"`
	On                ModeValue    `json:"on"`
	OnAlt             ModeValue    `json:"onAlt"`
	LightModeContrast ContrastPair `json:"lightModeContrast"`
	DarkModeContrast  ContrastPair `json:"darkModeContrast"`
}

// OpticsBaseColor is the base colour of an Optics palette. H is in degrees,
// S and L are percentages (0-100).
type OpticsBaseColor struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
	colour.Value
}

// Optics is a palette on the fixed 19-stop Optics scale.
type Optics struct {
	Name      string          `json:"name"`
	BaseColor OpticsBaseColor `json:"baseColor"`
	Stops     []OpticsStop    `json:"stops"`
	Metadata  Metadata        `json:"metadata"`
}

func (p *Optics) PaletteName() string { return p.Name }
func (p *Optics) Kind() Kind          { return KindOptics }
func (p *Optics) Base() colour.Value  { return p.BaseColor.Value }
func (p *Optics) StopCount() int      { return len(p.Stops) }

// Stop returns the stop with the given name.
func (p *Optics) Stop(name StopName) (OpticsStop, bool) {
	for _, s := range p.Stops {
		if s.Name == name {
			return s, true
		}
	}
	return OpticsStop{}, false
}
