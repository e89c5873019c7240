// Package figma provides an output plugin producing Figma Variables import files.
package figma

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/optics-ui/optics/internal/colour"
	"github.com/optics-ui/optics/internal/output"
	"github.com/optics-ui/optics/internal/palette"
)

// Mode selects which colour modes of an Optics palette are exported.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
	ModeBoth  Mode = "both"
)

// collectionName is the variable collection Optics tokens are grouped under.
const collectionName = "op-color"

var allScopes = []string{"ALL_SCOPES"}

// Plugin implements the output.Plugin interface for Figma Variables.
type Plugin struct {
	mode  string
	newID func() string
}

// New creates a new Figma output plugin exporting both modes.
func New() *Plugin {
	return NewWithMode(ModeBoth)
}

// NewWithMode creates a Figma output plugin for a specific mode.
func NewWithMode(mode Mode) *Plugin {
	return &Plugin{
		mode:  string(mode),
		newID: func() string { return "VariableID:" + uuid.NewString() },
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "figma"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate Figma Variables import files"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.mode, "mode", "m", string(ModeBoth), "Figma export mode for Optics palettes (light, dark, both)")
}

// SetMode overrides the export mode.
func (p *Plugin) SetMode(mode Mode) {
	p.mode = string(mode)
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	switch Mode(p.mode) {
	case ModeLight, ModeDark, ModeBoth:
		return nil
	}
	return fmt.Errorf("invalid mode: %s (must be 'light', 'dark' or 'both')", p.mode)
}

// Generate creates Figma import files from the palette.
func (p *Plugin) Generate(pal palette.Palette) (map[string][]byte, error) {
	switch pal := pal.(type) {
	case *palette.Parametric:
		return p.generateParametric(pal)
	case *palette.Optics:
		return p.generateOptics(pal)
	}
	return nil, output.Unsupported(p.Name(), pal)
}

// colorValue is the Figma representation of an sRGB colour.
type colorValue struct {
	ColorSpace string     `json:"colorSpace"`
	Components [3]float64 `json:"components"`
	Alpha      float64    `json:"alpha"`
	Hex        string     `json:"hex"`
}

type codeSyntax struct {
	Web string `json:"WEB"`
}

type extensions struct {
	VariableID string      `json:"com.figma.variableId"`
	Scopes     []string    `json:"com.figma.scopes"`
	CodeSyntax *codeSyntax `json:"com.figma.codeSyntax,omitempty"`
}

type variable struct {
	Type       string     `json:"$type"`
	Value      colorValue `json:"$value"`
	Extensions extensions `json:"$extensions"`
}

type rootExtensions struct {
	ModeName string `json:"com.figma.modeName"`
}

// valueColor uses the colour's unrounded RGB components.
func valueColor(v colour.Value) colorValue {
	return colorValue{
		ColorSpace: "srgb",
		Components: [3]float64{v.RGB.R, v.RGB.G, v.RGB.B},
		Alpha:      1,
		Hex:        v.Hex,
	}
}

// hexColor derives the components from the 8-bit hex so Figma sees exactly
// the value printed in the hex field.
func hexColor(hex string) colorValue {
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		rgb = colour.RGB{}
	}
	r, g, b := rgb.Bytes()
	return colorValue{
		ColorSpace: "srgb",
		Components: [3]float64{float64(r) / 255, float64(g) / 255, float64(b) / 255},
		Alpha:      1,
		Hex:        strings.ToUpper(hex),
	}
}

func (p *Plugin) parametricVariable(v colour.Value) variable {
	return variable{
		Type:  "color",
		Value: valueColor(v),
		Extensions: extensions{
			VariableID: p.newID(),
			Scopes:     allScopes,
			CodeSyntax: &codeSyntax{Web: v.Hex},
		},
	}
}

func (p *Plugin) generateParametric(pal *palette.Parametric) (map[string][]byte, error) {
	stops := output.NewObject()
	light := output.NewObject()
	dark := output.NewObject()

	for _, stop := range pal.Stops {
		stops.Set(fmt.Sprint(stop.Stop), p.parametricVariable(stop.Background))
	}
	for _, stop := range pal.Stops {
		light.Set(fmt.Sprint(stop.Stop), p.parametricVariable(stop.Foregrounds.Light.Value))
	}
	for _, stop := range pal.Stops {
		dark.Set(fmt.Sprint(stop.Stop), p.parametricVariable(stop.Foregrounds.Dark.Value))
	}

	root := output.NewObject().
		Set(pal.Name, stops).
		Set(pal.Name+"-foregrounds", output.NewObject().Set("light", light).Set("dark", dark)).
		Set("$extensions", rootExtensions{ModeName: p.parametricModeName()})

	data, err := output.MarshalIndent(root)
	if err != nil {
		return nil, fmt.Errorf("failed to encode figma variables: %w", err)
	}
	return map[string][]byte{pal.Name + "-figma.json": data}, nil
}

// parametricModeName labels the single parametric file. Parametric palettes
// have no dark variant, so only an explicit dark request changes the label.
func (p *Plugin) parametricModeName() string {
	if Mode(p.mode) == ModeDark {
		return "Dark"
	}
	return "Light"
}

func (p *Plugin) generateOptics(pal *palette.Optics) (map[string][]byte, error) {
	files := make(map[string][]byte, 2)
	modes := []Mode{ModeLight, ModeDark}
	if Mode(p.mode) != ModeBoth {
		modes = []Mode{Mode(p.mode)}
	}

	for _, mode := range modes {
		data, err := ExportOptics(pal, mode)
		if err != nil {
			return nil, err
		}
		files[fmt.Sprintf("%s-%s.tokens.json", pal.Name, mode)] = data
	}
	return files, nil
}

// ExportOptics renders one mode of an Optics palette as a Figma Variables
// file. Backgrounds nest as <name>/<group>/<level>/bg and foregrounds as
// <name>/on/<group>/<level>/{on,on-alt}; the base stop has no level.
func ExportOptics(pal *palette.Optics, mode Mode) ([]byte, error) {
	if mode != ModeLight && mode != ModeDark {
		return nil, fmt.Errorf("invalid figma mode: %s", mode)
	}
	pick := func(v palette.ModeValue) colour.Value {
		if mode == ModeDark {
			return v.Dark
		}
		return v.Light
	}
	token := func(stop palette.StopName, suffix string, v colour.Value) variable {
		id := fmt.Sprintf("%s-%s-%s", pal.Name, stop, suffix)
		return variable{
			Type:  "color",
			Value: hexColor(v.Hex),
			Extensions: extensions{
				VariableID: id,
				Scopes:     allScopes,
				CodeSyntax: &codeSyntax{Web: fmt.Sprintf("var(--%s-%s)", collectionName, id)},
			},
		}
	}

	tokens := output.NewObject()
	for _, stop := range pal.Stops {
		group, level := stop.Name.Group()

		bg := tokens.Child(group)
		fg := tokens.Child("on").Child(group)
		if level != "" {
			bg = bg.Child(level)
			fg = fg.Child(level)
		}

		bg.Set("bg", token(stop.Name, "bg", pick(stop.Background)))
		fg.Set("on", token(stop.Name, "on", pick(stop.On)))
		fg.Set("on-alt", token(stop.Name, "on-alt", pick(stop.OnAlt)))
	}

	root := output.NewObject().
		Set(collectionName, output.NewObject().Set(pal.Name, tokens)).
		Set("$extensions", rootExtensions{ModeName: modeName(mode)})

	data, err := output.MarshalIndent(root)
	if err != nil {
		return nil, fmt.Errorf("failed to encode figma variables: %w", err)
	}
	return data, nil
}

func modeName(mode Mode) string {
	if mode == ModeDark {
		return "Dark"
	}
	return "Light"
}
