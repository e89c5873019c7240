// Package tokens provides an output plugin producing W3C design tokens.
package tokens

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optics-ui/optics/internal/output"
	"github.com/optics-ui/optics/internal/palette"
)

// Token is a single W3C design token.
type Token struct {
	Value       string `json:"$value"`
	Type        string `json:"$type"`
	Description string `json:"$description,omitempty"`
}

// ModeTokens pairs the light and dark variants of a token.
type ModeTokens struct {
	Light Token `json:"light"`
	Dark  Token `json:"dark"`
}

// OpticsStop groups the tokens of one Optics stop.
type OpticsStop struct {
	Background ModeTokens `json:"background"`
	On         ModeTokens `json:"on"`
	OnAlt      ModeTokens `json:"onAlt"`
}

// ParametricStop groups the tokens of one parametric stop.
type ParametricStop struct {
	Background Token      `json:"background"`
	Foreground ModeTokens `json:"foreground"`
}

// Plugin implements the output.Plugin interface for design tokens.
type Plugin struct{}

// New creates a new design tokens output plugin.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "tokens"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate W3C design tokens"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(_ *cobra.Command) {}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// Generate creates the design tokens file for the palette.
func (p *Plugin) Generate(pal palette.Palette) (map[string][]byte, error) {
	var (
		filename string
		doc      *output.Object
	)
	switch pal := pal.(type) {
	case *palette.Parametric:
		filename, doc = pal.Name+"-tokens.json", Parametric(pal)
	case *palette.Optics:
		filename, doc = pal.Name+"-optics-tokens.json", Optics(pal)
	default:
		return nil, output.Unsupported(p.Name(), pal)
	}

	data, err := output.MarshalIndent(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode design tokens: %w", err)
	}
	return map[string][]byte{filename: data}, nil
}

func color(hex, description string) Token {
	return Token{Value: hex, Type: "color", Description: description}
}

// Optics builds the token tree of an Optics palette, one group per stop.
func Optics(pal *palette.Optics) *output.Object {
	group := output.NewObject().
		Set("$type", "color").
		Set("$description", fmt.Sprintf("Optics scale palette generated from %s", pal.BaseColor.Hex))

	for _, stop := range pal.Stops {
		group.Set(string(stop.Name), OpticsStop{
			Background: ModeTokens{
				Light: color(stop.Background.Light.Hex, "Light mode background"),
				Dark:  color(stop.Background.Dark.Hex, "Dark mode background"),
			},
			On: ModeTokens{
				Light: color(stop.On.Light.Hex, fmt.Sprintf("Light mode foreground (contrast: %.2f:1)", stop.LightModeContrast.On)),
				Dark:  color(stop.On.Dark.Hex, fmt.Sprintf("Dark mode foreground (contrast: %.2f:1)", stop.DarkModeContrast.On)),
			},
			OnAlt: ModeTokens{
				Light: color(stop.OnAlt.Light.Hex, fmt.Sprintf("Light mode alternative foreground (contrast: %.2f:1)", stop.LightModeContrast.OnAlt)),
				Dark:  color(stop.OnAlt.Dark.Hex, fmt.Sprintf("Dark mode alternative foreground (contrast: %.2f:1)", stop.DarkModeContrast.OnAlt)),
			},
		})
	}

	return output.NewObject().Set(pal.Name, group)
}

// Parametric builds the token tree of a parametric palette, one group per
// stop index in light-to-dark order.
func Parametric(pal *palette.Parametric) *output.Object {
	group := output.NewObject().
		Set("$type", "color").
		Set("$description", fmt.Sprintf("%d-stop palette generated from %s", len(pal.Stops), pal.BaseColor.Hex))

	for _, stop := range pal.Stops {
		light, dark := stop.Foregrounds.Light, stop.Foregrounds.Dark
		group.Set(fmt.Sprint(stop.Stop), ParametricStop{
			Background: color(stop.Background.Hex, ""),
			Foreground: ModeTokens{
				Light: color(light.Hex, fmt.Sprintf("Light foreground (contrast: %.2f:1)", light.Contrast)),
				Dark:  color(dark.Hex, fmt.Sprintf("Dark foreground (contrast: %.2f:1)", dark.Contrast)),
			},
		})
	}

	return output.NewObject().Set(pal.Name, group)
}
