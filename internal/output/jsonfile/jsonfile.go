// Package jsonfile provides an output plugin writing the palette as JSON.
package jsonfile

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optics-ui/optics/internal/output"
	"github.com/optics-ui/optics/internal/palette"
)

// Plugin implements the output.Plugin interface for raw palette JSON.
type Plugin struct{}

// New creates a new JSON output plugin.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "json"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Write the complete palette as JSON"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(_ *cobra.Command) {}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// Generate serialises the palette.
func (p *Plugin) Generate(pal palette.Palette) (map[string][]byte, error) {
	var filename string
	switch pal := pal.(type) {
	case *palette.Parametric:
		filename = pal.Name + ".json"
	case *palette.Optics:
		filename = pal.Name + "-optics.json"
	default:
		return nil, output.Unsupported(p.Name(), pal)
	}

	data, err := output.MarshalIndent(pal)
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette: %w", err)
	}
	return map[string][]byte{filename: data}, nil
}
