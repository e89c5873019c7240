// Package css provides an output plugin producing CSS custom properties.
package css

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optics-ui/optics/internal/output"
	"github.com/optics-ui/optics/internal/palette"
)

// Plugin implements the output.Plugin interface for CSS custom properties.
type Plugin struct {
	selector string
}

// New creates a new CSS output plugin that declares variables on :root.
func New() *Plugin {
	return &Plugin{selector: ":root"}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "css"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate CSS custom properties (light-dark() for Optics palettes)"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.selector, "css.selector", ":root", "CSS selector the custom properties are declared on")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if strings.TrimSpace(p.selector) == "" {
		return fmt.Errorf("css selector cannot be empty")
	}
	if strings.ContainsAny(p.selector, "{}") {
		return fmt.Errorf("invalid css selector: %s", p.selector)
	}
	return nil
}

// Generate creates the stylesheet for the palette.
func (p *Plugin) Generate(pal palette.Palette) (map[string][]byte, error) {
	switch pal := pal.(type) {
	case *palette.Parametric:
		return map[string][]byte{pal.Name + ".css": []byte(p.parametric(pal))}, nil
	case *palette.Optics:
		return map[string][]byte{pal.Name + "-optics.css": []byte(p.optics(pal))}, nil
	}
	return nil, output.Unsupported(p.Name(), pal)
}

func (p *Plugin) parametric(pal *palette.Parametric) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", p.selector)
	fmt.Fprintf(&b, "  /* %s palette - Generated from %s */\n\n", pal.Name, pal.BaseColor.Hex)

	for _, stop := range pal.Stops {
		prefix := fmt.Sprintf("--%s-%d", pal.Name, stop.Stop)
		fmt.Fprintf(&b, "  /* stop %d */\n", stop.Stop)
		fmt.Fprintf(&b, "  %s-bg: %s;\n", prefix, stop.Background.Hex)
		fmt.Fprintf(&b, "  %s-fg: %s;\n", prefix, stop.Recommended().Hex)
		fmt.Fprintf(&b, "  %s-fg-light: %s;\n", prefix, stop.Foregrounds.Light.Hex)
		fmt.Fprintf(&b, "  %s-fg-dark: %s;\n", prefix, stop.Foregrounds.Dark.Hex)
		b.WriteString("\n")
	}

	b.WriteString("}\n")
	return b.String()
}

func (p *Plugin) optics(pal *palette.Optics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", p.selector)
	fmt.Fprintf(&b, "  /* %s Optics Scale - Generated from %s */\n", pal.Name, pal.BaseColor.Hex)
	b.WriteString("  /* Supports automatic theme switching with light-dark() */\n\n")

	for _, stop := range pal.Stops {
		prefix := fmt.Sprintf("--op-%s-%s", pal.Name, stop.Name)
		fmt.Fprintf(&b, "  /* %s */\n", stop.Name)
		fmt.Fprintf(&b, "  %s-bg: %s;\n", prefix, lightDark(stop.Background))
		fmt.Fprintf(&b, "  %s-on: %s;\n", prefix, lightDark(stop.On))
		fmt.Fprintf(&b, "  %s-on-alt: %s;\n", prefix, lightDark(stop.OnAlt))
		b.WriteString("\n")
	}

	b.WriteString("}\n")
	return b.String()
}

func lightDark(v palette.ModeValue) string {
	return fmt.Sprintf("light-dark(%s, %s)", v.Light.Hex, v.Dark.Hex)
}
