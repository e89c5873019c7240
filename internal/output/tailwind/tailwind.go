// Package tailwind provides a Tailwind CSS output plugin.
package tailwind

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/optics-ui/optics/internal/output"
	"github.com/optics-ui/optics/internal/palette"
)

//go:embed *.tmpl
var templates embed.FS

// Plugin implements the output.Plugin interface for Tailwind CSS.
type Plugin struct {
	format string // "config" or "css"
}

// New creates a new Tailwind output plugin producing a config colours snippet.
func New() *Plugin {
	return NewWithFormat("config")
}

// NewWithFormat creates a new Tailwind output plugin with a specific format.
func NewWithFormat(format string) *Plugin {
	return &Plugin{format: format}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "tailwind"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate Tailwind CSS colour configuration (light-mode values)"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.format, "tailwind.format", "config", "Tailwind output format (config or css)")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.format != "css" && p.format != "config" {
		return fmt.Errorf("invalid format: %s (must be 'css' or 'config')", p.format)
	}
	return nil
}

// TemplateData holds the data passed to the Tailwind templates.
type TemplateData struct {
	Name   string
	Title  string
	Source string
	Stops  []StopData
}

// StopData holds the colours of one stop.
type StopData struct {
	Name   string
	Colors []NamedColor
}

// NamedColor is a single colour under a stop, e.g. "bg" or "on-alt".
type NamedColor struct {
	Key string
	Hex string
}

// Generate creates the Tailwind configuration from the palette.
func (p *Plugin) Generate(pal palette.Palette) (map[string][]byte, error) {
	var (
		data TemplateData
		base string
	)
	switch pal := pal.(type) {
	case *palette.Parametric:
		data, base = prepareParametricData(pal), pal.Name+"-tailwind"
	case *palette.Optics:
		data, base = prepareOpticsData(pal), pal.Name+"-optics-tailwind"
	default:
		return nil, output.Unsupported(p.Name(), pal)
	}

	tmplName, ext := "config.js.tmpl", ".js"
	if p.format == "css" {
		tmplName, ext = "theme.css.tmpl", ".css"
	}

	content, err := render(tmplName, data)
	if err != nil {
		return nil, err
	}
	return map[string][]byte{base + ext: content}, nil
}

// prepareOpticsData uses light-mode values, which Tailwind treats as the default theme.
func prepareOpticsData(pal *palette.Optics) TemplateData {
	data := TemplateData{
		Name:   pal.Name,
		Title:  "Optics " + pal.Name,
		Source: pal.BaseColor.Hex,
		Stops:  make([]StopData, 0, len(pal.Stops)),
	}
	for _, stop := range pal.Stops {
		data.Stops = append(data.Stops, StopData{
			Name: string(stop.Name),
			Colors: []NamedColor{
				{Key: "bg", Hex: stop.Background.Light.Hex},
				{Key: "on", Hex: stop.On.Light.Hex},
				{Key: "on-alt", Hex: stop.OnAlt.Light.Hex},
			},
		})
	}
	return data
}

func prepareParametricData(pal *palette.Parametric) TemplateData {
	data := TemplateData{
		Name:   pal.Name,
		Title:  pal.Name,
		Source: pal.BaseColor.Hex,
		Stops:  make([]StopData, 0, len(pal.Stops)),
	}
	for _, stop := range pal.Stops {
		data.Stops = append(data.Stops, StopData{
			Name: fmt.Sprint(stop.Stop),
			Colors: []NamedColor{
				{Key: "bg", Hex: stop.Background.Hex},
				{Key: "fg", Hex: stop.Recommended().Hex},
				{Key: "fg-light", Hex: stop.Foregrounds.Light.Hex},
				{Key: "fg-dark", Hex: stop.Foregrounds.Dark.Hex},
			},
		})
	}
	return data
}

func render(name string, data TemplateData) ([]byte, error) {
	// Load template from embedded filesystem
	tmplContent, err := templates.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// jsKey renders an object key, quoting it unless it is a plain identifier.
func jsKey(key string) string {
	if identifier.MatchString(key) {
		return key
	}
	return "'" + key + "'"
}

// suffix maps a colour key to its CSS variable suffix. The background is the
// stop's own variable.
func suffix(key string) string {
	if key == "bg" {
		return ""
	}
	return "-" + key
}

// templateFuncs returns template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"jsKey":  jsKey,
		"suffix": suffix,
	}
}
