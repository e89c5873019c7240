// Package output provides the interface and registry for palette exporters.
package output

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/optics-ui/optics/internal/palette"
)

// ErrUnsupportedPalette is returned by a plugin asked to export a palette
// variant it does not handle.
var ErrUnsupportedPalette = errors.New("unsupported palette type")

// Plugin represents an exporter that turns a palette into one or more files.
type Plugin interface {
	// Name returns the plugin's name (e.g., "figma", "css").
	Name() string

	// Description returns a human-readable description of the plugin.
	Description() string

	// Generate creates output file(s) from the given palette.
	// Returns map of filename -> content to support plugins that generate multiple files.
	Generate(p palette.Palette) (map[string][]byte, error)

	// RegisterFlags registers plugin-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the plugin configuration is valid.
	Validate() error
}

// Unsupported builds the error a plugin returns for a palette it cannot export.
func Unsupported(plugin string, p palette.Palette) error {
	return fmt.Errorf("%s: %w: %T", plugin, ErrUnsupportedPalette, p)
}

// Registry holds all registered output plugins.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin to the registry.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered plugin names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered plugins in name order.
func (r *Registry) All() []Plugin {
	plugins := make([]Plugin, 0, len(r.plugins))
	for _, name := range r.List() {
		plugins = append(plugins, r.plugins[name])
	}
	return plugins
}

// Select resolves plugin names to plugins, preserving the requested order.
// "all" selects every registered plugin. Unknown names are an error.
func (r *Registry) Select(names []string) ([]Plugin, error) {
	if len(names) == 1 && names[0] == "all" {
		return r.All(), nil
	}

	selected := make([]Plugin, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		plugin, ok := r.plugins[name]
		if !ok {
			return nil, fmt.Errorf("unknown output format: %s (available: %v)", name, r.List())
		}
		seen[name] = true
		selected = append(selected, plugin)
	}
	return selected, nil
}

// DefaultFormats returns the formats exported when the caller names none.
func DefaultFormats(kind palette.Kind) []string {
	if kind == palette.KindOptics {
		return []string{"figma", "tokens", "json", "css", "tailwind", "report"}
	}
	return []string{"figma", "report"}
}
