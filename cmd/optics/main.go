// Optics - an accessible colour palette generator
//
// Optics derives light-to-dark palettes from a single base colour and exports
// them as Figma Variables, CSS, design tokens, Tailwind configuration and
// WCAG contrast reports.
package main

import (
	"os"

	"github.com/optics-ui/optics/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
