package cli

import (
	"github.com/optics-ui/optics/internal/output"
	"github.com/optics-ui/optics/internal/output/css"
	"github.com/optics-ui/optics/internal/output/figma"
	"github.com/optics-ui/optics/internal/output/jsonfile"
	"github.com/optics-ui/optics/internal/output/report"
	"github.com/optics-ui/optics/internal/output/tailwind"
	"github.com/optics-ui/optics/internal/output/tokens"
)

// exporters holds the built-in output plugins of one command invocation.
type exporters struct {
	registry *output.Registry
	figma    *figma.Plugin
}

// newExporters registers every built-in output plugin.
func newExporters() *exporters {
	e := &exporters{
		registry: output.NewRegistry(),
		figma:    figma.New(),
	}
	e.registry.Register(e.figma)
	e.registry.Register(report.New())
	e.registry.Register(css.New())
	e.registry.Register(jsonfile.New())
	e.registry.Register(tokens.New())
	e.registry.Register(tailwind.New())
	return e
}
