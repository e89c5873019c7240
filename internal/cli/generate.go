package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optics-ui/optics/internal/colour"
	"github.com/optics-ui/optics/internal/config"
	"github.com/optics-ui/optics/internal/output"
	"github.com/optics-ui/optics/internal/output/figma"
	"github.com/optics-ui/optics/internal/palette"
	"github.com/optics-ui/optics/internal/security"
)

type generateOptions struct {
	root *rootOptions

	name      string
	stops     int
	outputDir string
	optics    bool
	formats   []string
	dryRun    bool
	preview   bool

	exporters *exporters
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{
		root:      root,
		exporters: newExporters(),
	}

	generateCmd := &cobra.Command{
		Use:   "generate <color>",
		Short: "Generate a palette from a base colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0])
		},
	}

	generateCmd.Flags().StringVarP(&opts.name, "name", "n", palette.DefaultName, "Palette name, used as the output file prefix")
	generateCmd.Flags().IntVarP(&opts.stops, "stops", "s", palette.DefaultStops, "Number of stops for parametric palettes (2-100)")
	generateCmd.Flags().StringVarP(&opts.outputDir, "output", "o", "./output", "Output directory")
	generateCmd.Flags().BoolVar(&opts.optics, "optics", false, "Use the fixed 19-stop Optics scale")
	generateCmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "Output formats (comma-separated or 'all')")
	generateCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Preview without writing files")
	generateCmd.Flags().BoolVar(&opts.preview, "preview", false, "Show colour swatches for every stop")

	// Register plugin flags
	for _, plugin := range opts.exporters.registry.All() {
		plugin.RegisterFlags(generateCmd)
	}

	generateCmd.Long = buildGenerateHelp(opts.exporters.registry)
	return generateCmd
}

// applyConfig fills every flag the user did not set from the environment.
func (o *generateOptions) applyConfig(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("stops") {
		o.stops = cfg.Stops
	}
	if !flags.Changed("output") {
		o.outputDir = cfg.OutputDir
	}
	if !flags.Changed("format") && len(cfg.Formats) > 0 {
		o.formats = cfg.Formats
	}
	if !flags.Changed("mode") {
		o.exporters.figma.SetMode(figma.Mode(cfg.Mode))
	}
}

func (o *generateOptions) run(cmd *cobra.Command, input string) error {
	logger := o.root.logger.Named("generate")
	o.applyConfig(cmd, o.root.cfg)

	kind := palette.KindParametric
	if o.optics {
		kind = palette.KindOptics
	}

	if kind == palette.KindParametric {
		if err := config.ValidateStops(o.stops); err != nil {
			return err
		}
	}
	if err := security.ValidatePaletteName(o.name); err != nil {
		return err
	}

	formats := o.formats
	if len(formats) == 0 {
		formats = output.DefaultFormats(kind)
	}
	plugins, err := o.exporters.registry.Select(formats)
	if err != nil {
		return err
	}
	for _, plugin := range plugins {
		if err := plugin.Validate(); err != nil {
			return fmt.Errorf("%s: %w", plugin.Name(), err)
		}
	}

	logger.Debug("generating palette", "input", input, "kind", kind, "name", o.name, "stops", o.stops)

	gen := palette.NewGenerator()
	var pal palette.Palette
	if kind == palette.KindOptics {
		pal, err = gen.Optics(colour.String(input), o.name)
	} else {
		pal, err = gen.Parametric(colour.String(input), o.name, o.stops)
	}
	if err != nil {
		return fmt.Errorf("failed to generate palette: %w", err)
	}

	con := newConsole(cmd.OutOrStdout(), o.root.quiet)
	printSummary(con, pal)
	if o.preview {
		printPreview(con, pal)
	}
	printContrastTable(con, pal)

	writer := output.NewWriter(o.outputDir, o.dryRun, o.root.logger.Named("writer"))
	var written []output.WrittenFile
	for _, plugin := range plugins {
		logger.Debug("running output plugin", "plugin", plugin.Name())

		files, err := plugin.Generate(pal)
		if err != nil {
			return fmt.Errorf("%s export failed: %w", plugin.Name(), err)
		}
		w, err := writer.Write(files)
		if err != nil {
			return fmt.Errorf("failed to write %s output: %w", plugin.Name(), err)
		}
		written = append(written, w...)
	}

	printWritten(con, written, o.dryRun)
	if slices.ContainsFunc(plugins, func(p output.Plugin) bool { return p.Name() == "figma" }) {
		printFigmaTips(con, kind)
	}
	return nil
}

func printSummary(con *console, pal palette.Palette) {
	base := pal.Base()
	con.Println()
	con.Heading(fmt.Sprintf("✓ Generated %s palette %q", pal.Kind(), pal.PaletteName()))
	con.Printf("  Base colour: %s  %s\n", base.Hex, con.Muted(base.HSL.String()))
	con.Printf("  Stops:       %d\n\n", pal.StopCount())
}

func printPreview(con *console, pal palette.Palette) {
	con.Heading("Preview")
	switch pal := pal.(type) {
	case *palette.Parametric:
		for _, stop := range pal.Stops {
			fg := stop.Recommended()
			con.Printf("  %3d %s %s\n", stop.Stop,
				colour.SwatchWithText(stop.Background.RGB, fg.RGB, stop.Background.Hex, 12),
				con.Muted(fmt.Sprintf("%.2f:1", fg.Contrast)))
		}
	case *palette.Optics:
		for _, stop := range pal.Stops {
			con.Printf("  %-12s %s %s\n", stop.Name,
				colour.SwatchWithText(stop.Background.Light.RGB, stop.On.Light.RGB, stop.Background.Light.Hex, 12),
				colour.SwatchWithText(stop.Background.Dark.RGB, stop.On.Dark.RGB, stop.Background.Dark.Hex, 12))
		}
	}
	con.Println()
}

// printContrastTable prints every parametric stop, or the extremes and base
// of an Optics palette in both modes.
func printContrastTable(con *console, pal palette.Palette) {
	con.Heading("Contrast")
	switch pal := pal.(type) {
	case *palette.Parametric:
		table := NewTable([]string{"Stop", "Background", "Light FG", "Dark FG", "Use"})
		for _, stop := range pal.Stops {
			table.AddRow([]string{
				fmt.Sprint(stop.Stop),
				stop.Background.Hex,
				con.Ratio(stop.Foregrounds.Light.Contrast),
				con.Ratio(stop.Foregrounds.Dark.Contrast),
				string(stop.RecommendedForeground),
			})
		}
		con.Printf("%s\n", table.Render())
	case *palette.Optics:
		table := NewTable([]string{"Stop", "Mode", "Background", "On", "On-alt"})
		for _, name := range []palette.StopName{palette.PlusMax, palette.Base, palette.MinusMax} {
			stop, ok := pal.Stop(name)
			if !ok {
				continue
			}
			table.AddRow([]string{string(name), "light", stop.Background.Light.Hex,
				con.Ratio(stop.LightModeContrast.On), con.Ratio(stop.LightModeContrast.OnAlt)})
			table.AddRow([]string{"", "dark", stop.Background.Dark.Hex,
				con.Ratio(stop.DarkModeContrast.On), con.Ratio(stop.DarkModeContrast.OnAlt)})
		}
		con.Printf("%s\n", table.Render())
	}
}

func printWritten(con *console, written []output.WrittenFile, dryRun bool) {
	if dryRun {
		con.Heading("Dry run, no files written")
		for _, f := range written {
			con.Printf("  Would write: %s (%d bytes)\n", f.Path, f.Size)
		}
		return
	}

	con.Heading(fmt.Sprintf("✓ Wrote %d file(s)", len(written)))
	for _, f := range written {
		con.Printf("  ├─ %s (%d bytes)\n", f.Path, f.Size)
	}
}

func printFigmaTips(con *console, kind palette.Kind) {
	con.Println()
	con.Heading("Figma import")
	if kind == palette.KindOptics {
		con.Println("  1. Create a variable collection with Light and Dark modes")
		con.Println("  2. Import <name>-light.tokens.json into the Light mode")
		con.Println("  3. Import <name>-dark.tokens.json into the Dark mode")
		return
	}
	con.Println("  1. Open the Variables panel and choose Import")
	con.Println("  2. Select <name>-figma.json")
}

// buildGenerateHelp builds the help text with the registered output plugins.
func buildGenerateHelp(registry *output.Registry) string {
	var b strings.Builder
	b.WriteString(`Generate a palette from a base colour and export it.

The colour may be any CSS colour: hex (#3b82f6, 3b82f6, #fff), rgb(),
hsl() or a named colour.

By default a parametric palette is generated and exported to Figma and a
contrast report. With --optics the 19-stop Optics scale is used and every
format is exported.

Output formats:
`)
	for _, plugin := range registry.All() {
		fmt.Fprintf(&b, "  %-12s - %s\n", plugin.Name(), plugin.Description())
	}
	b.WriteString(`  all          - Run all output formats

Examples:
  # Parametric palette with 12 stops
  optics generate "#3b82f6" -n brand -s 12

  # Optics palette, light mode Figma file only
  optics generate "hsl(217, 91%, 60%)" --optics -m light

  # Specific formats, preview without writing
  optics generate tomato -f css,tokens --preview --dry-run`)
	return b.String()
}
