package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optics-ui/optics/internal/colour"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <background> <foreground>",
		Short: "Check the WCAG contrast of two colours",
		Long: `Compute the WCAG 2.x contrast ratio between a background and a foreground
colour and report which conformance levels the pair meets.

Examples:
  optics analyze "#3b82f6" white
  optics analyze "hsl(217, 91%, 60%)" "#0b1120"`,
		Args: cobra.ExactArgs(2),
		RunE: runAnalyze,
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	bg, err := colour.Parse(args[0])
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	fg, err := colour.Parse(args[1])
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}

	bgRGB, fgRGB := colour.HSLToRGB(bg), colour.HSLToRGB(fg)
	ratio := colour.ContrastRatio(bgRGB, fgRGB)

	con := newConsole(cmd.OutOrStdout(), false)
	con.Printf("%s\n\n", colour.SwatchWithText(bgRGB, fgRGB, "Sample text", 16))
	con.Printf("Background:  %s %s\n", colour.Swatch(bgRGB, 2), bgRGB.Hex())
	con.Printf("Foreground:  %s %s\n", colour.Swatch(fgRGB, 2), fgRGB.Hex())
	con.Printf("Contrast:    %.2f:1\n", ratio)
	con.Printf("Level:       %s\n\n", con.Level(colour.LevelFor(ratio)))

	table := NewTable([]string{"", "Normal text", "Large text"})
	table.AddRow([]string{"AA", con.Check(colour.MeetsAA(ratio, false)), con.Check(colour.MeetsAA(ratio, true))})
	table.AddRow([]string{"AAA", con.Check(colour.MeetsAAA(ratio, false)), con.Check(colour.MeetsAAA(ratio, true))})
	con.Printf("%s", table.Render())
	return nil
}
