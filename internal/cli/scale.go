package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optics-ui/optics/internal/config"
	"github.com/optics-ui/optics/internal/palette"
)

func newScaleCmd() *cobra.Command {
	var stops int

	scaleCmd := &cobra.Command{
		Use:   "scale",
		Short: "Print the parametric lightness curve",
		Long: `Print the eased lightness value of every stop of a parametric palette,
together with the saturation multiplier applied at that lightness.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.ValidateStops(stops); err != nil {
				return err
			}
			return printScale(newConsole(cmd.OutOrStdout(), false), stops)
		},
	}

	scaleCmd.Flags().IntVarP(&stops, "stops", "s", palette.DefaultStops, "Number of stops (2-100)")
	return scaleCmd
}

func printScale(con *console, stops int) error {
	table := NewTable([]string{"Stop", "Lightness", "Saturation", "Curve"})
	for i, l := range palette.LightnessScale(stops) {
		table.AddRow([]string{
			fmt.Sprint(i),
			fmt.Sprintf("%.1f%%", l*100),
			fmt.Sprintf("×%.2f", palette.AdjustSaturation(0.5, l)/0.5),
			strings.Repeat("█", int(l*40+0.5)),
		})
	}
	con.Printf("%s", table.Render())
	return nil
}
