// Package cli provides the command-line interface for Optics.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/optics-ui/optics/internal/config"
	"github.com/optics-ui/optics/internal/version"
)

// rootOptions holds state shared by all subcommands. It is populated by the
// root command's PersistentPreRunE before any subcommand runs.
type rootOptions struct {
	verbose bool
	quiet   bool

	cfg    *config.Config
	logger hclog.Logger
}

// NewRootCmd builds the optics command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "optics",
		Short: "An accessible colour palette generator",
		Long: `Optics derives accessible colour palettes from a single base colour.

Parametric palettes spread any number of stops along an eased lightness
curve and pick a readable foreground for every stop. Optics palettes use a
fixed 19-stop scale tuned separately for light and dark mode.

Palettes are exported to Figma Variables, CSS custom properties, W3C design
tokens, Tailwind configuration, JSON and a WCAG contrast report.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd.ErrOrStderr())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newScaleCmd())

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// init loads configuration and builds the logger.
func (o *rootOptions) init(stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateGlobal(); err != nil {
		return fmt.Errorf("%s_*: %w", config.Prefix, err)
	}
	o.cfg = cfg
	o.logger = newLogger(stderr, o.logLevel())
	o.logger.Debug("configuration loaded", "output_dir", cfg.OutputDir, "stops", cfg.Stops, "mode", cfg.Mode)
	return nil
}

// logLevel resolves the log level. Flags take precedence over the environment.
func (o *rootOptions) logLevel() hclog.Level {
	switch {
	case o.verbose:
		return hclog.Debug
	case o.quiet:
		return hclog.Error
	}
	if o.cfg != nil {
		if level := o.cfg.Level(); level != hclog.NoLevel {
			return level
		}
	}
	return hclog.Warn
}

func newLogger(w io.Writer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "optics",
		Output: w,
		Level:  level,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
