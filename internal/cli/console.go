package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/optics-ui/optics/internal/colour"
)

// console writes human-readable output. Styles degrade to plain text when
// the writer is not a terminal.
type console struct {
	out   io.Writer
	quiet bool

	heading lipgloss.Style
	pass    lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	muted   lipgloss.Style
}

func newConsole(w io.Writer, quiet bool) *console {
	r := lipgloss.NewRenderer(w)
	return &console{
		out:     w,
		quiet:   quiet,
		heading: r.NewStyle().Bold(true),
		pass:    r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("1")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (c *console) Printf(format string, a ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.out, format, a...)
}

func (c *console) Println(a ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.out, a...)
}

func (c *console) Heading(text string) {
	c.Println(c.heading.Render(text))
}

func (c *console) Muted(text string) string {
	return c.muted.Render(text)
}

// Level renders a WCAG level coloured by how well it passes.
func (c *console) Level(level colour.Level) string {
	switch level {
	case colour.LevelAAA:
		return c.pass.Render(string(level))
	case colour.LevelAA:
		return c.pass.Render(string(level))
	case colour.LevelAALarge:
		return c.warn.Render(string(level))
	}
	return c.fail.Render(string(level))
}

// Check renders a pass/fail mark.
func (c *console) Check(ok bool) string {
	if ok {
		return c.pass.Render("✓ pass")
	}
	return c.fail.Render("✗ fail")
}

// Ratio formats a contrast ratio with its WCAG level, e.g. "4.52:1 AA".
func (c *console) Ratio(ratio float64) string {
	return fmt.Sprintf("%.2f:1 %s", ratio, c.Level(colour.LevelFor(ratio)))
}
