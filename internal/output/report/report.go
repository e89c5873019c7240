// Package report provides an output plugin producing plain-text WCAG
// contrast reports.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optics-ui/optics/internal/colour"
	"github.com/optics-ui/optics/internal/output"
	"github.com/optics-ui/optics/internal/palette"
)

var rule = strings.Repeat("=", 80)

// Plugin implements the output.Plugin interface for contrast reports.
type Plugin struct{}

// New creates a new contrast report output plugin.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "report"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate a WCAG contrast report"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(_ *cobra.Command) {}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// Generate creates the contrast report for the palette.
func (p *Plugin) Generate(pal palette.Palette) (map[string][]byte, error) {
	var content string
	switch pal := pal.(type) {
	case *palette.Parametric:
		content = Parametric(pal)
	case *palette.Optics:
		content = Optics(pal)
	default:
		return nil, output.Unsupported(p.Name(), pal)
	}
	return map[string][]byte{pal.PaletteName() + "-contrast-report.txt": []byte(content)}, nil
}

// Failure is a foreground/background pair below the AA threshold for normal text.
type Failure struct {
	Mode                string
	Stop                string
	Background          string
	BackgroundLightness int
	Foreground          string
	ForegroundLightness int
	ForegroundType      string
	Ratio               float64
}

// Entry is one foreground measured against a stop background.
type Entry struct {
	Label     string
	Hex       string
	Lightness int
	Ratio     float64
}

// Parametric renders the report for a parametric palette.
func Parametric(pal *palette.Parametric) string {
	var failures []Failure
	for _, stop := range pal.Stops {
		for _, kind := range []palette.ForegroundKind{palette.ForegroundLight, palette.ForegroundDark} {
			fg := stop.Foregrounds.Get(kind)
			if f, failed := collectFailure(fg.Contrast, "", fmt.Sprint(stop.Stop), stop.Background, fg.Value, string(kind)); failed {
				failures = append(failures, f)
			}
		}
	}

	var b strings.Builder
	writeHeader(&b, pal.Name, pal.BaseColor.Hex, len(pal.Stops))
	writeFailures(&b, failures)

	b.WriteString("## DETAILED CONTRAST ANALYSIS\n\n")
	for _, stop := range pal.Stops {
		fmt.Fprintf(&b, "### Stop %d\n", stop.Stop)
		fmt.Fprintf(&b, "Background: %s (L:%d%%)\n", stop.Background.Hex, lightnessPercent(stop.Background))
		fmt.Fprintf(&b, "Recommended: Use %s foreground\n\n", stop.RecommendedForeground)

		writeEntry(&b, entryFor("Light Foreground", stop.Foregrounds.Light.Value, stop.Foregrounds.Light.Contrast))
		writeEntry(&b, entryFor("Dark Foreground", stop.Foregrounds.Dark.Value, stop.Foregrounds.Dark.Contrast))
	}

	writeFooter(&b)
	return b.String()
}

// Optics renders the report for an Optics palette, covering both modes.
func Optics(pal *palette.Optics) string {
	type modeView struct {
		name                string
		bg, on, onAlt       func(palette.OpticsStop) colour.Value
		onRatio, onAltRatio func(palette.OpticsStop) float64
	}
	modes := []modeView{
		{
			name:       "Light",
			bg:         func(s palette.OpticsStop) colour.Value { return s.Background.Light },
			on:         func(s palette.OpticsStop) colour.Value { return s.On.Light },
			onAlt:      func(s palette.OpticsStop) colour.Value { return s.OnAlt.Light },
			onRatio:    func(s palette.OpticsStop) float64 { return s.LightModeContrast.On },
			onAltRatio: func(s palette.OpticsStop) float64 { return s.LightModeContrast.OnAlt },
		},
		{
			name:       "Dark",
			bg:         func(s palette.OpticsStop) colour.Value { return s.Background.Dark },
			on:         func(s palette.OpticsStop) colour.Value { return s.On.Dark },
			onAlt:      func(s palette.OpticsStop) colour.Value { return s.OnAlt.Dark },
			onRatio:    func(s palette.OpticsStop) float64 { return s.DarkModeContrast.On },
			onAltRatio: func(s palette.OpticsStop) float64 { return s.DarkModeContrast.OnAlt },
		},
	}

	var failures []Failure
	for _, m := range modes {
		for _, stop := range pal.Stops {
			name := string(stop.Name)
			if f, failed := collectFailure(m.onRatio(stop), m.name, name, m.bg(stop), m.on(stop), "on"); failed {
				failures = append(failures, f)
			}
			if f, failed := collectFailure(m.onAltRatio(stop), m.name, name, m.bg(stop), m.onAlt(stop), "on-alt"); failed {
				failures = append(failures, f)
			}
		}
	}

	var b strings.Builder
	writeHeader(&b, pal.Name, pal.BaseColor.Hex, len(pal.Stops))
	writeFailures(&b, failures)

	b.WriteString("## DETAILED CONTRAST ANALYSIS\n\n")
	for _, m := range modes {
		fmt.Fprintf(&b, "## %s Mode\n\n", strings.ToUpper(m.name))
		for _, stop := range pal.Stops {
			bg := m.bg(stop)
			fmt.Fprintf(&b, "### %s\n", stop.Name)
			fmt.Fprintf(&b, "Background: %s (L:%d%%)\n\n", bg.Hex, lightnessPercent(bg))

			writeEntry(&b, entryFor("On", m.on(stop), m.onRatio(stop)))
			writeEntry(&b, entryFor("On-alt", m.onAlt(stop), m.onAltRatio(stop)))
		}
	}

	writeFooter(&b)
	return b.String()
}

func lightnessPercent(v colour.Value) int {
	return int(math.Round(v.HSL.L * 100))
}

func entryFor(label string, v colour.Value, ratio float64) Entry {
	return Entry{Label: label, Hex: v.Hex, Lightness: lightnessPercent(v), Ratio: ratio}
}

func collectFailure(ratio float64, mode, stop string, bg, fg colour.Value, fgType string) (Failure, bool) {
	if colour.MeetsAA(ratio, false) {
		return Failure{}, false
	}
	return Failure{
		Mode:                mode,
		Stop:                stop,
		Background:          bg.Hex,
		BackgroundLightness: lightnessPercent(bg),
		Foreground:          fg.Hex,
		ForegroundLightness: lightnessPercent(fg),
		ForegroundType:      fgType,
		Ratio:               ratio,
	}, true
}

func writeHeader(b *strings.Builder, name, baseHex string, totalStops int) {
	b.WriteString("# WCAG Contrast Report\n")
	fmt.Fprintf(b, "# Palette: %s\n", name)
	fmt.Fprintf(b, "# Base Color: %s\n", baseHex)
	fmt.Fprintf(b, "# Total Stops: %d\n\n", totalStops)
	b.WriteString(rule + "\n\n")
}

func writeFailures(b *strings.Builder, failures []Failure) {
	b.WriteString("## ⚠️  FAILURES SUMMARY\n\n")

	if len(failures) == 0 {
		b.WriteString("✅ ALL COMBINATIONS PASS WCAG AA STANDARD (4.5:1)\n")
		b.WriteString("   No contrast issues found!\n\n")
	} else {
		fmt.Fprintf(b, "Found %d combinations that FAIL WCAG AA standard (4.5:1):\n\n", len(failures))
		for _, f := range failures {
			modePrefix := ""
			if f.Mode != "" {
				modePrefix = f.Mode + " Mode • "
			}
			fmt.Fprintf(b, "❌ %sStop %s • %s foreground\n", modePrefix, f.Stop, f.ForegroundType)
			fmt.Fprintf(b, "   Background: %s (L:%d%%) → Foreground: %s (L:%d%%)\n",
				f.Background, f.BackgroundLightness, f.Foreground, f.ForegroundLightness)
			fmt.Fprintf(b, "   Contrast: %.2f:1 (needs 4.5:1 minimum)\n\n", f.Ratio)
		}
	}

	b.WriteString(rule + "\n\n")
}

func writeEntry(b *strings.Builder, e Entry) {
	status := "FAIL"
	if colour.MeetsAA(e.Ratio, false) {
		status = "PASS"
	}
	fmt.Fprintf(b, "  • %s (L:%d%%) — %s\n", e.Label, e.Lightness, e.Hex)
	fmt.Fprintf(b, "    Contrast: %.2f:1\n", e.Ratio)
	fmt.Fprintf(b, "    Status: %s\n", status)
	fmt.Fprintf(b, "    Level: %s\n\n", levelLabel(e.Ratio))
}

// levelLabel describes the best WCAG level a ratio reaches for normal text.
func levelLabel(ratio float64) string {
	switch colour.LevelFor(ratio) {
	case colour.LevelAAA:
		return "AAA ✓"
	case colour.LevelAA:
		return "AA ✓"
	case colour.LevelAALarge:
		return "AA Large ✓"
	}
	return "Does not meet WCAG standards"
}

func writeFooter(b *strings.Builder) {
	b.WriteString("\n" + rule + "\n\n")
	b.WriteString("## WCAG STANDARDS\n\n")
	b.WriteString("AA:  4.5:1 minimum (normal text), 3:1 (large text 18pt+)\n")
	b.WriteString("AAA: 7:1 minimum (normal text), 4.5:1 (large text 18pt+)\n")
}
