package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/optics-ui/optics/internal/colour"
	"github.com/optics-ui/optics/internal/palette"
)

func TestReportPlugin_Generate(t *testing.T) {
	pal, err := palette.GenerateParametric(colour.String("#3b82f6"), "primary", 8)
	if err != nil {
		t.Fatalf("GenerateParametric() error = %v", err)
	}

	files, err := New().Generate(pal)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if _, ok := files["primary-contrast-report.txt"]; !ok || len(files) != 1 {
		t.Errorf("Generate() returned unexpected files")
	}
}

func TestParametricReport(t *testing.T) {
	pal, err := palette.GenerateParametric(colour.String("#3b82f6"), "primary", 16)
	if err != nil {
		t.Fatalf("GenerateParametric() error = %v", err)
	}
	report := Parametric(pal)

	for _, want := range []string{
		"# WCAG Contrast Report\n",
		"# Palette: primary\n",
		"# Base Color: " + pal.BaseColor.Hex + "\n",
		"# Total Stops: 16\n",
		"## DETAILED CONTRAST ANALYSIS",
		"### Stop 0\n",
		"### Stop 15\n",
		"Recommended: Use dark foreground",
		"## WCAG STANDARDS",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Every stop has exactly one recommended foreground that is at least as
	// good as the alternative, so the number of failures is bounded by
	// the number of foregrounds below 4.5:1.
	failures := 0
	for _, stop := range pal.Stops {
		for _, fg := range []palette.Foreground{stop.Foregrounds.Light, stop.Foregrounds.Dark} {
			if fg.Contrast < colour.AANormal {
				failures++
			}
		}
	}
	if failures > 0 {
		want := fmt.Sprintf("Found %d combinations that FAIL", failures)
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestOpticsReport(t *testing.T) {
	pal, err := palette.GenerateOptics(colour.String("#3b82f6"), "primary")
	if err != nil {
		t.Fatalf("GenerateOptics() error = %v", err)
	}
	report := Optics(pal)

	for _, want := range []string{
		"# Total Stops: 19\n",
		"## LIGHT Mode",
		"## DARK Mode",
		"### plus-max\nBackground: #ffffff (L:100%)",
		"  • On (L:0%) — #000000\n    Contrast: 21.00:1\n    Status: PASS\n    Level: AAA ✓\n",
		"### minus-max\n",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestFailuresSummary(t *testing.T) {
	var b strings.Builder
	writeFailures(&b, nil)
	if !strings.Contains(b.String(), "ALL COMBINATIONS PASS") {
		t.Errorf("empty summary = %q", b.String())
	}

	b.Reset()
	writeFailures(&b, []Failure{{
		Mode:                "Dark",
		Stop:                "base",
		Background:          "#1d4ed8",
		BackgroundLightness: 48,
		Foreground:          "#2563eb",
		ForegroundLightness: 53,
		ForegroundType:      "on-alt",
		Ratio:               1.234,
	}})
	for _, want := range []string{
		"Found 1 combinations that FAIL WCAG AA standard (4.5:1):",
		"❌ Dark Mode • Stop base • on-alt foreground",
		"Background: #1d4ed8 (L:48%) → Foreground: #2563eb (L:53%)",
		"Contrast: 1.23:1 (needs 4.5:1 minimum)",
	} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{21, "AAA ✓"},
		{7, "AAA ✓"},
		{5, "AA ✓"},
		{3.5, "AA Large ✓"},
		{2, "Does not meet WCAG standards"},
	}
	for _, tt := range tests {
		if got := levelLabel(tt.ratio); got != tt.want {
			t.Errorf("levelLabel(%v) = %q, want %q", tt.ratio, got, tt.want)
		}
	}
}
