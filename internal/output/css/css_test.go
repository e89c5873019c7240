package css

import (
	"strings"
	"testing"

	"github.com/optics-ui/optics/internal/colour"
	"github.com/optics-ui/optics/internal/palette"
)

func TestCSSPlugin_Validate(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		wantErr  bool
	}{
		{name: "root", selector: ":root"},
		{name: "class", selector: ".theme-brand"},
		{name: "empty", selector: "  ", wantErr: true},
		{name: "braces", selector: ":root { }", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Plugin{selector: tt.selector}
			if err := p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCSSPlugin_GenerateOptics(t *testing.T) {
	pal, err := palette.GenerateOptics(colour.String("#3b82f6"), "primary")
	if err != nil {
		t.Fatalf("GenerateOptics() error = %v", err)
	}

	files, err := New().Generate(pal)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	css := string(files["primary-optics.css"])
	if css == "" {
		t.Fatal("primary-optics.css not generated")
	}

	base, _ := pal.Stop(palette.Base)
	for _, want := range []string{
		":root {\n",
		"/* primary Optics Scale - Generated from " + pal.BaseColor.Hex + " */",
		"--op-primary-plus-max-bg: light-dark(#ffffff, ",
		"--op-primary-base-bg: light-dark(" + base.Background.Light.Hex + ", " + base.Background.Dark.Hex + ");",
		"--op-primary-minus-max-on-alt: light-dark(",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("stylesheet missing %q", want)
		}
	}
	if got := strings.Count(css, ": light-dark("); got != 19*3 {
		t.Errorf("light-dark() count = %d, want %d", got, 19*3)
	}
	if !strings.HasSuffix(css, "}\n") {
		t.Error("stylesheet not closed")
	}
}

func TestCSSPlugin_GenerateParametric(t *testing.T) {
	pal, err := palette.GenerateParametric(colour.String("#3b82f6"), "brand", 4)
	if err != nil {
		t.Fatalf("GenerateParametric() error = %v", err)
	}

	p := New()
	p.selector = ".brand"
	files, err := p.Generate(pal)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	css := string(files["brand.css"])

	last := pal.Stops[3]
	for _, want := range []string{
		".brand {\n",
		"--brand-0-bg: " + pal.Stops[0].Background.Hex + ";",
		"--brand-3-fg: " + last.Recommended().Hex + ";",
		"--brand-3-fg-light: " + last.Foregrounds.Light.Hex + ";",
		"--brand-3-fg-dark: " + last.Foregrounds.Dark.Hex + ";",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("stylesheet missing %q", want)
		}
	}
}
