package figma

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/optics-ui/optics/internal/colour"
	"github.com/optics-ui/optics/internal/output"
	"github.com/optics-ui/optics/internal/palette"
)

func testGenerator() *palette.Generator {
	return palette.NewGenerator(palette.WithClock(func() time.Time {
		return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}))
}

func TestFigmaPlugin_Validate(t *testing.T) {
	tests := []struct {
		mode    Mode
		wantErr bool
	}{
		{ModeLight, false},
		{ModeDark, false},
		{ModeBoth, false},
		{"sepia", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			err := NewWithMode(tt.mode).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFigmaPlugin_GenerateParametric(t *testing.T) {
	pal, err := testGenerator().Parametric(colour.String("#3b82f6"), "primary", 12)
	if err != nil {
		t.Fatalf("Parametric() error = %v", err)
	}

	files, err := New().Generate(pal)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	data, ok := files["primary-figma.json"]
	if !ok || len(files) != 1 {
		t.Fatalf("Generate() files = %v, want primary-figma.json only", keys(files))
	}

	var doc struct {
		Stops       map[string]variable `json:"primary"`
		Foregrounds struct {
			Light map[string]variable `json:"light"`
			Dark  map[string]variable `json:"dark"`
		} `json:"primary-foregrounds"`
		Extensions rootExtensions `json:"$extensions"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(doc.Stops) != 12 || len(doc.Foregrounds.Light) != 12 || len(doc.Foregrounds.Dark) != 12 {
		t.Errorf("group sizes = %d/%d/%d, want 12 each",
			len(doc.Stops), len(doc.Foregrounds.Light), len(doc.Foregrounds.Dark))
	}
	if doc.Extensions.ModeName != "Light" {
		t.Errorf("modeName = %q, want Light", doc.Extensions.ModeName)
	}

	first := doc.Stops["0"]
	if first.Type != "color" || first.Value.Hex != pal.Stops[0].Background.Hex {
		t.Errorf("stop 0 = %+v", first)
	}
	if !strings.HasPrefix(first.Extensions.VariableID, "VariableID:") {
		t.Errorf("variable ID = %q", first.Extensions.VariableID)
	}
	if first.Extensions.CodeSyntax == nil || first.Extensions.CodeSyntax.Web != first.Value.Hex {
		t.Errorf("code syntax = %+v", first.Extensions.CodeSyntax)
	}

	ids := make(map[string]bool)
	for _, group := range []map[string]variable{doc.Stops, doc.Foregrounds.Light, doc.Foregrounds.Dark} {
		for _, v := range group {
			if ids[v.Extensions.VariableID] {
				t.Fatalf("duplicate variable ID %s", v.Extensions.VariableID)
			}
			ids[v.Extensions.VariableID] = true
		}
	}

	// Stops stay in numeric order rather than lexical order.
	if strings.Index(string(data), `"10": {`) < strings.Index(string(data), `"9": {`) {
		t.Error("stop 10 written before stop 9")
	}
}

func TestFigmaPlugin_GenerateOptics(t *testing.T) {
	pal, err := testGenerator().Optics(colour.String("#3b82f6"), "primary")
	if err != nil {
		t.Fatalf("Optics() error = %v", err)
	}

	tests := []struct {
		mode      Mode
		wantFiles []string
	}{
		{ModeBoth, []string{"primary-light.tokens.json", "primary-dark.tokens.json"}},
		{ModeLight, []string{"primary-light.tokens.json"}},
		{ModeDark, []string{"primary-dark.tokens.json"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			files, err := NewWithMode(tt.mode).Generate(pal)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(files) != len(tt.wantFiles) {
				t.Fatalf("Generate() files = %v, want %v", keys(files), tt.wantFiles)
			}
			for _, name := range tt.wantFiles {
				if _, ok := files[name]; !ok {
					t.Errorf("missing %s", name)
				}
			}
		})
	}
}

func TestExportOpticsStructure(t *testing.T) {
	pal, err := testGenerator().Optics(colour.String("#3b82f6"), "primary")
	if err != nil {
		t.Fatalf("Optics() error = %v", err)
	}

	data, err := ExportOptics(pal, ModeDark)
	if err != nil {
		t.Fatalf("ExportOptics() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if ext := doc["$extensions"].(map[string]any); ext["com.figma.modeName"] != "Dark" {
		t.Errorf("modeName = %v, want Dark", ext["com.figma.modeName"])
	}

	tokens := doc["op-color"].(map[string]any)["primary"].(map[string]any)
	for _, group := range []string{"plus", "base", "minus", "on"} {
		if _, ok := tokens[group]; !ok {
			t.Errorf("missing group %q", group)
		}
	}

	base := tokens["base"].(map[string]any)["bg"].(map[string]any)
	baseStop, _ := pal.Stop(palette.Base)
	value := base["$value"].(map[string]any)
	if value["hex"] != strings.ToUpper(baseStop.Background.Dark.Hex) {
		t.Errorf("base bg hex = %v, want %s", value["hex"], strings.ToUpper(baseStop.Background.Dark.Hex))
	}
	ext := base["$extensions"].(map[string]any)
	if ext["com.figma.variableId"] != "primary-base-bg" {
		t.Errorf("variableId = %v", ext["com.figma.variableId"])
	}
	if web := ext["com.figma.codeSyntax"].(map[string]any)["WEB"]; web != "var(--op-color-primary-base-bg)" {
		t.Errorf("WEB = %v", web)
	}

	onAlt := tokens["on"].(map[string]any)["minus"].(map[string]any)["max"].(map[string]any)["on-alt"].(map[string]any)
	minusMax, _ := pal.Stop(palette.MinusMax)
	if got := onAlt["$value"].(map[string]any)["hex"]; got != strings.ToUpper(minusMax.OnAlt.Dark.Hex) {
		t.Errorf("minus-max on-alt = %v, want %s", got, strings.ToUpper(minusMax.OnAlt.Dark.Hex))
	}

	components := value["components"].([]any)
	rgb, _ := colour.ParseHex(baseStop.Background.Dark.Hex)
	r, _, _ := rgb.Bytes()
	if components[0].(float64) != float64(r)/255 {
		t.Errorf("red component = %v, want %v", components[0], float64(r)/255)
	}
}

func TestExportOpticsInvalidMode(t *testing.T) {
	pal, _ := testGenerator().Optics(colour.String("#3b82f6"), "primary")
	if _, err := ExportOptics(pal, ModeBoth); err == nil {
		t.Error("ExportOptics(both) should fail")
	}
}

func TestFigmaPlugin_Unsupported(t *testing.T) {
	if _, err := New().Generate(nil); !errors.Is(err, output.ErrUnsupportedPalette) {
		t.Errorf("Generate(nil) error = %v, want ErrUnsupportedPalette", err)
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
