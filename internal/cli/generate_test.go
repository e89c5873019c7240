// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/optics-ui/optics/internal/cli"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), err
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s) error = %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// TestGenerateCommand tests the generate command for both palette kinds.
func TestGenerateCommand(t *testing.T) {
	t.Run("ParametricDefaults", func(t *testing.T) {
		dir := t.TempDir()
		out, err := run(t, "generate", "#3b82f6", "-n", "brand", "-s", "8", "-o", dir)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		want := []string{"brand-contrast-report.txt", "brand-figma.json"}
		if got := listFiles(t, dir); !slices.Equal(got, want) {
			t.Errorf("files = %v, want %v", got, want)
		}
		for _, s := range []string{`parametric palette "brand"`, "Stops:       8", "Light FG", "Figma import"} {
			if !strings.Contains(out, s) {
				t.Errorf("output missing %q:\n%s", s, out)
			}
		}
	})

	t.Run("OpticsAllFormats", func(t *testing.T) {
		dir := t.TempDir()
		out, err := run(t, "generate", "#3b82f6", "--optics", "-o", dir)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		want := []string{
			"palette-contrast-report.txt",
			"palette-dark.tokens.json",
			"palette-light.tokens.json",
			"palette-optics-tailwind.js",
			"palette-optics-tokens.json",
			"palette-optics.css",
			"palette-optics.json",
		}
		if got := listFiles(t, dir); !slices.Equal(got, want) {
			t.Errorf("files = %v, want %v", got, want)
		}
		for _, s := range []string{"plus-max", "base", "minus-max", "On-alt"} {
			if !strings.Contains(out, s) {
				t.Errorf("output missing %q", s)
			}
		}
	})

	t.Run("OpticsLightModeOnly", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := run(t, "generate", "teal", "--optics", "-n", "accent", "-m", "light", "-f", "figma", "-o", dir); err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if got := listFiles(t, dir); !slices.Equal(got, []string{"accent-light.tokens.json"}) {
			t.Errorf("files = %v", got)
		}
	})

	t.Run("SelectedFormats", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := run(t, "generate", "rgb(16, 185, 129)", "-n", "success", "-s", "5", "-f", "json,css", "-o", dir); err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if got := listFiles(t, dir); !slices.Equal(got, []string{"success.css", "success.json"}) {
			t.Errorf("files = %v", got)
		}

		data, err := os.ReadFile(filepath.Join(dir, "success.json"))
		if err != nil {
			t.Fatal(err)
		}
		var doc struct {
			Name  string `json:"name"`
			Stops []any  `json:"stops"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if doc.Name != "success" || len(doc.Stops) != 5 {
			t.Errorf("palette = %s with %d stops", doc.Name, len(doc.Stops))
		}
	})

	t.Run("DryRun", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		out, err := run(t, "generate", "#3b82f6", "--dry-run", "-o", dir)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if !strings.Contains(out, "Would write: "+filepath.Join(dir, "palette-figma.json")) {
			t.Errorf("output missing dry run listing:\n%s", out)
		}
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Errorf("dry run created %s", dir)
		}
	})

	t.Run("Preview", func(t *testing.T) {
		out, err := run(t, "generate", "#3b82f6", "-s", "3", "--preview", "--dry-run", "-o", t.TempDir())
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if !strings.Contains(out, "Preview") {
			t.Errorf("output missing preview:\n%s", out)
		}
	})
}

func TestGenerateCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "invalid colour", args: []string{"generate", "not-a-color"}, wantErr: "invalid color"},
		{name: "too few stops", args: []string{"generate", "#3b82f6", "-s", "1"}, wantErr: "stops must be between 2 and 100"},
		{name: "too many stops", args: []string{"generate", "#3b82f6", "-s", "101"}, wantErr: "stops must be between 2 and 100"},
		{name: "unknown format", args: []string{"generate", "#3b82f6", "-f", "scss"}, wantErr: "unknown output format"},
		{name: "bad mode", args: []string{"generate", "#3b82f6", "-m", "sepia"}, wantErr: "invalid mode"},
		{name: "unsafe name", args: []string{"generate", "#3b82f6", "-n", "../escape"}, wantErr: "invalid palette name"},
		{name: "missing colour", args: []string{"generate"}, wantErr: "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := run(t, append(tt.args, "-o", dir)...)
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
			if files := listFiles(t, dir); len(files) != 0 {
				t.Errorf("files written on error: %v", files)
			}
		})
	}
}

func TestGenerateCommandEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OPTICS_OUTPUT_DIR", dir)
	t.Setenv("OPTICS_STOPS", "4")
	t.Setenv("OPTICS_FORMATS", "json")

	if _, err := run(t, "generate", "#3b82f6", "-n", "env"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "env.json"))
	if err != nil {
		t.Fatalf("env.json not written: %v", err)
	}
	var doc struct {
		Stops []any `json:"stops"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Stops) != 4 {
		t.Errorf("len(stops) = %d, want 4 from OPTICS_STOPS", len(doc.Stops))
	}
}

func TestInvalidEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		args    []string
		wantErr string
	}{
		{name: "log level", key: "OPTICS_LOG_LEVEL", value: "bogus", args: []string{"analyze", "#000", "#fff"}, wantErr: "invalid log level"},
		{name: "figma mode", key: "OPTICS_FIGMA_MODE", value: "sepia", args: []string{"scale"}, wantErr: "invalid figma mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("%v error = %v, want %q", tt.args, err, tt.wantErr)
			}
		})
	}

	// Stops are only checked by commands that use them.
	t.Setenv("OPTICS_STOPS", "500")
	if _, err := run(t, "analyze", "#000", "#fff"); err != nil {
		t.Errorf("analyze with OPTICS_STOPS=500 error = %v", err)
	}
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := run(t, "analyze", "#000000", "#ffffff")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	for _, s := range []string{"Contrast:    21.00:1", "Level:       AAA", "✓ pass"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}

	out, err = run(t, "analyze", "#777777", "#888888")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if !strings.Contains(out, "Level:       Fail") || strings.Contains(out, "✓ pass") {
		t.Errorf("low contrast pair reported as passing:\n%s", out)
	}

	if _, err := run(t, "analyze", "#000", "nope"); err == nil || !strings.Contains(err.Error(), "foreground") {
		t.Errorf("analyze with bad foreground error = %v", err)
	}
}

func TestScaleCommand(t *testing.T) {
	out, err := run(t, "scale", "-s", "5")
	if err != nil {
		t.Fatalf("scale failed: %v", err)
	}
	for _, s := range []string{"95.0%", "50.0%", "5.0%"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}

	if _, err := run(t, "scale", "-s", "0"); err == nil {
		t.Error("scale -s 0 should fail")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "optics version ") {
		t.Errorf("version output = %q", out)
	}
}
