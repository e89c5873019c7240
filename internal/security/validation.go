// Package security validates user-supplied names and paths before they reach
// the filesystem.
package security

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// paletteNamePattern restricts palette names to characters that are safe in
// filenames, CSS custom properties and JavaScript object keys.
var paletteNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidatePaletteName checks that a palette name can be embedded in output
// filenames and generated identifiers.
func ValidatePaletteName(name string) error {
	if name == "" {
		return fmt.Errorf("empty palette name")
	}
	if !paletteNamePattern.MatchString(name) {
		return fmt.Errorf("invalid palette name %q (use letters, digits, '-' and '_', starting with a letter or digit)", name)
	}
	return nil
}

// ValidateFilePath validates an output file path to prevent directory traversal.
// The path must be relative and resolve inside baseDir.
func ValidateFilePath(filePath, baseDir string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}

	// Check for dangerous patterns
	if strings.Contains(filePath, "..") {
		return fmt.Errorf("file path contains directory traversal (..) - not allowed")
	}

	if filepath.IsAbs(filePath) {
		return fmt.Errorf("absolute output file names are not allowed")
	}

	// Ensure the final path would be within baseDir
	cleanBase := filepath.Clean(baseDir)
	cleanFinal := filepath.Join(cleanBase, filePath)

	rel, err := filepath.Rel(cleanBase, cleanFinal)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("file path would escape output directory")
	}

	return nil
}
