package output

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/optics-ui/optics/internal/security"
)

// WrittenFile describes one file produced by a Writer.
type WrittenFile struct {
	Path string
	Size int
}

// Writer persists plugin output into a directory.
type Writer struct {
	// Dir is the directory files are written into. It is created on demand.
	Dir string

	// DryRun reports what would be written without touching the filesystem.
	DryRun bool

	Logger hclog.Logger
}

// NewWriter creates a Writer for dir.
func NewWriter(dir string, dryRun bool, logger hclog.Logger) *Writer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Writer{Dir: dir, DryRun: dryRun, Logger: logger}
}

// Write validates every filename, then writes the files in name order.
// Nothing is written if any filename would escape the output directory.
func (w *Writer) Write(files map[string][]byte) ([]WrittenFile, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		if err := security.ValidateFilePath(name, w.Dir); err != nil {
			return nil, fmt.Errorf("invalid output file %q: %w", name, err)
		}
		names = append(names, name)
	}
	slices.Sort(names)

	written := make([]WrittenFile, 0, len(names))
	for _, name := range names {
		path := filepath.Join(w.Dir, name)
		content := files[name]

		if w.DryRun {
			w.Logger.Debug("dry run, skipping write", "path", path, "bytes", len(content))
		} else {
			if err := writeFile(path, content); err != nil {
				return written, err
			}
			w.Logger.Debug("wrote file", "path", path, "bytes", len(content))
		}
		written = append(written, WrittenFile{Path: path, Size: len(content)})
	}
	return written, nil
}

func writeFile(path string, content []byte) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
