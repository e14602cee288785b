package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"repocheck/internal/report"
)

// FileSink writes the report to a file in json or markdown format.
type FileSink struct {
	path   string
	format string
	file   *os.File
	mu     sync.Mutex
}

func NewFileSink(path string, format string) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("output path required")
	}

	// Infer format if not provided
	if format == "" {
		ext := strings.ToLower(filepath.Ext(path))
		switch ext {
		case ".json":
			format = "json"
		case ".md", ".markdown":
			format = "markdown"
		default:
			return nil, fmt.Errorf("cannot infer output format from file extension %q", ext)
		}
	}

	if format != "json" && format != "markdown" {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &FileSink{
		path:   path,
		format: format,
		file:   f,
	}, nil
}

func (s *FileSink) Write(r *report.LintReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.format {
	case "json":
		return WriteJSON(s.file, r)
	case "markdown":
		return WriteMarkdown(s.file, r)
	}
	return nil
}

func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
