package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"repocheck/internal/report"
)

// ConsoleSink renders reports to a terminal stream.
type ConsoleSink struct {
	writer  io.Writer
	format  string // "text", "json", "markdown"
	verbose bool
	mu      sync.Mutex
}

func NewConsoleSink(w io.Writer, format string, verbose bool) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = "text"
	}
	return &ConsoleSink{
		writer:  w,
		format:  format,
		verbose: verbose,
	}
}

func (s *ConsoleSink) Write(r *report.LintReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.format {
	case "text":
		return WriteText(s.writer, r, s.verbose)
	case "json":
		return WriteJSON(s.writer, r)
	case "markdown":
		return WriteMarkdown(s.writer, r)
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return flush(s.writer)
}
