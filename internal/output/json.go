package output

import (
	"encoding/json"
	"io"

	"repocheck/internal/report"
)

// WriteJSON renders the report as indented JSON.
func WriteJSON(w io.Writer, r *report.LintReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return err
	}
	return flush(w)
}

// flush drains w when it buffers, as *bufio.Writer does.
func flush(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
