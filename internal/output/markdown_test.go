package output

import (
	"bytes"
	"strings"
	"testing"

	"repocheck/internal/report"
)

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"This report was generated for `/repo` using ruleset `/repo/repolint.json`.",
		"**Result: Failed**",
		"| Errored | 1 |",
		"| Ignored | 1 |",
		"### `license-exists`",
		"Every repository needs a license ([policy](https://example.com/policy))",
		"- ❌ `LICENSE*`: not found",
		"Fix `file-create`: Created file LICENSE",
		"- ✅ `README.md`",
		"ignored because level is off",
		"Generated automatically.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q\n%s", want, out)
		}
	}

	// Sections appear in severity order.
	order := []string{"## Errored", "## Failed", "## Warning", "## Passed", "## Ignored"}
	last := -1
	for _, h := range order {
		i := strings.Index(out, h)
		if i < 0 {
			t.Fatalf("missing section %q", h)
		}
		if i < last {
			t.Errorf("section %q out of order", h)
		}
		last = i
	}
}

func TestWriteMarkdown_ConfigError(t *testing.T) {
	var buf bytes.Buffer
	rep := &report.LintReport{Params: report.Params{TargetDir: "."}, Errored: true, ErrMsg: "bad config"}
	if err := WriteMarkdown(&buf, rep); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	if !strings.Contains(buf.String(), "## Configuration Error") || !strings.Contains(buf.String(), "bad config") {
		t.Errorf("unexpected markdown:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "**Result:") {
		t.Errorf("errored report should not have a verdict\n%s", buf.String())
	}
}
