package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"repocheck/internal/report"

	"github.com/fatih/color"
)

func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestConsoleSink_Text(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	s := NewConsoleSink(&buf, "text", false)
	if err := s.Write(sampleReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Lint report for /repo",
		"Ruleset: /repo/repolint.json",
		"[PASS] readme-exists: Found file",
		"[FAIL] license-exists: Did not find a file",
		"policy: Every repository needs a license (https://example.com/policy)",
		"x LICENSE*: not found",
		"fix file-create: Created file LICENSE",
		"[WARN] notes: Missing NOTES",
		"[SKIP] disabled: ignored because level is off",
		"[ERROR] bogus: nope is not a valid rule",
		"1 passed, 1 failed, 1 warnings, 1 errors, 1 ignored",
		"Lint failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "ok README.md") {
		t.Errorf("passing targets should be hidden without verbose\n%s", out)
	}
}

func TestConsoleSink_TextVerbose(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	if err := NewConsoleSink(&buf, "text", true).Write(sampleReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "ok README.md") {
		t.Errorf("verbose output should list passing targets\n%s", buf.String())
	}
}

func TestConsoleSink_TextConfigError(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	rep := &report.LintReport{Params: report.Params{TargetDir: "/repo"}, Errored: true, ErrMsg: "/rules: missing properties: 'rules'"}
	if err := NewConsoleSink(&buf, "text", false).Write(rep); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "Configuration error: /rules: missing properties") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "passed,") {
		t.Errorf("errored report should not print a summary\n%s", buf.String())
	}
}

func TestWriteText_FlushesBufferedWriter(t *testing.T) {
	disableColor(t)

	tests := []struct {
		name string
		rep  *report.LintReport
	}{
		{name: "completed run", rep: sampleReport()},
		{name: "configuration error", rep: report.ConfigError(report.Params{TargetDir: "/repo"}, "bad ruleset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			bw := bufio.NewWriter(&buf)
			if err := WriteText(bw, tt.rep, false); err != nil {
				t.Fatalf("WriteText: %v", err)
			}
			if bw.Buffered() != 0 {
				t.Errorf("%d bytes left unflushed", bw.Buffered())
			}
			if !strings.Contains(buf.String(), "Lint report for /repo") {
				t.Errorf("unexpected output:\n%s", buf.String())
			}
		})
	}
}

func TestConsoleSink_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewConsoleSink(&buf, "json", false).Write(sampleReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	results, ok := decoded["results"].([]any)
	if !ok || len(results) != 5 {
		t.Fatalf("expected 5 results, got %v", decoded["results"])
	}
	first := results[0].(map[string]any)
	if first["status"] != "LINT_ONLY" {
		t.Errorf("first status: got %v", first["status"])
	}
	info := first["ruleInfo"].(map[string]any)
	if info["name"] != "readme-exists" {
		t.Errorf("first ruleInfo.name: got %v", info["name"])
	}
}

func TestConsoleSink_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := NewConsoleSink(&buf, "xml", false).Write(sampleReport()); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
