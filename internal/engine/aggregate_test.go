package engine

import (
	"testing"

	"repocheck/internal/plugins"
	"repocheck/internal/report"
	"repocheck/internal/ruleset"
)

func TestAggregate(t *testing.T) {
	errRule := ruleset.Rule{Name: "e", Level: ruleset.LevelError}
	warnRule := ruleset.Rule{Name: "w", Level: ruleset.LevelWarning}
	offRule := ruleset.Rule{Name: "o", Level: ruleset.LevelOff}

	tests := []struct {
		name    string
		results []report.FormatResult
		want    bool
	}{
		{name: "empty", results: nil, want: true},
		{
			name:    "all passing",
			results: []report.FormatResult{report.LintOnly(errRule, plugins.PassResult("ok"))},
			want:    true,
		},
		{
			name:    "error level failure",
			results: []report.FormatResult{report.LintOnly(errRule, plugins.FailResult("bad"))},
			want:    false,
		},
		{
			name:    "error level failure with fix still fails",
			results: []report.FormatResult{report.LintAndFix(errRule, plugins.FailResult("bad"), plugins.PassResult("fixed"))},
			want:    false,
		},
		{
			name:    "warning failure passes",
			results: []report.FormatResult{report.LintOnly(warnRule, plugins.FailResult("meh"))},
			want:    true,
		},
		{
			name:    "ignored passes",
			results: []report.FormatResult{report.Ignored(offRule, reasonLevelOff), report.Ignored(errRule, "unsatisfied")},
			want:    true,
		},
		{
			name:    "errored warning rule fails",
			results: []report.FormatResult{report.Errored(warnRule, "x is not a valid rule")},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Aggregate(tt.results); got != tt.want {
				t.Errorf("Aggregate() = %v, want %v", got, tt.want)
			}
		})
	}
}
