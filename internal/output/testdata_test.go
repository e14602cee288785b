package output

import (
	"repocheck/internal/plugins"
	"repocheck/internal/report"
	"repocheck/internal/ruleset"
)

func sampleReport() *report.LintReport {
	readme := ruleset.Rule{Name: "readme-exists", Level: ruleset.LevelError, RuleType: "file-existence"}
	license := ruleset.Rule{
		Name:       "license-exists",
		Level:      ruleset.LevelError,
		RuleType:   "file-existence",
		FixType:    "file-create",
		PolicyInfo: "Every repository needs a license",
		PolicyURL:  "https://example.com/policy",
	}
	notes := ruleset.Rule{Name: "notes", Level: ruleset.LevelWarning, RuleType: "file-existence"}
	off := ruleset.Rule{Name: "disabled", Level: ruleset.LevelOff, RuleType: "file-existence"}
	bogus := ruleset.Rule{Name: "bogus", Level: ruleset.LevelError, RuleType: "nope"}

	return &report.LintReport{
		Params: report.Params{RunID: "run-1", TargetDir: "/repo", RulesetPath: "/repo/repolint.json"},
		Passed: false,
		Results: []report.FormatResult{
			report.LintOnly(readme, plugins.PassResult("Found file", plugins.Target{Path: "README.md", Passed: true})),
			report.LintAndFix(license,
				plugins.FailResult("Did not find a file matching the specified patterns", plugins.Target{Pattern: "LICENSE*", Message: "not found"}),
				plugins.PassResult("Created file LICENSE", plugins.Target{Path: "LICENSE", Passed: true})),
			report.LintOnly(notes, plugins.FailResult("Missing NOTES")),
			report.Ignored(off, "ignored because level is off"),
			report.Errored(bogus, "nope is not a valid rule"),
		},
		Targets:       map[string]plugins.Result{},
		FormatOptions: map[string]any{"disclaimer": "Generated automatically."},
	}
}
