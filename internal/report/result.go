package report

import (
	"repocheck/internal/plugins"
	"repocheck/internal/ruleset"
)

type Status string

const (
	StatusError      Status = "ERROR"
	StatusIgnored    Status = "IGNORED"
	StatusLintOnly   Status = "LINT_ONLY"
	StatusLintAndFix Status = "LINT_AND_FIX"
)

// FormatResult is the outcome of one rule in one run.
type FormatResult struct {
	Rule   ruleset.Rule `json:"ruleInfo"`
	Status Status       `json:"status"`
	// RunMessage is the error message for ERROR and the reason for IGNORED.
	RunMessage string          `json:"runMessage,omitempty"`
	LintResult *plugins.Result `json:"lintResult,omitempty"`
	FixResult  *plugins.Result `json:"fixResult,omitempty"`
}

func Errored(rule ruleset.Rule, message string) FormatResult {
	return FormatResult{Rule: rule, Status: StatusError, RunMessage: message}
}

func Ignored(rule ruleset.Rule, reason string) FormatResult {
	return FormatResult{Rule: rule, Status: StatusIgnored, RunMessage: reason}
}

func LintOnly(rule ruleset.Rule, lint plugins.Result) FormatResult {
	return FormatResult{Rule: rule, Status: StatusLintOnly, LintResult: &lint}
}

func LintAndFix(rule ruleset.Rule, lint, fix plugins.Result) FormatResult {
	return FormatResult{Rule: rule, Status: StatusLintAndFix, LintResult: &lint, FixResult: &fix}
}

// Failed reports whether the rule ran and its check did not pass.
func (r FormatResult) Failed() bool {
	return r.LintResult != nil && !r.LintResult.Passed
}

// Outcome is the summary bucket a result is counted in.
type Outcome string

const (
	OutcomePassed  Outcome = "passed"
	OutcomeFailed  Outcome = "failed"
	OutcomeWarning Outcome = "warning"
	OutcomeErrored Outcome = "errored"
	OutcomeIgnored Outcome = "ignored"
)

func (r FormatResult) Outcome() Outcome {
	switch {
	case r.Status == StatusError:
		return OutcomeErrored
	case r.Status == StatusIgnored:
		return OutcomeIgnored
	case r.Failed() && r.Rule.Level == ruleset.LevelWarning:
		return OutcomeWarning
	case r.Failed():
		return OutcomeFailed
	default:
		return OutcomePassed
	}
}
