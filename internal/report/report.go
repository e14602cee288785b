package report

import (
	"repocheck/internal/plugins"
)

// Params records what a run was invoked with.
type Params struct {
	RunID       string   `json:"runId"`
	TargetDir   string   `json:"targetDir"`
	FilterPaths []string `json:"filterPaths,omitempty"`
	RulesetPath string   `json:"rulesetPath,omitempty"`
	DryRun      bool     `json:"dryRun"`
}

// LintReport is the complete, externally visible outcome of a run.
type LintReport struct {
	Params  Params `json:"params"`
	Passed  bool   `json:"passed"`
	Errored bool   `json:"errored"`
	ErrMsg  string `json:"errMsg,omitempty"`
	// Results holds one entry per configured rule, in configuration order.
	Results []FormatResult `json:"results"`
	// Targets holds axiom results keyed by the axiom's display name.
	Targets       map[string]plugins.Result `json:"targets"`
	FormatOptions map[string]any            `json:"formatOptions,omitempty"`
}

// Counts tallies results for summaries.
type Counts struct {
	Passed   int
	Failed   int
	Warnings int
	Errors   int
	Ignored  int
}

func (r *LintReport) Counts() Counts {
	var c Counts
	for _, res := range r.Results {
		switch res.Outcome() {
		case OutcomeErrored:
			c.Errors++
		case OutcomeIgnored:
			c.Ignored++
		case OutcomeWarning:
			c.Warnings++
		case OutcomeFailed:
			c.Failed++
		default:
			c.Passed++
		}
	}
	return c
}

// ConfigError returns the report of a run whose ruleset could not be used.
// No rules ran.
func ConfigError(params Params, msg string) *LintReport {
	return &LintReport{
		Params:  params,
		Passed:  false,
		Errored: true,
		ErrMsg:  msg,
		Results: []FormatResult{},
		Targets: map[string]plugins.Result{},
	}
}
