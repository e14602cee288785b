package engine

import (
	"repocheck/internal/report"
	"repocheck/internal/ruleset"
)

// Aggregate folds rule outcomes into the run verdict. A run fails if any rule
// errored, or if any error-level rule that ran did not pass. Warnings and
// ignored rules never fail a run.
func Aggregate(results []report.FormatResult) bool {
	for _, r := range results {
		switch r.Status {
		case report.StatusError:
			return false
		case report.StatusIgnored:
			continue
		}
		if r.Rule.Level == ruleset.LevelError && r.Failed() {
			return false
		}
	}
	return true
}
