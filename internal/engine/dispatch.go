package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"repocheck/internal/fsys"
	"repocheck/internal/logging"
	"repocheck/internal/metrics"
	"repocheck/internal/plugins"
	"repocheck/internal/report"
	"repocheck/internal/ruleset"

	"golang.org/x/sync/errgroup"
)

const reasonLevelOff = "ignored because level is off"

// Dispatcher runs rules, and their fixes when they fail, against a
// repository.
type Dispatcher struct {
	Registry *plugins.Registry
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	// Concurrency caps how many rules run at once; <= 0 means no cap.
	Concurrency int
}

// Dispatch runs every rule concurrently and returns exactly one result per
// rule, in the order of rules. A rule or fix that errors or panics yields an
// ERROR result for that rule only.
func (d *Dispatcher) Dispatch(ctx context.Context, rules []ruleset.Rule, tokens TokenSet, fs fsys.FileSystem, dryRun bool) []report.FormatResult {
	logger := d.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	out := make([]report.FormatResult, len(rules))
	var g errgroup.Group
	if d.Concurrency > 0 {
		g.SetLimit(d.Concurrency)
	}
	for i, r := range rules {
		g.Go(func() error {
			start := time.Now()
			res := d.runRule(ctx, r, tokens, fs, dryRun)
			elapsed := time.Since(start)

			ruleType := r.RuleType
			if res.Status == report.StatusIgnored {
				ruleType = ""
			}
			d.Metrics.ObserveRule(ruleType, string(res.Status), string(r.Level), elapsed)
			logger.Debug("rule finished",
				"rule", r.Name,
				"type", r.RuleType,
				"status", res.Status,
				"duration", elapsed,
			)
			out[i] = res
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (d *Dispatcher) runRule(ctx context.Context, r ruleset.Rule, tokens TokenSet, fs fsys.FileSystem, dryRun bool) report.FormatResult {
	if r.Level == ruleset.LevelOff {
		return report.Ignored(r, reasonLevelOff)
	}
	if unsatisfied := tokens.Unsatisfied(r.Where); len(unsatisfied) > 0 {
		return report.Ignored(r, fmt.Sprintf("ignored due to unsatisfied condition(s): %s", quoteList(unsatisfied)))
	}

	rule, ok := d.Registry.Rule(r.RuleType)
	if !ok {
		return report.Errored(r, fmt.Sprintf("%s is not a valid rule", r.RuleType))
	}
	lint, err := checkRule(ctx, rule, fs, r.RuleConfig)
	if err != nil {
		return report.Errored(r, fmt.Sprintf("%s threw an error: %v", r.RuleType, err))
	}

	if !r.HasFix() || lint.Passed {
		return report.LintOnly(r, lint)
	}

	fix, ok := d.Registry.Fix(r.FixType)
	if !ok {
		return report.Errored(r, fmt.Sprintf("%s is not a valid fix", r.FixType))
	}
	fixed, err := applyFix(ctx, fix, fs, r.FixConfig, lint.FailingPaths(), dryRun)
	if err != nil {
		return report.Errored(r, fmt.Sprintf("%s threw an error: %v", r.FixType, err))
	}
	return report.LintAndFix(r, lint, fixed)
}

func checkRule(ctx context.Context, rule plugins.Rule, fs fsys.FileSystem, options map[string]any) (res plugins.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return rule.Check(ctx, fs, options)
}

func applyFix(ctx context.Context, fix plugins.Fix, fs fsys.FileSystem, options map[string]any, targets []string, dryRun bool) (res plugins.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return fix.Fix(ctx, fs, options, targets, dryRun)
}
