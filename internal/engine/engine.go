package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"repocheck/internal/fsys"
	"repocheck/internal/logging"
	"repocheck/internal/metrics"
	"repocheck/internal/plugins"
	"repocheck/internal/report"
	"repocheck/internal/ruleset"
	"repocheck/internal/schema"

	"github.com/google/uuid"
)

// Engine lints a repository against a ruleset using the plugins of one
// registry.
type Engine struct {
	registry    *plugins.Registry
	validator   *schema.Validator
	logger      *slog.Logger
	metrics     *metrics.Recorder
	concurrency int
}

type Option func(*Engine)

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func WithMetrics(m *metrics.Recorder) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithConcurrency caps how many rules run at once; <= 0 means no cap.
func WithConcurrency(n int) Option {
	return func(e *Engine) { e.concurrency = n }
}

func NewEngine(reg *plugins.Registry, opts ...Option) *Engine {
	if reg == nil {
		reg = plugins.Default()
	}
	e := &Engine{
		registry:  reg,
		validator: schema.New(reg),
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.Discard()
	}
	return e
}

// Lint validates and normalizes doc, resolves its axioms and runs every rule
// against fs.
//
// A ruleset that fails validation or normalization produces an errored report
// and a nil error; nothing is executed in that case. A non-nil error is
// returned only when an axiom faults, which aborts the run.
func (e *Engine) Lint(ctx context.Context, fs fsys.FileSystem, doc *ruleset.Document, params report.Params) (*report.LintReport, error) {
	if doc == nil {
		return nil, errors.New("ruleset document is nil")
	}
	if params.RunID == "" {
		params.RunID = uuid.NewString()
	}
	if params.TargetDir == "" {
		params.TargetDir = fs.TargetDir()
	}
	logger := e.logger.With("run", params.RunID)

	if v := e.validator.Validate(doc); !v.Passed {
		logger.Warn("ruleset failed validation", "source", doc.Source)
		e.metrics.ObserveRun(metrics.OutcomeErrored)
		return report.ConfigError(params, v.Error), nil
	}

	rules, err := ruleset.Normalize(doc)
	if err != nil {
		logger.Warn("ruleset could not be normalized", "source", doc.Source, "err", err)
		e.metrics.ObserveRun(metrics.OutcomeErrored)
		return report.ConfigError(params, err.Error()), nil
	}

	bindings, err := doc.Axioms()
	if err != nil {
		e.metrics.ObserveRun(metrics.OutcomeErrored)
		return report.ConfigError(params, err.Error()), nil
	}
	formatOptions, err := doc.FormatOptions()
	if err != nil {
		e.metrics.ObserveRun(metrics.OutcomeErrored)
		return report.ConfigError(params, err.Error()), nil
	}

	targets := map[string]plugins.Result{}
	tokens := MatchAll()
	if len(bindings) > 0 {
		resolver := &AxiomResolver{Registry: e.registry, Logger: logger, Metrics: e.metrics}
		targets, err = resolver.Resolve(ctx, bindings, fs)
		if err != nil {
			e.metrics.ObserveRun(metrics.OutcomeErrored)
			return nil, fmt.Errorf("resolve axioms: %w", err)
		}
		tokens = NewTokenSet(targets)
		logger.Debug("axioms resolved", "tokens", tokens.Tokens())
	}

	dispatcher := &Dispatcher{
		Registry:    e.registry,
		Logger:      logger,
		Metrics:     e.metrics,
		Concurrency: e.concurrency,
	}
	results := dispatcher.Dispatch(ctx, rules, tokens, fs, params.DryRun)
	passed := Aggregate(results)

	outcome := metrics.OutcomePassed
	if !passed {
		outcome = metrics.OutcomeFailed
	}
	e.metrics.ObserveRun(outcome)
	logger.Info("lint finished", "rules", len(results), "passed", passed)

	return &report.LintReport{
		Params:        params,
		Passed:        passed,
		Results:       results,
		Targets:       targets,
		FormatOptions: formatOptions,
	}, nil
}
