package engine

import (
	"context"
	"fmt"
	"log/slog"

	"repocheck/internal/fsys"
	"repocheck/internal/logging"
	"repocheck/internal/metrics"
	"repocheck/internal/plugins"
	"repocheck/internal/ruleset"

	"golang.org/x/sync/errgroup"
)

// AxiomResolver runs the configured axioms against a repository.
type AxiomResolver struct {
	Registry *plugins.Registry
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Resolve runs every binding concurrently and returns the results keyed by
// display name. An unregistered axiom id yields a failed result for that
// axiom only. An axiom that errors (or panics) aborts the whole resolution:
// unlike rules, axiom faults are not isolated.
func (r *AxiomResolver) Resolve(ctx context.Context, bindings []ruleset.AxiomBinding, fs fsys.FileSystem) (map[string]plugins.Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	results := make([]plugins.Result, len(bindings))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range bindings {
		g.Go(func() error {
			ax, ok := r.Registry.Axiom(b.ID)
			if !ok {
				logger.Warn("invalid axiom", "axiom", b.ID, "name", b.Name)
				results[i] = plugins.FailResult(fmt.Sprintf("invalid axiom name %s", b.ID))
				return nil
			}
			res, err := resolveAxiom(gctx, ax, fs)
			if err != nil {
				return fmt.Errorf("axiom %s: %w", b.ID, err)
			}
			if res.Targets == nil {
				res.Targets = []plugins.Target{}
			}
			logger.Debug("axiom resolved", "axiom", b.ID, "name", b.Name, "passed", res.Passed, "targets", len(res.Targets))
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]plugins.Result, len(bindings))
	for i, b := range bindings {
		out[b.Name] = results[i]
		r.Metrics.ObserveAxiom(b.Name, results[i].Passed)
	}
	return out, nil
}

func resolveAxiom(ctx context.Context, ax plugins.Axiom, fs fsys.FileSystem) (res plugins.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return ax.Resolve(ctx, fs)
}
