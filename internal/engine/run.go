package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"repocheck/internal/config"
	"repocheck/internal/flags"
	"repocheck/internal/fsys"
	"repocheck/internal/logging"
	"repocheck/internal/metrics"
	"repocheck/internal/output"
	"repocheck/internal/plugins"
	"repocheck/internal/report"
	"repocheck/internal/ruleset"

	"github.com/google/uuid"
)

// Exit codes of a lint run.
const (
	ExitPassed      = 0
	ExitFailed      = 1
	ExitConfigError = 2
	ExitFatal       = 3
)

func exitCodeForRun(fatal, configErr, failed bool) int {
	// 0 = every error-level rule passed
	// 1 = rule failures or rule errors
	// 2 = the ruleset could not be used (nothing ran)
	// 3 = fatal error (lint did not run)
	if fatal {
		return ExitFatal
	}
	if configErr {
		return ExitConfigError
	}
	if failed {
		return ExitFailed
	}
	return ExitPassed
}

func setupOutputManager(cfg *config.Config, stdout io.Writer) (*output.Manager, error) {
	outMgr := output.NewManager()

	// Console Sink
	if !cfg.Output.NoConsole {
		if err := outMgr.AddSink(output.NewConsoleSink(stdout, cfg.Output.Format, cfg.Runtime.Verbose)); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// File Sink
	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

// Run executes one lint run described by cfg against the default plugin
// registry and returns the process exit code. cfg must already be validated.
func Run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) int {
	return run(ctx, plugins.Default(), cfg, stdout, stderr)
}

func run(ctx context.Context, reg *plugins.Registry, cfg *config.Config, stdout, stderr io.Writer) int {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	logger, err := logging.New(stderr, cfg.Runtime.LogFormat, cfg.Runtime.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error configuring logging: %v\n", err)
		return exitCodeForRun(true, false, false)
	}

	if cfg.Runtime.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Runtime.Timeout)
		defer cancel()
	}

	target, err := fsys.NewLocal(cfg.Target.Dir, cfg.Target.FilterPaths)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening target: %v\n", err)
		return exitCodeForRun(true, false, false)
	}

	rulesetPath := cfg.Target.Ruleset
	if rulesetPath == "" {
		rulesetPath, err = ruleset.Discover(target.TargetDir())
		if err != nil {
			fmt.Fprintf(stderr, "Error locating ruleset: %v\n", err)
			return exitCodeForRun(false, true, false)
		}
	} else if abs, err := filepath.Abs(rulesetPath); err == nil {
		rulesetPath = abs
	}

	params := report.Params{
		RunID:       uuid.NewString(),
		TargetDir:   target.TargetDir(),
		FilterPaths: cfg.Target.FilterPaths,
		RulesetPath: rulesetPath,
		DryRun:      cfg.Lint.DryRun,
	}

	var rec *metrics.Recorder
	if cfg.Runtime.MetricsFile != "" {
		rec = metrics.New(nil)
	}

	outMgr, err := setupOutputManager(cfg, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating output sinks: %v\n", err)
		return exitCodeForRun(true, false, false)
	}
	defer outMgr.Close()
	if outMgr.Len() == 0 {
		fmt.Fprintf(stderr, "Warning: --%s set without --%s; the report is not written anywhere\n", flags.FlagNoConsole, flags.FlagOut)
	}

	var rep *report.LintReport
	doc, err := ruleset.Load(rulesetPath)
	if err != nil {
		rec.ObserveRun(metrics.OutcomeErrored)
		rep = report.ConfigError(params, err.Error())
	} else {
		eng := NewEngine(reg,
			WithLogger(logger),
			WithMetrics(rec),
			WithConcurrency(cfg.Lint.Concurrency),
		)
		rep, err = eng.Lint(ctx, target, doc, params)
		if err != nil {
			fmt.Fprintf(stderr, "Error running lint: %v\n", err)
			writeMetrics(rec, cfg.Runtime.MetricsFile, stderr)
			return exitCodeForRun(true, false, false)
		}
	}

	writeMetrics(rec, cfg.Runtime.MetricsFile, stderr)

	if err := outMgr.Write(rep); err != nil {
		fmt.Fprintf(stderr, "Error writing report: %v\n", err)
		return exitCodeForRun(true, false, false)
	}
	return exitCodeForRun(false, rep.Errored, !rep.Passed)
}

func writeMetrics(rec *metrics.Recorder, path string, stderr io.Writer) {
	if path == "" {
		return
	}
	if err := rec.WriteTextfile(path); err != nil {
		fmt.Fprintf(stderr, "Error writing metrics: %v\n", err)
	}
}
