package flags

// Package flags defines canonical CLI flag names shared across the CLI and engine.
// Keeping these as constants helps avoid drift between Cobra flag wiring and other
// code paths that need to reference flags (e.g. error messages that name a flag).
// IMPORTANT: These are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringVar(&cfg.Target.Ruleset, flags.FlagRuleset, "", "...")
//	arg := "--" + flags.FlagRuleset
const (
	// Target
	FlagRuleset    = "ruleset"
	FlagAllowPaths = "allow-paths"

	// Lint
	FlagDryRun      = "dry-run"
	FlagConcurrency = "concurrency"

	// Output
	FlagFormat    = "format"
	FlagOut       = "out"
	FlagOutFormat = "out-format"
	FlagNoConsole = "no-console"

	// Runtime
	FlagTimeout     = "timeout"
	FlagLogLevel    = "log-level"
	FlagLogFormat   = "log-format"
	FlagMetricsFile = "metrics-file"
	FlagVerbose     = "verbose"
)
