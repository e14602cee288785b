package cli

import (
	"context"
	"fmt"
	"os"

	"repocheck/internal/config"
	"repocheck/internal/engine"
	"repocheck/internal/flags"

	"github.com/spf13/cobra"
)

var cfg = config.New()

var lintCmd = &cobra.Command{
	Use:   "lint [dir]",
	Short: "Lint a repository against a ruleset",
	Long: `Lint a local repository against a ruleset and report each rule's outcome.

The ruleset is read from --ruleset, or else from the first of these files found
in the target directory: repolint.json, repolint.yaml, repolint.yml,
repolinter.json, repolinter.yaml, repolinter.yml.

Rules that fail and declare a fix have the fix applied. Use --dry-run to report
what fixes would change without writing anything.

Output:
	Console output is controlled by --format (default: text).
	- --out / --out-format: also write the report to a file (json or markdown)
	- --no-console: suppress console output (use with --out)

Exit codes:
	0 = every error-level rule passed
	1 = an error-level rule failed, or a rule errored
	2 = the ruleset is missing or invalid (no rules ran)
	3 = fatal error (lint did not run)

Examples:
  # Lint the current directory
  repocheck lint

  # Lint another checkout with an explicit ruleset, reporting fixes only
  repocheck lint ../service --ruleset policies/oss.yaml --dry-run

  # Write a markdown report for CI
  repocheck lint --no-console --out lint-report.md
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runLint(cmd, args, cfg))
	},
}

func runLint(cmd *cobra.Command, args []string, cfg *config.Config) int {
	if len(args) == 1 {
		cfg.Target.Dir = args[0]
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return engine.ExitFatal
	}
	return engine.Run(context.Background(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func init() {
	rootCmd.AddCommand(lintCmd)

	// MAINTAINER NOTE: keep these in sync with internal/config.Config.

	// Target
	lintCmd.Flags().StringVar(&cfg.Target.Ruleset, flags.FlagRuleset, "", "Ruleset file (default: discovered in the target directory)")
	lintCmd.Flags().StringSliceVar(&cfg.Target.FilterPaths, flags.FlagAllowPaths, nil, "Only let plugins see these paths: globs or directory prefixes relative to the target (repeatable; comma-separated accepted)")

	// Lint
	lintCmd.Flags().BoolVar(&cfg.Lint.DryRun, flags.FlagDryRun, false, "Report what fixes would change without writing")
	lintCmd.Flags().IntVar(&cfg.Lint.Concurrency, flags.FlagConcurrency, 0, "Maximum rules run at once (0 = unlimited)")

	// Output
	lintCmd.Flags().StringVar(&cfg.Output.Format, flags.FlagFormat, "text", "Console output format: text|json|markdown")
	lintCmd.Flags().StringVar(&cfg.Output.Out, flags.FlagOut, "", "Also write the report to this path")
	lintCmd.Flags().StringVar(&cfg.Output.OutFormat, flags.FlagOutFormat, "", "Report format for --out: json|markdown (default: inferred from file extension)")
	lintCmd.Flags().BoolVar(&cfg.Output.NoConsole, flags.FlagNoConsole, false, "Suppress console output (use with --out)")

	// Runtime
	lintCmd.Flags().DurationVar(&cfg.Runtime.Timeout, flags.FlagTimeout, 0, "Global timeout (0 = none)")
	lintCmd.Flags().StringVar(&cfg.Runtime.LogLevel, flags.FlagLogLevel, cfg.Runtime.LogLevel, "Log level on stderr: debug|info|warn|error")
	lintCmd.Flags().StringVar(&cfg.Runtime.LogFormat, flags.FlagLogFormat, cfg.Runtime.LogFormat, "Log format on stderr: text|json")
	lintCmd.Flags().StringVar(&cfg.Runtime.MetricsFile, flags.FlagMetricsFile, "", "Write run metrics in Prometheus text format to this path")
}
