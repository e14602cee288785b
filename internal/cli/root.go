package cli

import (
	"fmt"
	"os"

	"repocheck/internal/flags"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "repocheck",
	Short: "Lint a repository against a policy ruleset",
	Long: `repocheck checks a local repository against a ruleset of file policies and
optionally fixes what fails.

Examples:
	# Show available commands and global flags
	repocheck --help

	# Lint the current directory with its repolint.json
	repocheck lint

	# List built-in rules
	repocheck rules list

	# Print build info
	repocheck version

Output:
	By default, commands write human-readable output to stdout.
	"lint" supports structured output via --format and --out (see "repocheck lint --help").`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, flags.FlagVerbose, false, "Include passing targets in console output")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
