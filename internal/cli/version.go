package cli

import (
	"fmt"
	"runtime"

	"repocheck/internal/plugins"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and built-in plugin information",
	Run: func(cmd *cobra.Command, args []string) {
		version, commit, date := BuildInfo()
		reg := plugins.Default()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "repocheck %s\ncommit: %s\nbuilt:  %s\n", version, commit, date)
		fmt.Fprintf(w, "go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(w, "plugins: %d rules, %d fixes, %d axioms\n", len(reg.Rules()), len(reg.Fixes()), len(reg.Axioms()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
