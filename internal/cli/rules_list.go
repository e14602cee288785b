package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"repocheck/internal/plugins"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rulesListQuiet bool
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage and list rules",
	Long: `List the rule types available to rulesets.

A ruleset entry selects one of these by its type ("rule": {"type": ...}) and
passes options that must satisfy the rule's schema.

Examples:
  # List all available rules
  repocheck rules list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available rules",
	Long: `List all rules currently registered in this build.

Rules are sorted by type.

Examples:
  repocheck rules list

Output:
  A vertical list of rules:
    ----------------------------------------
    RULE: {TYPE}
    ----------------------------------------
    {DESCRIPTION}
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range plugins.Default().Rules() {
			if rulesListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), r.Type())
			} else {
				printPlugin(cmd.OutOrStdout(), "RULE", r.Type(), r.Description(), nil)
			}
		}
		return nil
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show [rule-type]",
	Short: "Show details of a specific rule, including its options schema",
	Long: `Show details of a specific rule by its type.

Examples:
  repocheck rules show file-existence
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, ok := plugins.Default().Rule(args[0])
		if !ok {
			return fmt.Errorf("rule not found: %s", args[0])
		}
		printPlugin(cmd.OutOrStdout(), "RULE", r.Type(), r.Description(), r.Schema())
		return nil
	},
}

var fixesCmd = &cobra.Command{
	Use:   "fixes",
	Short: "List fixes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var fixesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available fixes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, f := range plugins.Default().Fixes() {
			if rulesListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), f.Type())
			} else {
				printPlugin(cmd.OutOrStdout(), "FIX", f.Type(), f.Description(), f.Schema())
			}
		}
		return nil
	},
}

var axiomsCmd = &cobra.Command{
	Use:   "axioms",
	Short: "List axioms",
	Long: `List the axioms available to rulesets.

An axiom classifies the repository. Binding it in a ruleset ("axioms":
{"<axiom>": "<name>"}) lets rules select on "<name>=<value>" conditions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var axiomsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available axioms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, a := range plugins.Default().Axioms() {
			if rulesListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), a.ID())
			} else {
				printPlugin(cmd.OutOrStdout(), "AXIOM", a.ID(), a.Description(), nil)
			}
		}
		return nil
	},
}

func printPlugin(w io.Writer, kind, id, description string, schema []byte) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "%s: %s\n", kind, id)
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, description)

	if len(schema) > 0 {
		var buf bytes.Buffer
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options schema:")
		if err := json.Indent(&buf, schema, "  ", "  "); err != nil {
			fmt.Fprintf(w, "  %s\n", schema)
		} else {
			fmt.Fprintf(w, "  %s\n", buf.String())
		}
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesListCmd.Flags().BoolVarP(&rulesListQuiet, "quiet", "q", false, "Only print rule types")
	rulesCmd.AddCommand(rulesShowCmd)

	rootCmd.AddCommand(fixesCmd)
	fixesCmd.AddCommand(fixesListCmd)
	fixesListCmd.Flags().BoolVarP(&rulesListQuiet, "quiet", "q", false, "Only print fix types")

	rootCmd.AddCommand(axiomsCmd)
	axiomsCmd.AddCommand(axiomsListCmd)
	axiomsListCmd.Flags().BoolVarP(&rulesListQuiet, "quiet", "q", false, "Only print axiom ids")
}
