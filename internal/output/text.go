package output

import (
	"fmt"
	"io"
	"strings"

	"repocheck/internal/plugins"
	"repocheck/internal/report"

	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgMagenta, color.Bold)
	skipColor = color.New(color.Faint)
	bold      = color.New(color.Bold)
)

func outcomeLabel(o report.Outcome) string {
	switch o {
	case report.OutcomePassed:
		return passColor.Sprint("PASS")
	case report.OutcomeFailed:
		return failColor.Sprint("FAIL")
	case report.OutcomeWarning:
		return warnColor.Sprint("WARN")
	case report.OutcomeErrored:
		return errColor.Sprint("ERROR")
	default:
		return skipColor.Sprint("SKIP")
	}
}

// WriteText renders a human readable report. Passing targets are listed only
// when verbose is set.
func WriteText(w io.Writer, r *report.LintReport, verbose bool) error {
	var b strings.Builder

	bold.Fprintf(&b, "Lint report for %s\n", r.Params.TargetDir)
	if r.Params.RulesetPath != "" {
		fmt.Fprintf(&b, "Ruleset: %s\n", r.Params.RulesetPath)
	}
	if r.Params.DryRun {
		b.WriteString("Dry run: fixes were not applied\n")
	}
	b.WriteString("\n")

	if r.Errored {
		fmt.Fprintf(&b, "%s %s\n", errColor.Sprint("Configuration error:"), r.ErrMsg)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		return flush(w)
	}

	for _, res := range r.Results {
		writeTextResult(&b, res, verbose)
	}

	c := r.Counts()
	fmt.Fprintf(&b, "\n%d passed, %d failed, %d warnings, %d errors, %d ignored\n",
		c.Passed, c.Failed, c.Warnings, c.Errors, c.Ignored)
	if r.Passed {
		passColor.Fprintln(&b, "Lint passed")
	} else {
		failColor.Fprintln(&b, "Lint failed")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	return flush(w)
}

func writeTextResult(b *strings.Builder, res report.FormatResult, verbose bool) {
	o := res.Outcome()
	fmt.Fprintf(b, "[%s] %s", outcomeLabel(o), res.Rule.Name)

	switch o {
	case report.OutcomeErrored, report.OutcomeIgnored:
		fmt.Fprintf(b, ": %s\n", res.RunMessage)
		return
	}

	if res.LintResult == nil {
		b.WriteString("\n")
		return
	}
	if res.LintResult.Message != "" {
		fmt.Fprintf(b, ": %s", res.LintResult.Message)
	}
	b.WriteString("\n")

	if o != report.OutcomePassed && res.Rule.PolicyInfo != "" {
		fmt.Fprintf(b, "    policy: %s", res.Rule.PolicyInfo)
		if res.Rule.PolicyURL != "" {
			fmt.Fprintf(b, " (%s)", res.Rule.PolicyURL)
		}
		b.WriteString("\n")
	}
	writeTextTargets(b, res.LintResult.Targets, verbose)

	if res.FixResult != nil {
		fmt.Fprintf(b, "    fix %s", res.Rule.FixType)
		if res.FixResult.Message != "" {
			fmt.Fprintf(b, ": %s", res.FixResult.Message)
		}
		b.WriteString("\n")
		writeTextTargets(b, res.FixResult.Targets, true)
	}
}

func writeTextTargets(b *strings.Builder, targets []plugins.Target, verbose bool) {
	for _, t := range targets {
		if t.Passed && !verbose {
			continue
		}
		mark := failColor.Sprint("x")
		if t.Passed {
			mark = passColor.Sprint("ok")
		}
		subject := t.Path
		if subject == "" {
			subject = t.Pattern
		}
		fmt.Fprintf(b, "      %s %s", mark, subject)
		if t.Message != "" {
			fmt.Fprintf(b, ": %s", t.Message)
		}
		b.WriteString("\n")
	}
}
