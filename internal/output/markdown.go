package output

import (
	"fmt"
	"io"
	"strings"

	"repocheck/internal/plugins"
	"repocheck/internal/report"
)

// formatOptions key holding text appended to the markdown summary.
const disclaimerOption = "disclaimer"

// WriteMarkdown renders the report as a markdown document grouped by outcome.
func WriteMarkdown(w io.Writer, r *report.LintReport) error {
	var b strings.Builder

	b.WriteString("# Repocheck Report\n\n")
	fmt.Fprintf(&b, "This report was generated for `%s`", r.Params.TargetDir)
	if r.Params.RulesetPath != "" {
		fmt.Fprintf(&b, " using ruleset `%s`", r.Params.RulesetPath)
	}
	b.WriteString(".")
	if r.Params.DryRun {
		b.WriteString(" Fixes ran in dry-run mode.")
	}
	b.WriteString("\n\n")

	if r.Errored {
		b.WriteString("## Configuration Error\n\n")
		fmt.Fprintf(&b, "```\n%s\n```\n", r.ErrMsg)
		_, err := io.WriteString(w, b.String())
		return err
	}

	c := r.Counts()
	verdict := "Passed"
	if !r.Passed {
		verdict = "Failed"
	}
	fmt.Fprintf(&b, "**Result: %s**\n\n", verdict)
	b.WriteString("| Outcome | Rules |\n")
	b.WriteString("| --- | ---: |\n")
	fmt.Fprintf(&b, "| Errored | %d |\n", c.Errors)
	fmt.Fprintf(&b, "| Failed | %d |\n", c.Failed)
	fmt.Fprintf(&b, "| Warning | %d |\n", c.Warnings)
	fmt.Fprintf(&b, "| Passed | %d |\n", c.Passed)
	fmt.Fprintf(&b, "| Ignored | %d |\n", c.Ignored)
	b.WriteString("\n")

	sections := []struct {
		title   string
		outcome report.Outcome
	}{
		{"Errored", report.OutcomeErrored},
		{"Failed", report.OutcomeFailed},
		{"Warning", report.OutcomeWarning},
		{"Passed", report.OutcomePassed},
		{"Ignored", report.OutcomeIgnored},
	}
	for _, sec := range sections {
		var rows []report.FormatResult
		for _, res := range r.Results {
			if res.Outcome() == sec.outcome {
				rows = append(rows, res)
			}
		}
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", sec.title)
		for _, res := range rows {
			writeMarkdownResult(&b, res)
		}
	}

	if d, ok := r.FormatOptions[disclaimerOption].(string); ok && d != "" {
		fmt.Fprintf(&b, "---\n\n%s\n", d)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdownResult(b *strings.Builder, res report.FormatResult) {
	fmt.Fprintf(b, "### `%s`\n\n", res.Rule.Name)
	if res.RunMessage != "" {
		fmt.Fprintf(b, "%s\n\n", res.RunMessage)
	}
	if res.Rule.PolicyInfo != "" {
		b.WriteString(res.Rule.PolicyInfo)
		if res.Rule.PolicyURL != "" {
			fmt.Fprintf(b, " ([policy](%s))", res.Rule.PolicyURL)
		}
		b.WriteString("\n\n")
	}
	if res.LintResult != nil {
		writeMarkdownResultBody(b, "", *res.LintResult)
	}
	if res.FixResult != nil {
		writeMarkdownResultBody(b, fmt.Sprintf("Fix `%s`: ", res.Rule.FixType), *res.FixResult)
	}
}

func writeMarkdownResultBody(b *strings.Builder, prefix string, r plugins.Result) {
	if r.Message != "" {
		fmt.Fprintf(b, "%s%s\n\n", prefix, r.Message)
	}
	for _, t := range r.Targets {
		mark := "❌"
		if t.Passed {
			mark = "✅"
		}
		subject := t.Path
		if subject == "" {
			subject = t.Pattern
		}
		fmt.Fprintf(b, "- %s `%s`", mark, subject)
		if t.Message != "" {
			fmt.Fprintf(b, ": %s", t.Message)
		}
		b.WriteString("\n")
	}
	if len(r.Targets) > 0 {
		b.WriteString("\n")
	}
}
