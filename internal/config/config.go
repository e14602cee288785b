package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields that affect lint
	// behavior, keep the CLI flags in internal/cli/lint.go in sync.
	Target  Target
	Lint    Lint
	Output  Output
	Runtime Runtime
}

type Target struct {
	// Dir is the repository to lint (positional argument of "lint"; default ".").
	Dir string

	// Ruleset is the ruleset file to apply (see --ruleset).
	// If empty, the first default ruleset file found in Dir is used.
	Ruleset string

	// FilterPaths restricts which files plugins can see (see --allow-paths).
	// Each entry is a glob or a directory prefix relative to Dir.
	// Values may be provided as repeated flags and/or comma-separated lists.
	FilterPaths []string
}

type Lint struct {
	// DryRun makes fixes report what they would change without writing (see --dry-run).
	DryRun bool

	// Concurrency caps how many rules run at once (see --concurrency). 0 means no cap.
	Concurrency int
}

type Output struct {
	// Format controls the console output format (see --format).
	// Allowed values: text, json, markdown.
	Format string

	// Out writes the report to this path (see --out).
	Out string

	// OutFormat selects the format for --out (see --out-format).
	// Allowed values: json, markdown. If empty, it is inferred from the --out file extension.
	OutFormat string

	// NoConsole suppresses console output (see --no-console).
	NoConsole bool
}

type Runtime struct {
	// Timeout bounds the whole run (see --timeout). 0 means no timeout.
	Timeout time.Duration

	// LogLevel is the minimum log level (see --log-level).
	// Allowed values: debug, info, warn, error.
	LogLevel string

	// LogFormat is the log encoding on stderr (see --log-format).
	// Allowed values: text, json.
	LogFormat string

	// MetricsFile writes run metrics in the Prometheus text format to this path (see --metrics-file).
	MetricsFile string

	// Verbose includes passing targets in console output (see --verbose).
	Verbose bool
}

func New() *Config {
	return &Config{
		Target: Target{
			Dir: ".",
		},
		Output: Output{
			Format: "text",
		},
		Runtime: Runtime{
			LogLevel:  "warn",
			LogFormat: "text",
		},
	}
}

func (c *Config) Validate() error {
	// Normalize comma-delimited list inputs.
	c.Target.FilterPaths = splitCommaList(c.Target.FilterPaths)

	c.Target.Dir = strings.TrimSpace(c.Target.Dir)
	if c.Target.Dir == "" {
		c.Target.Dir = "."
	}
	c.Target.Ruleset = strings.TrimSpace(c.Target.Ruleset)

	// Output validation
	c.Output.Format = normalizeEnumValue(c.Output.Format)
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if !oneOf(c.Output.Format, "text", "json", "markdown") {
		return fmt.Errorf("unsupported --format: %s (must be one of: text, json, markdown)", c.Output.Format)
	}

	if c.Output.Out != "" {
		c.Output.OutFormat = normalizeEnumValue(c.Output.OutFormat)
		if c.Output.OutFormat == "" {
			ext := strings.ToLower(filepath.Ext(c.Output.Out))
			switch ext {
			case ".json":
				c.Output.OutFormat = "json"
			case ".md", ".markdown":
				c.Output.OutFormat = "markdown"
			default:
				if ext == "" {
					return errors.New("cannot infer output format from file extension (missing extension); use --out-format")
				}
				return fmt.Errorf("cannot infer output format from file extension %q; use --out-format", ext)
			}
		} else if !oneOf(c.Output.OutFormat, "json", "markdown") {
			return fmt.Errorf("unsupported output format: %s", c.Output.OutFormat)
		}
	}

	// Lint validation
	if c.Lint.Concurrency < 0 {
		return errors.New("--concurrency must be >= 0")
	}

	// Runtime validation
	if c.Runtime.Timeout < 0 {
		return errors.New("--timeout must be >= 0")
	}
	c.Runtime.LogLevel = normalizeEnumValue(c.Runtime.LogLevel)
	if c.Runtime.LogLevel == "" {
		c.Runtime.LogLevel = "warn"
	}
	if !oneOf(c.Runtime.LogLevel, "debug", "info", "warn", "error") {
		return fmt.Errorf("unsupported --log-level: %s (must be one of: debug, info, warn, error)", c.Runtime.LogLevel)
	}
	c.Runtime.LogFormat = normalizeEnumValue(c.Runtime.LogFormat)
	if c.Runtime.LogFormat == "" {
		c.Runtime.LogFormat = "text"
	}
	if !oneOf(c.Runtime.LogFormat, "text", "json") {
		return fmt.Errorf("unsupported --log-format: %s (must be one of: text, json)", c.Runtime.LogFormat)
	}

	return nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
