package plugins

import (
	"context"

	"repocheck/internal/fsys"
)

// Rule is a check run against the target repository.
type Rule interface {
	Type() string
	Description() string

	// Schema returns the JSON schema for the rule's options.
	Schema() []byte

	// Check evaluates the repository. Rules MUST NOT modify the file system.
	Check(ctx context.Context, fs fsys.FileSystem, options map[string]any) (Result, error)
}

// Fix remediates the failing targets of a rule.
type Fix interface {
	Type() string
	Description() string
	Schema() []byte

	// Fix is handed the paths that failed the rule. With dryRun set it must
	// report what it would change without touching the file system.
	Fix(ctx context.Context, fs fsys.FileSystem, options map[string]any, targets []string, dryRun bool) (Result, error)
}

// Axiom classifies the repository. Each returned target path is a value a
// rule condition can select on ("<axiom>=<path>").
type Axiom interface {
	ID() string
	Description() string
	Resolve(ctx context.Context, fs fsys.FileSystem) (Result, error)
}
