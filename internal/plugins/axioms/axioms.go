// Package axioms holds the built-in repository classifiers. Importing it
// registers them with plugins.Default().
package axioms

import (
	"sort"

	"repocheck/internal/plugins"
)

func init() {
	plugins.RegisterAxiom(&Packagers{})
	plugins.RegisterAxiom(&FileExtensions{})
}

// classified turns a set of names into a passing result with one target per
// name, sorted.
func classified(names map[string]struct{}) plugins.Result {
	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	targets := make([]plugins.Target, 0, len(sorted))
	for _, n := range sorted {
		targets = append(targets, plugins.Target{Path: n, Passed: true})
	}
	return plugins.PassResult("", targets...)
}
