package fsys

// FileSystem is the view of the target repository handed to rule, fix and
// axiom plugins. Paths are slash-separated and relative to TargetDir.
//
// Rules and axioms must only read. Fixes may write, and must not write when
// invoked with dryRun set.
type FileSystem interface {
	// TargetDir returns the absolute repository root.
	TargetDir() string

	// FindAll returns every file under TargetDir matching at least one glob
	// pattern ("**" allowed), restricted to the configured filter paths.
	// Results are sorted and unique.
	FindAll(patterns []string, ignoreCase bool) ([]string, error)

	// Exists reports whether rel names an existing file or directory.
	Exists(rel string) bool

	ReadFile(rel string) ([]byte, error)
	WriteFile(rel string, data []byte) error
	Remove(rel string) error
}
