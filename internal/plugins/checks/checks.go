// Package checks holds the built-in file rules. Importing it registers them
// with plugins.Default().
package checks

import (
	"embed"
	"fmt"
	"strings"

	"repocheck/internal/plugins"
)

//go:embed schemas/*.json
var schemas embed.FS

func schemaFor(ruleType string) []byte {
	b, err := schemas.ReadFile("schemas/" + ruleType + ".json")
	if err != nil {
		panic(fmt.Sprintf("missing schema for rule %s: %v", ruleType, err))
	}
	return b
}

func init() {
	plugins.RegisterRule(&FileExistence{})
	plugins.RegisterRule(&FileNotExists{})
	plugins.RegisterRule(&FileContents{})
	plugins.RegisterRule(&FileNotContents{})
}

func joinGlobs(globs []string) string {
	return strings.Join(globs, ", ")
}
