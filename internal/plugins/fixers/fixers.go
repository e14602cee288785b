// Package fixers holds the built-in file fixes. Importing it registers them
// with plugins.Default().
package fixers

import (
	"embed"
	"fmt"

	"repocheck/internal/plugins"
)

//go:embed schemas/*.json
var schemas embed.FS

func schemaFor(fixType string) []byte {
	b, err := schemas.ReadFile("schemas/" + fixType + ".json")
	if err != nil {
		panic(fmt.Sprintf("missing schema for fix %s: %v", fixType, err))
	}
	return b
}

func init() {
	plugins.RegisterFix(&FileCreate{})
	plugins.RegisterFix(&FileRemove{})
}
