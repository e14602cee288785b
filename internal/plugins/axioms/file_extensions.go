package axioms

import (
	"context"
	"path"
	"strings"

	"repocheck/internal/fsys"
	"repocheck/internal/plugins"
)

var languages = map[string]string{
	".go":    "go",
	".js":    "javascript",
	".mjs":   "javascript",
	".cjs":   "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".py":    "python",
	".rb":    "ruby",
	".java":  "java",
	".kt":    "kotlin",
	".rs":    "rust",
	".c":     "c",
	".h":     "c",
	".cc":    "c++",
	".cpp":   "c++",
	".hpp":   "c++",
	".cs":    "c#",
	".php":   "php",
	".swift": "swift",
	".sh":    "shell",
	".ex":    "elixir",
	".exs":   "elixir",
	".scala": "scala",
}

// FileExtensions reports the programming languages present in the repository,
// judged by file extension.
type FileExtensions struct{}

func (a *FileExtensions) ID() string {
	return "file-extensions"
}

func (a *FileExtensions) Description() string {
	return "Detects programming languages from source file extensions."
}

func (a *FileExtensions) Resolve(ctx context.Context, fs fsys.FileSystem) (plugins.Result, error) {
	files, err := fs.FindAll([]string{"**/*"}, false)
	if err != nil {
		return plugins.Result{}, err
	}

	found := make(map[string]struct{})
	for _, f := range files {
		if lang, ok := languages[strings.ToLower(path.Ext(f))]; ok {
			found[lang] = struct{}{}
		}
	}
	return classified(found), nil
}
