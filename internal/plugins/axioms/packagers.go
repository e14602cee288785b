package axioms

import (
	"context"
	"path"

	"repocheck/internal/fsys"
	"repocheck/internal/plugins"
)

// manifests maps package manifest file names to the packager they imply.
var manifests = map[string]string{
	"package.json":     "npm",
	"yarn.lock":        "yarn",
	"pnpm-lock.yaml":   "pnpm",
	"go.mod":           "go",
	"Cargo.toml":       "cargo",
	"Gemfile":          "rubygems",
	"pom.xml":          "maven",
	"build.gradle":     "gradle",
	"build.gradle.kts": "gradle",
	"requirements.txt": "pip",
	"setup.py":         "pip",
	"pyproject.toml":   "pip",
	"composer.json":    "composer",
	"packages.config":  "nuget",
	"Package.swift":    "swiftpm",
	"mix.exs":          "hex",
}

// Packagers reports the package managers whose manifests appear anywhere in
// the repository.
type Packagers struct{}

func (a *Packagers) ID() string {
	return "packagers"
}

func (a *Packagers) Description() string {
	return "Detects package managers from their manifest files."
}

func (a *Packagers) Resolve(ctx context.Context, fs fsys.FileSystem) (plugins.Result, error) {
	patterns := make([]string, 0, len(manifests)+1)
	for name := range manifests {
		patterns = append(patterns, "**/"+name)
	}
	patterns = append(patterns, "**/*.csproj")

	files, err := fs.FindAll(patterns, false)
	if err != nil {
		return plugins.Result{}, err
	}

	found := make(map[string]struct{})
	for _, f := range files {
		base := path.Base(f)
		if p, ok := manifests[base]; ok {
			found[p] = struct{}{}
		} else if path.Ext(base) == ".csproj" {
			found["nuget"] = struct{}{}
		}
	}
	return classified(found), nil
}
