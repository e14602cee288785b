package fixers

import (
	"context"
	"fmt"
	"sort"

	"repocheck/internal/fsys"
	"repocheck/internal/plugins"
)

type fileRemoveOptions struct {
	GlobsAll []string `json:"globsAll"`
	NoCase   bool     `json:"nocase"`
}

// FileRemove deletes the rule's failing targets, plus every file matching
// globsAll when given.
type FileRemove struct{}

func (f *FileRemove) Type() string {
	return "file-remove"
}

func (f *FileRemove) Description() string {
	return "Removes the files that failed the rule, or the files matching globsAll."
}

func (f *FileRemove) Schema() []byte {
	return schemaFor(f.Type())
}

func (f *FileRemove) Fix(ctx context.Context, fs fsys.FileSystem, options map[string]any, targets []string, dryRun bool) (plugins.Result, error) {
	var opts fileRemoveOptions
	if err := plugins.DecodeOptions(options, &opts); err != nil {
		return plugins.Result{}, err
	}

	paths := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		paths[t] = struct{}{}
	}
	if len(opts.GlobsAll) > 0 {
		found, err := fs.FindAll(opts.GlobsAll, opts.NoCase)
		if err != nil {
			return plugins.Result{}, err
		}
		for _, p := range found {
			paths[p] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(paths))
	for p := range paths {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)

	if len(sorted) == 0 {
		return plugins.PassResult("No files to remove"), nil
	}

	passed := true
	out := make([]plugins.Target, 0, len(sorted))
	for _, p := range sorted {
		if err := ctx.Err(); err != nil {
			return plugins.Result{}, err
		}
		switch {
		case !fs.Exists(p):
			out = append(out, plugins.Target{Path: p, Passed: true, Message: "already absent"})
		case dryRun:
			out = append(out, plugins.Target{Path: p, Passed: true, Message: "would remove"})
		default:
			if err := fs.Remove(p); err != nil {
				passed = false
				out = append(out, plugins.Target{Path: p, Passed: false, Message: err.Error()})
				continue
			}
			out = append(out, plugins.Target{Path: p, Passed: true, Message: "removed"})
		}
	}

	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}
	return plugins.NewResult(fmt.Sprintf("%s %d file(s)", verb, len(sorted)), out, passed), nil
}
