package checks

import (
	"context"
	"fmt"

	"repocheck/internal/fsys"
	"repocheck/internal/plugins"
)

type fileExistenceOptions struct {
	GlobsAny    []string `json:"globsAny"`
	NoCase      bool     `json:"nocase"`
	FailMessage string   `json:"fail-message"`
}

// FileExistence passes when at least one file matches any of the globs.
type FileExistence struct{}

func (r *FileExistence) Type() string {
	return "file-existence"
}

func (r *FileExistence) Description() string {
	return "Checks that at least one file matching any of globsAny exists."
}

func (r *FileExistence) Schema() []byte {
	return schemaFor(r.Type())
}

func (r *FileExistence) Check(ctx context.Context, fs fsys.FileSystem, options map[string]any) (plugins.Result, error) {
	var opts fileExistenceOptions
	if err := plugins.DecodeOptions(options, &opts); err != nil {
		return plugins.Result{}, err
	}

	found, err := fs.FindAll(opts.GlobsAny, opts.NoCase)
	if err != nil {
		return plugins.Result{}, err
	}

	if len(found) == 0 {
		msg := fmt.Sprintf("Did not find a file matching the specified patterns (%s)", joinGlobs(opts.GlobsAny))
		if opts.FailMessage != "" {
			msg += ". " + opts.FailMessage
		}
		targets := make([]plugins.Target, 0, len(opts.GlobsAny))
		for _, g := range opts.GlobsAny {
			targets = append(targets, plugins.Target{Pattern: g, Passed: false, Message: "no matching file"})
		}
		return plugins.FailResult(msg, targets...), nil
	}

	targets := make([]plugins.Target, 0, len(found))
	for _, p := range found {
		targets = append(targets, plugins.Target{Path: p, Passed: true, Message: "found"})
	}
	return plugins.PassResult(fmt.Sprintf("Found file matching the specified patterns (%s)", joinGlobs(opts.GlobsAny)), targets...), nil
}
