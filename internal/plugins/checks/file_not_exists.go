package checks

import (
	"context"
	"fmt"

	"repocheck/internal/fsys"
	"repocheck/internal/plugins"
)

type fileNotExistsOptions struct {
	GlobsAll    []string `json:"globsAll"`
	NoCase      bool     `json:"nocase"`
	PassMessage string   `json:"pass-message"`
}

// FileNotExists fails for every file matching one of the globs. Failing
// targets carry paths so a remove fix can act on them.
type FileNotExists struct{}

func (r *FileNotExists) Type() string {
	return "file-not-exists"
}

func (r *FileNotExists) Description() string {
	return "Checks that no file matches any of globsAll."
}

func (r *FileNotExists) Schema() []byte {
	return schemaFor(r.Type())
}

func (r *FileNotExists) Check(ctx context.Context, fs fsys.FileSystem, options map[string]any) (plugins.Result, error) {
	var opts fileNotExistsOptions
	if err := plugins.DecodeOptions(options, &opts); err != nil {
		return plugins.Result{}, err
	}

	found, err := fs.FindAll(opts.GlobsAll, opts.NoCase)
	if err != nil {
		return plugins.Result{}, err
	}

	if len(found) == 0 {
		msg := fmt.Sprintf("Did not find a file matching the specified patterns (%s)", joinGlobs(opts.GlobsAll))
		if opts.PassMessage != "" {
			msg += ". " + opts.PassMessage
		}
		return plugins.PassResult(msg), nil
	}

	targets := make([]plugins.Target, 0, len(found))
	for _, p := range found {
		targets = append(targets, plugins.Target{Path: p, Passed: false, Message: "file should not exist"})
	}
	return plugins.FailResult(fmt.Sprintf("Found %d file(s) matching the specified patterns (%s)", len(found), joinGlobs(opts.GlobsAll)), targets...), nil
}
