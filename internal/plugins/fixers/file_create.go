package fixers

import (
	"context"
	"fmt"

	"repocheck/internal/fsys"
	"repocheck/internal/plugins"
)

type fileCreateOptions struct {
	File    string `json:"file"`
	Text    string `json:"text"`
	Replace bool   `json:"replace"`
}

// FileCreate writes a file with fixed text. The rule's failing targets are
// not used; the file to create comes from the options.
type FileCreate struct{}

func (f *FileCreate) Type() string {
	return "file-create"
}

func (f *FileCreate) Description() string {
	return "Creates file with text, replacing an existing file only when replace is set."
}

func (f *FileCreate) Schema() []byte {
	return schemaFor(f.Type())
}

func (f *FileCreate) Fix(ctx context.Context, fs fsys.FileSystem, options map[string]any, targets []string, dryRun bool) (plugins.Result, error) {
	var opts fileCreateOptions
	if err := plugins.DecodeOptions(options, &opts); err != nil {
		return plugins.Result{}, err
	}
	if opts.File == "" {
		return plugins.Result{}, fmt.Errorf("file option is required")
	}

	if fs.Exists(opts.File) && !opts.Replace {
		return plugins.FailResult(
			fmt.Sprintf("Did not create %s: file already exists", opts.File),
			plugins.Target{Path: opts.File, Passed: false, Message: "already exists"},
		), nil
	}

	if dryRun {
		return plugins.PassResult(
			fmt.Sprintf("Would create %s", opts.File),
			plugins.Target{Path: opts.File, Passed: true, Message: "would create"},
		), nil
	}
	if err := fs.WriteFile(opts.File, []byte(opts.Text)); err != nil {
		return plugins.Result{}, err
	}
	return plugins.PassResult(
		fmt.Sprintf("Created %s", opts.File),
		plugins.Target{Path: opts.File, Passed: true, Message: "created"},
	), nil
}
