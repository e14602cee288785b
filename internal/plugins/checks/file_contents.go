package checks

import (
	"context"
	"fmt"
	"regexp"

	"repocheck/internal/fsys"
	"repocheck/internal/plugins"
)

type fileContentsOptions struct {
	GlobsAll             []string `json:"globsAll"`
	Content              string   `json:"content"`
	Flags                string   `json:"flags"`
	NoCase               bool     `json:"nocase"`
	HumanReadableContent string   `json:"human-readable-content"`
	FailOnNonExistent    bool     `json:"fail-on-non-existent"`
}

func (o fileContentsOptions) regexp() (*regexp.Regexp, error) {
	expr := o.Content
	if o.Flags != "" {
		expr = "(?" + o.Flags + ")" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid content pattern %q: %w", o.Content, err)
	}
	return re, nil
}

func (o fileContentsOptions) describe() string {
	if o.HumanReadableContent != "" {
		return o.HumanReadableContent
	}
	return fmt.Sprintf("%q", o.Content)
}

// FileContents passes when every file matching globsAll contains content.
type FileContents struct{}

func (r *FileContents) Type() string {
	return "file-contents"
}

func (r *FileContents) Description() string {
	return "Checks that every file matching globsAll contains the content regular expression."
}

func (r *FileContents) Schema() []byte {
	return schemaFor(r.Type())
}

func (r *FileContents) Check(ctx context.Context, fs fsys.FileSystem, options map[string]any) (plugins.Result, error) {
	return checkContents(ctx, fs, options, true)
}

// FileNotContents passes when no file matching globsAll contains content.
type FileNotContents struct{}

func (r *FileNotContents) Type() string {
	return "file-not-contents"
}

func (r *FileNotContents) Description() string {
	return "Checks that no file matching globsAll contains the content regular expression."
}

func (r *FileNotContents) Schema() []byte {
	return schemaFor(r.Type())
}

func (r *FileNotContents) Check(ctx context.Context, fs fsys.FileSystem, options map[string]any) (plugins.Result, error) {
	return checkContents(ctx, fs, options, false)
}

func checkContents(ctx context.Context, fs fsys.FileSystem, options map[string]any, want bool) (plugins.Result, error) {
	var opts fileContentsOptions
	if err := plugins.DecodeOptions(options, &opts); err != nil {
		return plugins.Result{}, err
	}
	re, err := opts.regexp()
	if err != nil {
		return plugins.Result{}, err
	}

	files, err := fs.FindAll(opts.GlobsAll, opts.NoCase)
	if err != nil {
		return plugins.Result{}, err
	}
	if len(files) == 0 {
		msg := fmt.Sprintf("Did not find file matching the specified patterns (%s)", joinGlobs(opts.GlobsAll))
		return plugins.NewResult(msg, nil, !opts.FailOnNonExistent), nil
	}

	passed := true
	targets := make([]plugins.Target, 0, len(files))
	for _, p := range files {
		if err := ctx.Err(); err != nil {
			return plugins.Result{}, err
		}
		data, err := fs.ReadFile(p)
		if err != nil {
			return plugins.Result{}, err
		}
		found := re.Match(data)
		ok := found == want

		msg := "does not contain " + opts.describe()
		if found && want {
			msg = "contains " + opts.describe()
		} else if found {
			msg = "should not contain " + opts.describe()
		}
		targets = append(targets, plugins.Target{Path: p, Passed: ok, Message: msg})
		passed = passed && ok
	}
	msg := fmt.Sprintf("Checked %d file(s) matching the specified patterns (%s)", len(files), joinGlobs(opts.GlobsAll))
	return plugins.NewResult(msg, targets, passed), nil
}
