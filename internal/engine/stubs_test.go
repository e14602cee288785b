package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"repocheck/internal/fsys"
	"repocheck/internal/plugins"
)

var objectSchema = []byte(`{"type":"object"}`)

// fakeFS satisfies fsys.FileSystem for plugins that never touch files.
type fakeFS struct{}

func (fakeFS) TargetDir() string { return "/repo" }

func (fakeFS) FindAll(patterns []string, ignoreCase bool) ([]string, error) {
	return nil, nil
}

func (fakeFS) Exists(rel string) bool { return false }

func (fakeFS) ReadFile(rel string) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func (fakeFS) WriteFile(rel string, data []byte) error {
	return errors.New("not implemented")
}

func (fakeFS) Remove(rel string) error {
	return errors.New("not implemented")
}

var _ fsys.FileSystem = fakeFS{}

type stubRule struct {
	typ     string
	result  plugins.Result
	err     error
	panics  bool
	delay   time.Duration
	calls   atomic.Int32
	mu      sync.Mutex
	options []map[string]any
}

func (r *stubRule) Type() string        { return r.typ }
func (r *stubRule) Description() string { return "stub rule " + r.typ }
func (r *stubRule) Schema() []byte      { return objectSchema }
func (r *stubRule) Check(ctx context.Context, fs fsys.FileSystem, options map[string]any) (plugins.Result, error) {
	r.calls.Add(1)
	r.mu.Lock()
	r.options = append(r.options, options)
	r.mu.Unlock()
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	if r.panics {
		panic("rule exploded")
	}
	return r.result, r.err
}

type stubFix struct {
	typ     string
	result  plugins.Result
	err     error
	calls   atomic.Int32
	mu      sync.Mutex
	targets []string
	dryRun  bool
}

func (f *stubFix) Type() string        { return f.typ }
func (f *stubFix) Description() string { return "stub fix " + f.typ }
func (f *stubFix) Schema() []byte      { return objectSchema }
func (f *stubFix) Fix(ctx context.Context, fs fsys.FileSystem, options map[string]any, targets []string, dryRun bool) (plugins.Result, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.targets = targets
	f.dryRun = dryRun
	f.mu.Unlock()
	return f.result, f.err
}

type stubAxiom struct {
	id     string
	result plugins.Result
	err    error
	panics bool
	calls  atomic.Int32
}

func (a *stubAxiom) ID() string          { return a.id }
func (a *stubAxiom) Description() string { return "stub axiom " + a.id }
func (a *stubAxiom) Resolve(ctx context.Context, fs fsys.FileSystem) (plugins.Result, error) {
	a.calls.Add(1)
	if a.panics {
		panic("axiom exploded")
	}
	return a.result, a.err
}
