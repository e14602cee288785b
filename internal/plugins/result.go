package plugins

import (
	"encoding/json"
	"fmt"
)

// Target is one path-scoped verdict within a Result.
type Target struct {
	Path    string `json:"path,omitempty"`
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
	// Pattern is set instead of Path when the verdict concerns a glob that
	// matched nothing.
	Pattern string `json:"pattern,omitempty"`
}

type Result struct {
	Message string   `json:"message,omitempty"`
	Targets []Target `json:"targets"`
	Passed  bool     `json:"passed"`
}

func NewResult(message string, targets []Target, passed bool) Result {
	if targets == nil {
		targets = []Target{}
	}
	return Result{Message: message, Targets: targets, Passed: passed}
}

func PassResult(message string, targets ...Target) Result {
	return NewResult(message, targets, true)
}

func FailResult(message string, targets ...Target) Result {
	return NewResult(message, targets, false)
}

// FailingPaths returns the path of every failed target that has one.
func (r Result) FailingPaths() []string {
	var out []string
	for _, t := range r.Targets {
		if t.Passed || t.Path == "" {
			continue
		}
		out = append(out, t.Path)
	}
	return out
}

// DecodeOptions copies a generic options object into a typed struct using
// its json tags.
func DecodeOptions(options map[string]any, into any) error {
	if options == nil {
		options = map[string]any{}
	}
	b, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}
	if err := json.Unmarshal(b, into); err != nil {
		return fmt.Errorf("decode options: %w", err)
	}
	return nil
}
