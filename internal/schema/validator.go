package schema

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"repocheck/internal/plugins"
	"repocheck/internal/ruleset"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	baseURL     = "https://repocheck.dev/schema/"
	envelopeURL = baseURL + "envelope.json"
	rootURL     = baseURL + "ruleset.json"
	draftURL    = "https://json-schema.org/draft/2020-12/schema"
)

//go:embed envelope.json
var envelope []byte

// Verdict is the outcome of validating a ruleset. Error holds one line per
// violation, "<instance path>: <message>".
type Verdict struct {
	Passed bool
	Error  string
}

// Validator checks rulesets against the envelope schema combined with the
// option schema of every rule and fix registered in its registry.
type Validator struct {
	registry *plugins.Registry
}

func New(reg *plugins.Registry) *Validator {
	return &Validator{registry: reg}
}

func (v *Validator) Validate(doc *ruleset.Document) Verdict {
	if doc == nil {
		return Verdict{Error: "ruleset document is nil"}
	}
	value, err := doc.Value()
	if err != nil {
		return Verdict{Error: fmt.Sprintf("ruleset %s is not valid JSON data: %v", doc.Source, err)}
	}
	return v.ValidateValue(value)
}

// ValidateValue validates an already decoded ruleset
// (map[string]any / []any / float64 / string / bool / nil).
func (v *Validator) ValidateValue(value any) Verdict {
	sch, err := v.schema()
	if err != nil {
		return Verdict{Error: fmt.Sprintf("failed to build ruleset schema: %v", err)}
	}
	if err := sch.Validate(value); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return Verdict{Error: strings.Join(violations(ve), "\n")}
		}
		return Verdict{Error: err.Error()}
	}
	return Verdict{Passed: true}
}

func (v *Validator) schema() (*jsonschema.Schema, error) {
	rules := v.registry.Rules()
	fixes := v.registry.Fixes()
	return compiled.get(fingerprint(rules, fixes), func() (*jsonschema.Schema, error) {
		return compile(rules, fixes)
	})
}

// fingerprint identifies a set of plugin schemas, so registries with the same
// contents share a compiled schema.
func fingerprint(rules []plugins.Rule, fixes []plugins.Fix) string {
	h := sha256.New()
	for _, r := range rules {
		fmt.Fprintf(h, "rule\x00%s\x00%s\x00", r.Type(), r.Schema())
	}
	for _, f := range fixes {
		fmt.Fprintf(h, "fix\x00%s\x00%s\x00", f.Type(), f.Schema())
	}
	return hex.EncodeToString(h.Sum(nil))
}

func compile(rules []plugins.Rule, fixes []plugins.Fix) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(envelopeURL, bytes.NewReader(envelope)); err != nil {
		return nil, fmt.Errorf("envelope schema: %w", err)
	}

	var ruleClauses, fixClauses []any
	for _, r := range rules {
		u, needsOptions, err := addPluginSchema(c, "rules", r.Type(), r.Schema())
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Type(), err)
		}
		ruleClauses = append(ruleClauses, optionsClause(r.Type(), u, needsOptions))
	}
	for _, f := range fixes {
		u, needsOptions, err := addPluginSchema(c, "fixes", f.Type(), f.Schema())
		if err != nil {
			return nil, fmt.Errorf("fix %q: %w", f.Type(), err)
		}
		fixClauses = append(fixClauses, optionsClause(f.Type(), u, needsOptions))
	}

	entry := map[string]any{}
	if len(ruleClauses) > 0 {
		entry["rule"] = map[string]any{"allOf": ruleClauses}
	}
	if len(fixClauses) > 0 {
		entry["fix"] = map[string]any{"allOf": fixClauses}
	}

	allOf := []any{map[string]any{"$ref": envelopeURL}}
	if len(entry) > 0 {
		allOf = append(allOf, map[string]any{
			"if": map[string]any{"required": []any{"version"}},
			"then": map[string]any{
				"properties": map[string]any{
					"rules": map[string]any{
						"additionalProperties": map[string]any{"properties": entry},
					},
				},
			},
		})
	}

	root, err := json.Marshal(map[string]any{
		"$schema": draftURL,
		"$id":     rootURL,
		"allOf":   allOf,
	})
	if err != nil {
		return nil, err
	}
	if err := c.AddResource(rootURL, bytes.NewReader(root)); err != nil {
		return nil, fmt.Errorf("ruleset schema: %w", err)
	}
	return c.Compile(rootURL)
}

// addPluginSchema registers a plugin option schema and compiles it on its own
// so a broken plugin schema is reported against that plugin. needsOptions is
// set when the schema rejects an empty object, which is what a missing
// options entry normalizes to.
func addPluginSchema(c *jsonschema.Compiler, kind, id string, schema []byte) (u string, needsOptions bool, err error) {
	if len(bytes.TrimSpace(schema)) == 0 {
		return "", false, errors.New("option schema is missing")
	}
	if !json.Valid(schema) {
		return "", false, errors.New("option schema is not valid JSON")
	}
	u = baseURL + kind + "/" + url.PathEscape(id) + ".json"
	if err := c.AddResource(u, bytes.NewReader(schema)); err != nil {
		return "", false, fmt.Errorf("option schema: %w", err)
	}
	sch, err := c.Compile(u)
	if err != nil {
		return "", false, fmt.Errorf("option schema: %w", err)
	}
	return u, sch.Validate(map[string]any{}) != nil, nil
}

func optionsClause(typ, schemaURL string, needsOptions bool) map[string]any {
	then := map[string]any{
		"properties": map[string]any{"options": map[string]any{"$ref": schemaURL}},
	}
	if needsOptions {
		then["required"] = []any{"options"}
	}
	return map[string]any{
		"if": map[string]any{
			"properties": map[string]any{"type": map[string]any{"const": typ}},
			"required":   []any{"type"},
		},
		"then": then,
	}
}

// violations flattens a validation error tree into its leaf messages.
func violations(ve *jsonschema.ValidationError) []string {
	var out []string
	seen := make(map[string]bool)
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			line := fmt.Sprintf("%s: %s", instancePath(e.InstanceLocation), e.Message)
			if !seen[line] {
				seen[line] = true
				out = append(out, line)
			}
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(ve)
	return out
}

func instancePath(loc string) string {
	if loc == "" {
		return "/"
	}
	return loc
}
