package ruleset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFileNames are tried in order by Discover.
var DefaultFileNames = []string{
	"repolint.json",
	"repolint.yaml",
	"repolint.yml",
	"repolinter.json",
	"repolinter.yaml",
	"repolinter.yml",
}

// Document is a parsed ruleset. It keeps the YAML node tree so mapping order
// survives; rule order in the file is rule order in the report. JSON sources
// parse into the same tree.
type Document struct {
	root *yaml.Node
	// Source is where the document was read from, used in messages only.
	Source string
}

// Parse reads a JSON or YAML ruleset.
func Parse(data []byte, source string) (*Document, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse ruleset %s: %w", source, err)
	}
	root := &node
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("parse ruleset %s: document is empty", source)
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse ruleset %s: top level must be a mapping, got %s", source, kindName(root))
	}
	return &Document{root: root, Source: source}, nil
}

// Load reads and parses the ruleset at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ruleset %q: %w", path, err)
	}
	return Parse(data, path)
}

// Discover returns the first default ruleset file present in dir.
func Discover(dir string) (string, error) {
	for _, name := range DefaultFileNames {
		p := filepath.Join(dir, name)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", p, err)
		}
	}
	return "", fmt.Errorf("no ruleset found in %s (looked for %v)", dir, DefaultFileNames)
}

// Value returns the document as plain JSON-compatible values
// (map[string]any, []any, string, float64, bool, nil).
func (d *Document) Value() (any, error) {
	return plain(d.root)
}

// Version returns the version marker, if present.
func (d *Document) Version() (int, bool) {
	n := d.lookup("version")
	if n == nil {
		return 0, false
	}
	v, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, true
	}
	return v, true
}

// Axioms returns the configured axiom bindings in file order.
func (d *Document) Axioms() ([]AxiomBinding, error) {
	n := d.lookup("axioms")
	if n == nil {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("axioms must be a mapping, got %s", kindName(n))
	}
	out := make([]AxiomBinding, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("axiom %q: name must be a string, got %s", k.Value, kindName(v))
		}
		out = append(out, AxiomBinding{ID: k.Value, Name: v.Value})
	}
	return out, nil
}

// FormatOptions returns the formatOptions object passed through to output
// formatters, or nil when absent.
func (d *Document) FormatOptions() (map[string]any, error) {
	n := d.lookup("formatOptions")
	if n == nil {
		return nil, nil
	}
	return plainObject(n)
}

func (d *Document) lookup(key string) *yaml.Node {
	return mappingValue(d.root, key)
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// plain decodes a node into JSON-compatible values. The JSON round trip
// turns YAML integers into float64 and rejects non-string keys.
func plain(n *yaml.Node) (any, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func plainObject(n *yaml.Node) (map[string]any, error) {
	if n == nil || n.Kind == 0 || isNull(n) {
		return map[string]any{}, nil
	}
	v, err := plain(n)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("line %d: expected an object, got %s", n.Line, kindName(n))
	}
	return m, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "array"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		if isNull(n) {
			return "null"
		}
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
