package ruleset

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoRules is returned by Normalize when the document has no rules entry.
var ErrNoRules = errors.New("ruleset has no rules entry")

// groupAll is the legacy condition group that applies unconditionally.
const groupAll = "all"

// Normalize converts a ruleset in either dialect into the canonical rule
// list. Documents carrying a version marker use the v2 dialect; all others
// are read as legacy. Normalize assumes the document passed schema
// validation and only reports structural problems it trips over.
func Normalize(doc *Document) ([]Rule, error) {
	if doc == nil {
		return nil, errors.New("ruleset document is nil")
	}
	rules := doc.lookup("rules")
	if rules == nil {
		return nil, ErrNoRules
	}
	if rules.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rules must be an object, got %s", kindName(rules))
	}
	if _, ok := doc.Version(); ok {
		return normalizeV2(rules)
	}
	return normalizeLegacy(rules)
}

type v2Entry struct {
	Level      Level      `yaml:"level"`
	Where      []string   `yaml:"where"`
	Rule       *pluginRef `yaml:"rule"`
	Fix        *pluginRef `yaml:"fix"`
	PolicyInfo string     `yaml:"policyInfo"`
	PolicyURL  string     `yaml:"policyUrl"`
}

type pluginRef struct {
	Type    string    `yaml:"type"`
	Options yaml.Node `yaml:"options"`
}

func normalizeV2(rules *yaml.Node) ([]Rule, error) {
	out := make([]Rule, 0, len(rules.Content)/2)
	for i := 0; i+1 < len(rules.Content); i += 2 {
		name := rules.Content[i].Value
		var entry v2Entry
		if err := rules.Content[i+1].Decode(&entry); err != nil {
			return nil, fmt.Errorf("rule %q: %w", name, err)
		}
		if entry.Rule == nil {
			return nil, fmt.Errorf("rule %q: missing rule entry", name)
		}

		ruleConfig, err := plainObject(&entry.Rule.Options)
		if err != nil {
			return nil, fmt.Errorf("rule %q: options: %w", name, err)
		}

		where := make([]string, len(entry.Where))
		copy(where, entry.Where)

		r := Rule{
			Name:       name,
			Level:      entry.Level,
			Where:      where,
			RuleType:   entry.Rule.Type,
			RuleConfig: ruleConfig,
			PolicyInfo: entry.PolicyInfo,
			PolicyURL:  entry.PolicyURL,
		}
		if entry.Fix != nil {
			fixConfig, err := plainObject(&entry.Fix.Options)
			if err != nil {
				return nil, fmt.Errorf("rule %q: fix options: %w", name, err)
			}
			r.FixType = entry.Fix.Type
			r.FixConfig = fixConfig
		}
		out = append(out, r)
	}
	return out, nil
}

// normalizeLegacy reads the pre-v2 dialect:
//
//	rules:
//	  all:
//	    "name:type": [level, options]
//	  language=go:
//	    "name": [level]
func normalizeLegacy(groups *yaml.Node) ([]Rule, error) {
	var out []Rule
	for i := 0; i+1 < len(groups.Content); i += 2 {
		group := groups.Content[i].Value
		entries := groups.Content[i+1]
		if entries.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("rule group %q must be an object, got %s", group, kindName(entries))
		}

		for j := 0; j+1 < len(entries.Content); j += 2 {
			key := entries.Content[j].Value
			r, err := legacyRule(group, key, entries.Content[j+1])
			if err != nil {
				return nil, fmt.Errorf("rule group %q: %w", group, err)
			}
			out = append(out, r)
		}
	}
	if out == nil {
		out = []Rule{}
	}
	return out, nil
}

func legacyRule(group, key string, value *yaml.Node) (Rule, error) {
	// "name:type"; segments after the type are ignored.
	parts := strings.Split(key, ":")
	name, ruleType := parts[0], parts[0]
	if len(parts) > 1 {
		ruleType = parts[1]
	}
	if name == "" || ruleType == "" {
		return Rule{}, fmt.Errorf("malformed rule key %q", key)
	}
	if value.Kind != yaml.SequenceNode || len(value.Content) == 0 {
		return Rule{}, fmt.Errorf("rule %q: expected [level, options], got %s", key, kindName(value))
	}

	level := value.Content[0]
	if level.Kind != yaml.ScalarNode {
		return Rule{}, fmt.Errorf("rule %q: level must be a string, got %s", key, kindName(level))
	}

	var optsNode *yaml.Node
	if len(value.Content) > 1 {
		optsNode = value.Content[1]
	}
	options, err := plainObject(optsNode)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: options: %w", key, err)
	}

	where := []string{}
	if group != groupAll {
		where = []string{group}
	}

	return Rule{
		Name:       name,
		Level:      Level(level.Value),
		Where:      where,
		RuleType:   ruleType,
		RuleConfig: options,
	}, nil
}
