package ruleset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse([]byte(src), "test")
	require.NoError(t, err)
	return doc
}

func TestNormalize_V2(t *testing.T) {
	doc := mustParse(t, `{
  "version": 2,
  "axioms": {"packagers": "packager"},
  "rules": {
    "zeta-license": {
      "level": "error",
      "where": [],
      "rule": {"type": "file-existence", "options": {"globsAny": ["LICENSE*"]}},
      "fix": {"type": "file-create", "options": {"file": "LICENSE"}},
      "policyInfo": "Every repo needs a license",
      "policyUrl": "https://example.com/license"
    },
    "alpha-readme": {
      "level": "warning",
      "where": ["packager=npm", "language=*"],
      "rule": {"type": "file-existence"}
    },
    "middle-off": {
      "level": "off",
      "rule": {"type": "file-contents", "options": {"globsAll": ["README.md"], "content": "x", "count": 3}}
    }
  }
}`)

	rules, err := Normalize(doc)
	require.NoError(t, err)
	require.Len(t, rules, 3)

	// insertion order, not sorted order
	assert.Equal(t, "zeta-license", rules[0].Name)
	assert.Equal(t, "alpha-readme", rules[1].Name)
	assert.Equal(t, "middle-off", rules[2].Name)

	first := rules[0]
	assert.Equal(t, LevelError, first.Level)
	assert.Empty(t, first.Where)
	assert.NotNil(t, first.Where)
	assert.Equal(t, "file-existence", first.RuleType)
	assert.Equal(t, map[string]any{"globsAny": []any{"LICENSE*"}}, first.RuleConfig)
	assert.True(t, first.HasFix())
	assert.Equal(t, "file-create", first.FixType)
	assert.Equal(t, map[string]any{"file": "LICENSE"}, first.FixConfig)
	assert.Equal(t, "Every repo needs a license", first.PolicyInfo)
	assert.Equal(t, "https://example.com/license", first.PolicyURL)

	second := rules[1]
	assert.Equal(t, LevelWarning, second.Level)
	assert.Equal(t, []string{"packager=npm", "language=*"}, second.Where)
	assert.Equal(t, map[string]any{}, second.RuleConfig)
	assert.False(t, second.HasFix())
	assert.Nil(t, second.FixConfig)

	third := rules[2]
	assert.Equal(t, LevelOff, third.Level)
	assert.Equal(t, float64(3), third.RuleConfig["count"])
}

func TestNormalize_V2YAML(t *testing.T) {
	doc := mustParse(t, `
version: 2
rules:
  b-rule:
    level: error
    where: []
    rule:
      type: x
      options: {}
  a-rule:
    level: warning
    where: [language=go]
    rule:
      type: y
`)

	rules, err := Normalize(doc)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "b-rule", rules[0].Name)
	assert.Equal(t, "a-rule", rules[1].Name)
	assert.Equal(t, []string{"language=go"}, rules[1].Where)
}

func TestNormalize_Legacy(t *testing.T) {
	doc := mustParse(t, `{
  "axioms": {"linguist": "language"},
  "rules": {
    "all": {
      "license-file-exists:file-existence": ["error", {"globsAny": ["LICENSE*"]}],
      "readme-file-exists": ["warning"]
    },
    "language=javascript": {
      "package-metadata-exists:file-existence": ["off", {"globsAny": ["package.json"]}]
    },
    "packager": {
      "lockfile:file-existence": ["error", {}]
    }
  }
}`)

	rules, err := Normalize(doc)
	require.NoError(t, err)
	require.Len(t, rules, 4)

	assert.Equal(t, Rule{
		Name:       "license-file-exists",
		Level:      LevelError,
		Where:      []string{},
		RuleType:   "file-existence",
		RuleConfig: map[string]any{"globsAny": []any{"LICENSE*"}},
	}, rules[0])

	// type defaults to the name, options default to {}
	assert.Equal(t, "readme-file-exists", rules[1].Name)
	assert.Equal(t, "readme-file-exists", rules[1].RuleType)
	assert.Equal(t, map[string]any{}, rules[1].RuleConfig)
	assert.Equal(t, LevelWarning, rules[1].Level)

	assert.Equal(t, []string{"language=javascript"}, rules[2].Where)
	assert.Equal(t, LevelOff, rules[2].Level)

	// group keys are used verbatim, even when not of the axiom=value form
	assert.Equal(t, []string{"packager"}, rules[3].Where)

	for _, r := range rules {
		assert.False(t, r.HasFix(), r.Name)
	}
}

func TestNormalize_LegacyWhereNotShared(t *testing.T) {
	doc := mustParse(t, `{"rules": {"language=go": {"a": ["error"], "b": ["error"]}}}`)

	rules, err := Normalize(doc)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	rules[0].Where[0] = "mutated"
	assert.Equal(t, "language=go", rules[1].Where[0])
}

func TestNormalize_LegacyExtraKeySegments(t *testing.T) {
	rules, err := Normalize(mustParse(t, `{"rules": {"all": {"a:b:c": ["error"]}}}`))
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "a", rules[0].Name)
	assert.Equal(t, "b", rules[0].RuleType)
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "no rules", src: `{"version": 2}`},
		{name: "rules not object", src: `{"version": 2, "rules": []}`},
		{name: "v2 missing rule", src: `{"version": 2, "rules": {"r": {"level": "error"}}}`},
		{name: "v2 options not object", src: `{"version": 2, "rules": {"r": {"level": "error", "rule": {"type": "x", "options": [1]}}}}`},
		{name: "legacy group not object", src: `{"rules": {"all": ["error"]}}`},
		{name: "legacy value not array", src: `{"rules": {"all": {"r": "error"}}}`},
		{name: "legacy empty array", src: `{"rules": {"all": {"r": []}}}`},
		{name: "legacy empty type", src: `{"rules": {"all": {"r:": ["error"]}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(mustParse(t, tt.src))
			assert.Error(t, err)
		})
	}

	_, err := Normalize(mustParse(t, `{"axioms": {}}`))
	assert.ErrorIs(t, err, ErrNoRules)
}
