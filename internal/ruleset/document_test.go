package ruleset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Errors(t *testing.T) {
	for name, src := range map[string]string{
		"empty":      "",
		"array":      "[1, 2]",
		"scalar":     "hello",
		"bad syntax": "{\"rules\": ",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src), "test")
			assert.Error(t, err)
		})
	}
}

func TestDocument_Accessors(t *testing.T) {
	doc := mustParse(t, `{
  "version": 2,
  "axioms": {"linguist": "language", "packagers": "packager"},
  "formatOptions": {"disclaimer": "generated"},
  "rules": {}
}`)

	v, ok := doc.Version()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	axioms, err := doc.Axioms()
	require.NoError(t, err)
	assert.Equal(t, []AxiomBinding{
		{ID: "linguist", Name: "language"},
		{ID: "packagers", Name: "packager"},
	}, axioms)

	opts, err := doc.FormatOptions()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"disclaimer": "generated"}, opts)

	value, err := doc.Value()
	require.NoError(t, err)
	m, ok := value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), m["version"])
}

func TestDocument_NoOptionalSections(t *testing.T) {
	doc := mustParse(t, `{"rules": {}}`)

	_, ok := doc.Version()
	assert.False(t, ok)

	axioms, err := doc.Axioms()
	require.NoError(t, err)
	assert.Empty(t, axioms)

	opts, err := doc.FormatOptions()
	require.NoError(t, err)
	assert.Nil(t, opts)
}

func TestLoadAndDiscover(t *testing.T) {
	dir := t.TempDir()

	_, err := Discover(dir)
	assert.Error(t, err)

	p := filepath.Join(dir, "repolint.yaml")
	require.NoError(t, os.WriteFile(p, []byte("rules:\n  all: {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "repolinter.json"), []byte(`{"rules": {}}`), 0o644))

	found, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, p, found)

	doc, err := Load(found)
	require.NoError(t, err)
	assert.Equal(t, p, doc.Source)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
