package store

import (
	"os"
	"path/filepath"
	"testing"

	"sharapu/internal/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	t.Parallel()

	items, err := DefaultContent()
	require.NoError(t, err)
	require.NotEmpty(t, items)

	cats, tags := filter.Facets(items)
	assert.Equal(t, DefaultCategories(), cats, "seed covers every chip in display order")
	assert.Contains(t, tags, "remote")
	for _, it := range items {
		assert.True(t, IsItemID(it.ID), it.ID)
		assert.NotEmpty(t, it.Title)
	}
}

func TestParseSeed_YAMLAndJSON(t *testing.T) {
	t.Parallel()

	yml := []byte(`
items:
  - id: item-one
    title: " One "
    category: A
    tags: [x, y, x]
  - title: Two
`)
	items, err := ParseSeed("seed.yaml", yml)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "One", items[0].Title)
	assert.Equal(t, []string{"x", "y"}, items[0].Tags.Sorted())
	assert.True(t, IsItemID(items[1].ID), "generated id")

	js := []byte(`{"items":[{"id":"item-j","title":"J","tags":["t"]}]}`)
	items, err = ParseSeed("seed.JSON", js)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Tags.Has("t"))
}

func TestParseSeed_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		data string
		want string
	}{
		{name: "unknown yaml field", file: "a.yaml", data: "items:\n  - title: A\n    colour: red\n", want: "colour"},
		{name: "unknown json field", file: "a.json", data: `{"items":[{"title":"A","colour":"red"}]}`, want: "colour"},
		{name: "missing title", file: "a.yaml", data: "items:\n  - id: item-a\n", want: "no title"},
		{name: "duplicate id", file: "a.yaml", data: "items:\n  - {id: item-a, title: A}\n  - {id: item-a, title: B}\n", want: "duplicate id"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseSeed(tt.file, []byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseSeed_EmptyIsEmptyList(t *testing.T) {
	t.Parallel()

	items, err := ParseSeed("a.json", []byte(`{"items":[]}`))
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLoadSeedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - {id: item-f, title: F}\n"), 0o644))

	items, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item-f", items[0].ID)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
