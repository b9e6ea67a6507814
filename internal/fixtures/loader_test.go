package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID  string `json:"id"`
	Nom string `json:"nom"`
}

func writeFixture(t *testing.T, dir, collection, content string) {
	t.Helper()

	err := os.WriteFile(filepath.Join(dir, collection+".json"), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "items", `[{"id":"item-1","nom":"Premier"},{"id":"item-2","nom":"Second"}]`)

	loader := NewLoader(dir)

	items, err := LoadCollection[item](loader, "items")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "item-1", items[0].ID)
	assert.Equal(t, "Second", items[1].Nom)
}

func TestLoader_LoadMissingCollection(t *testing.T) {
	loader := NewLoader(t.TempDir())

	_, err := LoadCollection[item](loader, "absent")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCollectionNotFound)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "absent", loadErr.Collection)
}

func TestLoader_LoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "broken", `{not json`)

	loader := NewLoader(dir)

	_, err := LoadCollection[item](loader, "broken")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCollectionNotFound)
}
