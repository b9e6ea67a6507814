package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduka/eduka-api/internal/fixtures"
	"github.com/eduka/eduka-api/internal/store"
)

func writeCollections(t *testing.T, dir string, collections map[string]string) {
	t.Helper()

	for name, content := range collections {
		err := os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0o644)
		require.NoError(t, err)
	}
}

func TestRegistry_LoadAll(t *testing.T) {
	dir := t.TempDir()
	writeCollections(t, dir, map[string]string{
		"users":         `[{"id":"user-1","email":"sophie.martin@eduka.fr","role":"formateur"}]`,
		"cours":         `[{"id":"cours-1","nom":"Mathématiques"}]`,
		"ecoles":        `[{"id":"ecole-1","nom":"Lycée Saint-Exupéry"}]`,
		"classes":       `[{"id":"classe-1","nom":"Terminale S1","ecoleId":"ecole-1"}]`,
		"missions":      `[{"id":"mission-1","statut":"planifiee"}]`,
		"propositions":  `[{"id":"prop-1","statut":"en_attente"}]`,
		"factures":      `[{"id":"facture-1","numero":"FAC-2025-001"}]`,
		"notifications": `[{"id":"notif-1","userId":"user-1"}]`,
		"historique":    `[{"id":"hist-1","userId":"user-1"}]`,
	})

	registry := NewRegistry(fixtures.NewLoader(dir), store.None())
	require.NoError(t, registry.LoadAll())

	ctx := context.Background()

	user, err := registry.Users.FindByEmail(ctx, "sophie.martin@eduka.fr")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	cours, err := registry.Referentiel.FindAllCours(ctx)
	require.NoError(t, err)
	assert.Len(t, cours, 1)

	missions, err := registry.Missions.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, missions, 1)

	count, err := registry.Factures.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegistry_LoadAllMissingCollection(t *testing.T) {
	registry := NewRegistry(fixtures.NewLoader(t.TempDir()), store.None())

	err := registry.LoadAll()

	require.Error(t, err)
	assert.ErrorIs(t, err, fixtures.ErrCollectionNotFound)
}

func TestRegistry_ReloadsCoverEveryCollection(t *testing.T) {
	registry := NewRegistry(fixtures.NewLoader(t.TempDir()), store.None())

	reloads := registry.Reloads()

	for _, name := range []string{"users", "cours", "ecoles", "classes", "missions", "propositions", "factures", "notifications", "historique"} {
		assert.Contains(t, reloads, name)
	}
}
