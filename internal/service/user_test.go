package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/fixtures"
	"github.com/eduka/eduka-api/internal/repository"
	"github.com/eduka/eduka-api/internal/store"
)

func TestUserService_UpdateProfile(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{
		{ID: "user-1", Nom: "Martin", Prenom: "Sophie"},
	}}
	svc := NewUserService(repo)

	updated, err := svc.UpdateProfile(context.Background(), "user-1", ProfileInput{
		Telephone:    "0612345678",
		Ville:        "Lyon",
		TarifHoraire: 48,
	})

	require.NoError(t, err)
	assert.Equal(t, "0612345678", updated.Telephone)
	assert.Equal(t, "Lyon", updated.Ville)
	assert.Equal(t, 48.0, updated.TarifHoraire)

	// The name is not editable through the profile form.
	assert.Equal(t, "Martin", updated.Nom)
}

func TestUserService_CompetenceLifecycle(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{{ID: "user-1"}}}
	svc := NewUserService(repo)

	updated, err := svc.AjouterCompetence(context.Background(), "user-1", "Python", "avance")
	require.NoError(t, err)
	require.Len(t, updated.Competences, 1)
	assert.Equal(t, "Python", updated.Competences[0].Nom)
	assert.Equal(t, "avance", updated.Competences[0].Niveau)

	updated, err = svc.SupprimerCompetence(context.Background(), "user-1", updated.Competences[0].ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Competences)
}

func TestUserService_DocumentLifecycle(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{{ID: "user-1"}}}
	svc := NewUserService(repo)

	updated, err := svc.AjouterDocument(context.Background(), "user-1", "cv.pdf", "cv")
	require.NoError(t, err)
	require.Len(t, updated.Documents, 1)
	assert.Equal(t, "/uploads/cv.pdf", updated.Documents[0].URL)

	updated, err = svc.SupprimerDocument(context.Background(), "user-1", updated.Documents[0].ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Documents)
}

func TestUserService_AlerteIntervenant(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{{ID: "user-1"}}}
	svc := NewUserService(repo)

	updated, err := svc.AjouterAlerteIntervenant(context.Background(), "user-1",
		domain.TypeAlerteIntervenantRetardFrequent, "Retards répétés", "Trois retards ce mois-ci", "admin-1")
	require.NoError(t, err)
	require.Len(t, updated.Alertes, 1)
	assert.Equal(t, "admin-1", updated.Alertes[0].CreatedBy)
	assert.False(t, updated.Alertes[0].Resolue)

	updated, err = svc.ResoudreAlerteIntervenant(context.Background(), "user-1", updated.Alertes[0].ID, "admin-1")
	require.NoError(t, err)
	assert.True(t, updated.Alertes[0].Resolue)
	require.NotNil(t, updated.Alertes[0].ResolvedAt)

	_, err = svc.ResoudreAlerteIntervenant(context.Background(), "user-1", "alerte-inconnue", "admin-1")
	assert.ErrorIs(t, err, ErrAlerteIntervenantNotFound)
}

func TestUserService_ResoudreAlerteFailedUpdateLeavesStoreUntouched(t *testing.T) {
	dir := t.TempDir()
	usersJSON := `[{"id":"user-1","role":"formateur","alertes":[{"id":"alerte-1","type":"retard_frequent"}]}]`
	err := os.WriteFile(filepath.Join(dir, "users.json"), []byte(usersJSON), 0o644)
	require.NoError(t, err)

	repo := repository.NewUserRepository(fixtures.NewLoader(dir), store.FixedLatency(time.Minute))
	require.NoError(t, repo.Load())

	svc := NewUserService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.ResoudreAlerteIntervenant(ctx, "user-1", "alerte-1", "admin-1")
	require.ErrorIs(t, err, context.Canceled)

	// The snapshot must not carry the resolution the update never committed.
	user, err := repo.FindByID(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, user.Alertes, 1)
	assert.False(t, user.Alertes[0].Resolue)
	assert.Nil(t, user.Alertes[0].ResolvedAt)
	assert.Empty(t, user.Alertes[0].ResolvedBy)
}
