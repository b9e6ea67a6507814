package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduka/eduka-api/internal/domain"
)

func proposition(id string) domain.Proposition {
	return domain.Proposition{
		ID:       id,
		CoursID:  "cours-1",
		EcoleID:  "ecole-1",
		ClasseID: "classe-1",
		Type:     domain.TypePropositionPublique,
		Statut:   domain.StatutPropositionEnAttente,
	}
}

func TestPropositionService_ListForFormateur(t *testing.T) {
	directe := proposition("prop-2")
	directe.Type = domain.TypePropositionDirecte
	directe.FormateurCibleID = "user-2"

	repo := &fakePropositionRepo{propositions: []domain.Proposition{
		proposition("prop-1"),
		directe,
	}}
	svc := NewPropositionService(repo, completeRefs(), &fakeUserRepo{})

	visible, err := svc.ListForFormateur(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "prop-1", visible[0].ID)

	visible, err = svc.ListForFormateur(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestPropositionService_ListWithCandidatureDe(t *testing.T) {
	applied := proposition("prop-1")
	applied.Candidatures = []domain.Candidature{
		{ID: "cand-1", FormateurID: "user-1"},
	}

	repo := &fakePropositionRepo{propositions: []domain.Proposition{
		applied,
		proposition("prop-2"),
	}}
	svc := NewPropositionService(repo, completeRefs(), &fakeUserRepo{})

	mine, err := svc.ListWithCandidatureDe(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "prop-1", mine[0].ID)
}

func TestPropositionService_Postuler(t *testing.T) {
	repo := &fakePropositionRepo{propositions: []domain.Proposition{proposition("prop-1")}}
	users := &fakeUserRepo{users: []domain.User{
		{ID: "user-1", Nom: "Martin", Prenom: "Sophie"},
	}}
	svc := NewPropositionService(repo, completeRefs(), users)

	updated, err := svc.Postuler(context.Background(), "prop-1", "user-1", "Disponible dès lundi")

	require.NoError(t, err)
	require.Len(t, updated.Candidatures, 1)
	cand := updated.Candidatures[0]
	assert.NotEmpty(t, cand.ID)
	assert.Equal(t, "user-1", cand.FormateurID)
	assert.Equal(t, "Sophie Martin", cand.FormateurNom)
	assert.Equal(t, "Disponible dès lundi", cand.Message)
	assert.Equal(t, domain.StatutCandidatureEnAttente, cand.Statut)
}

func TestPropositionService_PostulerDeuxFois(t *testing.T) {
	repo := &fakePropositionRepo{propositions: []domain.Proposition{proposition("prop-1")}}
	svc := NewPropositionService(repo, completeRefs(), &fakeUserRepo{})

	_, err := svc.Postuler(context.Background(), "prop-1", "user-1", "")
	require.NoError(t, err)

	// A second application is kept as a second candidature, not deduplicated.
	updated, err := svc.Postuler(context.Background(), "prop-1", "user-1", "")
	require.NoError(t, err)
	assert.Len(t, updated.Candidatures, 2)
}

func TestPropositionService_Create(t *testing.T) {
	repo := &fakePropositionRepo{}
	svc := NewPropositionService(repo, completeRefs(), &fakeUserRepo{})

	created, err := svc.Create(context.Background(), CreateInput{
		CoursID:      "cours-1",
		EcoleID:      "ecole-1",
		ClasseID:     "classe-1",
		Type:         domain.TypePropositionPublique,
		Remuneration: 45,
		CreatedBy:    "admin-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatutPropositionEnAttente, created.Statut)
	assert.NotNil(t, created.Candidatures)
	assert.Empty(t, created.Candidatures)
	require.Len(t, repo.propositions, 1)
}

func TestPropositionService_Filter(t *testing.T) {
	first := proposition("prop-1")
	first.Description = "Remplacement en mathématiques"
	first.CreatedAt = time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)

	second := proposition("prop-2")
	second.Statut = domain.StatutPropositionAcceptee
	second.CreatedAt = time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC)

	repo := &fakePropositionRepo{propositions: []domain.Proposition{first, second}}
	svc := NewPropositionService(repo, completeRefs(), &fakeUserRepo{})

	all, err := svc.Filter(context.Background(), FilterOptions{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "prop-2", all[0].ID) // newest first

	matched, err := svc.Filter(context.Background(), FilterOptions{Search: "remplacement"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "prop-1", matched[0].ID)

	accepted, err := svc.Filter(context.Background(), FilterOptions{Statut: domain.StatutPropositionAcceptee})
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "prop-2", accepted[0].ID)
}

func TestPropositionService_Stats(t *testing.T) {
	now := time.Now()

	urgent := proposition("prop-1")
	urgent.DateExpiration = now.Add(24 * time.Hour)

	expired := proposition("prop-2")
	expired.DateExpiration = now.Add(-24 * time.Hour)

	accepted := proposition("prop-3")
	accepted.Statut = domain.StatutPropositionAcceptee

	repo := &fakePropositionRepo{propositions: []domain.Proposition{urgent, expired, accepted}}
	svc := NewPropositionService(repo, completeRefs(), &fakeUserRepo{})

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.EnAttente)
	assert.Equal(t, 1, stats.Acceptees)
	assert.Equal(t, 1, stats.Expirees)
	assert.Equal(t, 1, stats.Urgentes)
}

func TestPropositionService_AccepterRefuser(t *testing.T) {
	repo := &fakePropositionRepo{propositions: []domain.Proposition{
		proposition("prop-1"),
		proposition("prop-2"),
	}}
	svc := NewPropositionService(repo, completeRefs(), &fakeUserRepo{})

	accepted, err := svc.Accepter(context.Background(), "prop-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatutPropositionAcceptee, accepted.Statut)

	refused, err := svc.Refuser(context.Background(), "prop-2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatutPropositionRefusee, refused.Statut)

	_, err = svc.Accepter(context.Background(), "prop-inconnue")
	assert.ErrorIs(t, err, ErrPropositionNotFound)
}
