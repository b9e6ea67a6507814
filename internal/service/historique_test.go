package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduka/eduka-api/internal/domain"
)

type fakeHistoriqueRepo struct {
	entries []domain.HistoriqueEntry
}

func (r *fakeHistoriqueRepo) FindAll(ctx context.Context) ([]domain.HistoriqueEntry, error) {
	return r.entries, nil
}

func (r *fakeHistoriqueRepo) Create(ctx context.Context, entry domain.HistoriqueEntry) (domain.HistoriqueEntry, error) {
	r.entries = append(r.entries, entry)

	return entry, nil
}

func TestHistoriqueService_ListByUser(t *testing.T) {
	repo := &fakeHistoriqueRepo{entries: []domain.HistoriqueEntry{
		{ID: "hist-1", UserID: "user-1", CreatedAt: time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "hist-2", UserID: "user-2", CreatedAt: time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "hist-3", UserID: "user-1", CreatedAt: time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewHistoriqueService(repo)

	mine, err := svc.ListByUser(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "hist-3", mine[0].ID) // newest first
}

func TestHistoriqueService_Record(t *testing.T) {
	repo := &fakeHistoriqueRepo{}
	svc := NewHistoriqueService(repo)

	err := svc.Record(context.Background(), "user-1", domain.TypeActionFactureCreee,
		"Facture FAC-2025-001 créée", map[string]string{"factureId": "facture-1"})

	require.NoError(t, err)
	require.Len(t, repo.entries, 1)
	assert.NotEmpty(t, repo.entries[0].ID)
	assert.Equal(t, domain.TypeActionFactureCreee, repo.entries[0].Type)
	assert.Equal(t, "facture-1", repo.entries[0].Metadata["factureId"])
}
