package repository

import (
	"context"
	"fmt"

	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/fixtures"
	"github.com/eduka/eduka-api/internal/store"
)

type HistoriqueRepository struct {
	loader  *fixtures.Loader
	store   *store.Store[domain.HistoriqueEntry]
	latency store.Latency
}

func NewHistoriqueRepository(loader *fixtures.Loader, latency store.Latency) *HistoriqueRepository {
	return &HistoriqueRepository{
		loader:  loader,
		store:   store.New[domain.HistoriqueEntry](),
		latency: latency,
	}
}

func (r *HistoriqueRepository) Load() error {
	entries, err := fixtures.LoadCollection[domain.HistoriqueEntry](r.loader, "historique")
	if err != nil {
		return fmt.Errorf("fixtures.LoadCollection -> %w", err)
	}

	r.store.Replace(entries)

	return nil
}

func (r *HistoriqueRepository) FindAll(ctx context.Context) ([]domain.HistoriqueEntry, error) {
	return r.store.Snapshot(), nil
}

func (r *HistoriqueRepository) Create(ctx context.Context, entry domain.HistoriqueEntry) (domain.HistoriqueEntry, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return domain.HistoriqueEntry{}, err
	}

	snapshot := r.store.Snapshot()
	next := make([]domain.HistoriqueEntry, 0, len(snapshot)+1)
	next = append(next, entry)
	next = append(next, snapshot...)

	r.store.Replace(next)

	return entry, nil
}
