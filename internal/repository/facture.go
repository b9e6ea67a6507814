package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/fixtures"
	"github.com/eduka/eduka-api/internal/store"
)

var ErrFactureNotFound = errors.New("facture not found")

type FactureRepository struct {
	loader  *fixtures.Loader
	store   *store.Store[domain.Facture]
	latency store.Latency
}

func NewFactureRepository(loader *fixtures.Loader, latency store.Latency) *FactureRepository {
	return &FactureRepository{
		loader:  loader,
		store:   store.New[domain.Facture](),
		latency: latency,
	}
}

func (r *FactureRepository) Load() error {
	factures, err := fixtures.LoadCollection[domain.Facture](r.loader, "factures")
	if err != nil {
		return fmt.Errorf("fixtures.LoadCollection -> %w", err)
	}

	r.store.Replace(factures)

	return nil
}

func (r *FactureRepository) Store() *store.Store[domain.Facture] {
	return r.store
}

func (r *FactureRepository) FindAll(ctx context.Context) ([]domain.Facture, error) {
	return r.store.Snapshot(), nil
}

func (r *FactureRepository) FindByID(ctx context.Context, id string) (domain.Facture, error) {
	for _, f := range r.store.Snapshot() {
		if f.ID == id {
			return f, nil
		}
	}

	return domain.Facture{}, ErrFactureNotFound
}

// Count returns the collection size; facture numbering derives from it.
func (r *FactureRepository) Count(ctx context.Context) (int, error) {
	return len(r.store.Snapshot()), nil
}

func (r *FactureRepository) Update(ctx context.Context, facture domain.Facture) (domain.Facture, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return domain.Facture{}, err
	}

	snapshot := r.store.Snapshot()
	next := make([]domain.Facture, len(snapshot))
	found := false
	for i, f := range snapshot {
		if f.ID == facture.ID {
			next[i] = facture
			found = true
		} else {
			next[i] = f
		}
	}
	if !found {
		return domain.Facture{}, ErrFactureNotFound
	}

	r.store.Replace(next)

	return facture, nil
}

func (r *FactureRepository) Create(ctx context.Context, facture domain.Facture) (domain.Facture, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return domain.Facture{}, err
	}

	snapshot := r.store.Snapshot()
	next := make([]domain.Facture, len(snapshot), len(snapshot)+1)
	copy(next, snapshot)
	next = append(next, facture)

	r.store.Replace(next)

	return facture, nil
}
