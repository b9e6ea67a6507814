package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/fixtures"
	"github.com/eduka/eduka-api/internal/store"
)

var ErrPropositionNotFound = errors.New("proposition not found")

type PropositionRepository struct {
	loader  *fixtures.Loader
	store   *store.Store[domain.Proposition]
	latency store.Latency
}

func NewPropositionRepository(loader *fixtures.Loader, latency store.Latency) *PropositionRepository {
	return &PropositionRepository{
		loader:  loader,
		store:   store.New[domain.Proposition](),
		latency: latency,
	}
}

func (r *PropositionRepository) Load() error {
	propositions, err := fixtures.LoadCollection[domain.Proposition](r.loader, "propositions")
	if err != nil {
		return fmt.Errorf("fixtures.LoadCollection -> %w", err)
	}

	r.store.Replace(propositions)

	return nil
}

func (r *PropositionRepository) Store() *store.Store[domain.Proposition] {
	return r.store
}

func (r *PropositionRepository) FindAll(ctx context.Context) ([]domain.Proposition, error) {
	return r.store.Snapshot(), nil
}

func (r *PropositionRepository) FindByID(ctx context.Context, id string) (domain.Proposition, error) {
	for _, p := range r.store.Snapshot() {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Proposition{}, ErrPropositionNotFound
}

func (r *PropositionRepository) Update(ctx context.Context, proposition domain.Proposition) (domain.Proposition, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return domain.Proposition{}, err
	}

	snapshot := r.store.Snapshot()
	next := make([]domain.Proposition, len(snapshot))
	found := false
	for i, p := range snapshot {
		if p.ID == proposition.ID {
			next[i] = proposition
			found = true
		} else {
			next[i] = p
		}
	}
	if !found {
		return domain.Proposition{}, ErrPropositionNotFound
	}

	r.store.Replace(next)

	return proposition, nil
}

func (r *PropositionRepository) Create(ctx context.Context, proposition domain.Proposition) (domain.Proposition, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return domain.Proposition{}, err
	}

	snapshot := r.store.Snapshot()
	next := make([]domain.Proposition, len(snapshot), len(snapshot)+1)
	copy(next, snapshot)
	next = append(next, proposition)

	r.store.Replace(next)

	return proposition, nil
}
