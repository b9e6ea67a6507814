package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/fixtures"
	"github.com/eduka/eduka-api/internal/store"
)

var ErrMissionNotFound = errors.New("mission not found")

// MissionRepository serves raw mission records; foreign keys are resolved by
// the enrichment join in the service layer.
type MissionRepository struct {
	loader  *fixtures.Loader
	store   *store.Store[domain.Mission]
	latency store.Latency
}

func NewMissionRepository(loader *fixtures.Loader, latency store.Latency) *MissionRepository {
	return &MissionRepository{
		loader:  loader,
		store:   store.New[domain.Mission](),
		latency: latency,
	}
}

func (r *MissionRepository) Load() error {
	missions, err := fixtures.LoadCollection[domain.Mission](r.loader, "missions")
	if err != nil {
		return fmt.Errorf("fixtures.LoadCollection -> %w", err)
	}

	r.store.Replace(missions)

	return nil
}

func (r *MissionRepository) Store() *store.Store[domain.Mission] {
	return r.store
}

func (r *MissionRepository) FindAll(ctx context.Context) ([]domain.Mission, error) {
	return r.store.Snapshot(), nil
}

func (r *MissionRepository) FindByID(ctx context.Context, id string) (domain.Mission, error) {
	for _, m := range r.store.Snapshot() {
		if m.ID == id {
			return m, nil
		}
	}

	return domain.Mission{}, ErrMissionNotFound
}

// Update replaces the matching mission in a fresh snapshot after the
// simulated round trip. Last write wins.
func (r *MissionRepository) Update(ctx context.Context, mission domain.Mission) (domain.Mission, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return domain.Mission{}, err
	}

	snapshot := r.store.Snapshot()
	next := make([]domain.Mission, len(snapshot))
	found := false
	for i, m := range snapshot {
		if m.ID == mission.ID {
			next[i] = mission
			found = true
		} else {
			next[i] = m
		}
	}
	if !found {
		return domain.Mission{}, ErrMissionNotFound
	}

	r.store.Replace(next)

	return mission, nil
}

// Create appends the mission to a fresh snapshot.
func (r *MissionRepository) Create(ctx context.Context, mission domain.Mission) (domain.Mission, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return domain.Mission{}, err
	}

	snapshot := r.store.Snapshot()
	next := make([]domain.Mission, len(snapshot), len(snapshot)+1)
	copy(next, snapshot)
	next = append(next, mission)

	r.store.Replace(next)

	return mission, nil
}
