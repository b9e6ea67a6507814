package repository

import (
	"fmt"

	"github.com/eduka/eduka-api/internal/fixtures"
	"github.com/eduka/eduka-api/internal/store"
)

// Registry owns every repository backed by the fixture dataset. All
// repositories share one loader and one latency policy.
type Registry struct {
	Users         *UserRepository
	Referentiel   *ReferentielRepository
	Missions      *MissionRepository
	Propositions  *PropositionRepository
	Factures      *FactureRepository
	Notifications *NotificationRepository
	Historique    *HistoriqueRepository
}

func NewRegistry(loader *fixtures.Loader, latency store.Latency) *Registry {
	return &Registry{
		Users:         NewUserRepository(loader, latency),
		Referentiel:   NewReferentielRepository(loader),
		Missions:      NewMissionRepository(loader, latency),
		Propositions:  NewPropositionRepository(loader, latency),
		Factures:      NewFactureRepository(loader, latency),
		Notifications: NewNotificationRepository(loader, latency),
		Historique:    NewHistoriqueRepository(loader, latency),
	}
}

// LoadAll seeds every store from its fixture file.
func (r *Registry) LoadAll() error {
	for name, load := range r.Reloads() {
		if err := load(); err != nil {
			return fmt.Errorf("load %q -> %w", name, err)
		}
	}

	return nil
}

// Reloads maps collection names to their reload callbacks, as consumed by
// the fixtures watcher.
func (r *Registry) Reloads() map[string]func() error {
	return map[string]func() error{
		"users":         r.Users.Load,
		"cours":         r.Referentiel.LoadCours,
		"ecoles":        r.Referentiel.LoadEcoles,
		"classes":       r.Referentiel.LoadClasses,
		"missions":      r.Missions.Load,
		"propositions":  r.Propositions.Load,
		"factures":      r.Factures.Load,
		"notifications": r.Notifications.Load,
		"historique":    r.Historique.Load,
	}
}
