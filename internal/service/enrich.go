package service

import (
	"context"
	"fmt"

	"github.com/eduka/eduka-api/internal/domain"
)

// ReferentielReader exposes the reference collections the enrichment join
// resolves foreign keys against.
type ReferentielReader interface {
	FindAllCours(ctx context.Context) ([]domain.Cours, error)
	FindAllEcoles(ctx context.Context) ([]domain.Ecole, error)
	FindAllClasses(ctx context.Context) ([]domain.Classe, error)
}

// referentiel is one consistent read of all reference collections.
type referentiel struct {
	cours   map[string]domain.Cours
	ecoles  map[string]domain.Ecole
	classes map[string]domain.Classe
}

// complete reports whether every reference collection has loaded. The join
// never runs against a partially loaded referentiel; callers return an empty
// enriched view instead.
func (r referentiel) complete() bool {
	return len(r.cours) > 0 && len(r.ecoles) > 0 && len(r.classes) > 0
}

func (r referentiel) resolve(coursID, ecoleID, classeID string) (*domain.Cours, *domain.Ecole, *domain.Classe, bool) {
	cours, ok := r.cours[coursID]
	if !ok {
		return nil, nil, nil, false
	}
	ecole, ok := r.ecoles[ecoleID]
	if !ok {
		return nil, nil, nil, false
	}
	classe, ok := r.classes[classeID]
	if !ok {
		return nil, nil, nil, false
	}

	return &cours, &ecole, &classe, true
}

func loadReferentiel(ctx context.Context, repo ReferentielReader) (referentiel, error) {
	cours, err := repo.FindAllCours(ctx)
	if err != nil {
		return referentiel{}, fmt.Errorf("repo.FindAllCours -> %w", err)
	}
	ecoles, err := repo.FindAllEcoles(ctx)
	if err != nil {
		return referentiel{}, fmt.Errorf("repo.FindAllEcoles -> %w", err)
	}
	classes, err := repo.FindAllClasses(ctx)
	if err != nil {
		return referentiel{}, fmt.Errorf("repo.FindAllClasses -> %w", err)
	}

	ref := referentiel{
		cours:   make(map[string]domain.Cours, len(cours)),
		ecoles:  make(map[string]domain.Ecole, len(ecoles)),
		classes: make(map[string]domain.Classe, len(classes)),
	}
	for _, c := range cours {
		ref.cours[c.ID] = c
	}
	for _, e := range ecoles {
		ref.ecoles[e.ID] = e
	}
	for _, c := range classes {
		ref.classes[c.ID] = c
	}

	return ref, nil
}
