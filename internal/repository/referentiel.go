package repository

import (
	"context"
	"fmt"

	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/fixtures"
	"github.com/eduka/eduka-api/internal/store"
)

// ReferentielRepository serves the three read-only reference collections the
// enrichment join resolves against: cours, ecoles and classes.
type ReferentielRepository struct {
	loader  *fixtures.Loader
	cours   *store.Store[domain.Cours]
	ecoles  *store.Store[domain.Ecole]
	classes *store.Store[domain.Classe]
}

func NewReferentielRepository(loader *fixtures.Loader) *ReferentielRepository {
	return &ReferentielRepository{
		loader:  loader,
		cours:   store.New[domain.Cours](),
		ecoles:  store.New[domain.Ecole](),
		classes: store.New[domain.Classe](),
	}
}

func (r *ReferentielRepository) LoadCours() error {
	cours, err := fixtures.LoadCollection[domain.Cours](r.loader, "cours")
	if err != nil {
		return fmt.Errorf("fixtures.LoadCollection -> %w", err)
	}

	r.cours.Replace(cours)

	return nil
}

func (r *ReferentielRepository) LoadEcoles() error {
	ecoles, err := fixtures.LoadCollection[domain.Ecole](r.loader, "ecoles")
	if err != nil {
		return fmt.Errorf("fixtures.LoadCollection -> %w", err)
	}

	r.ecoles.Replace(ecoles)

	return nil
}

func (r *ReferentielRepository) LoadClasses() error {
	classes, err := fixtures.LoadCollection[domain.Classe](r.loader, "classes")
	if err != nil {
		return fmt.Errorf("fixtures.LoadCollection -> %w", err)
	}

	r.classes.Replace(classes)

	return nil
}

func (r *ReferentielRepository) FindAllCours(ctx context.Context) ([]domain.Cours, error) {
	return r.cours.Snapshot(), nil
}

func (r *ReferentielRepository) FindAllEcoles(ctx context.Context) ([]domain.Ecole, error) {
	return r.ecoles.Snapshot(), nil
}

func (r *ReferentielRepository) FindAllClasses(ctx context.Context) ([]domain.Classe, error) {
	return r.classes.Snapshot(), nil
}
