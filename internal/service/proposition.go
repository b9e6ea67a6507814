package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/repository"
)

var ErrPropositionNotFound = repository.ErrPropositionNotFound

type PropositionRepository interface {
	FindAll(ctx context.Context) ([]domain.Proposition, error)
	FindByID(ctx context.Context, id string) (domain.Proposition, error)
	Update(ctx context.Context, proposition domain.Proposition) (domain.Proposition, error)
	Create(ctx context.Context, proposition domain.Proposition) (domain.Proposition, error)
}

type PropositionUserReader interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
}

type PropositionService struct {
	repo  PropositionRepository
	refs  ReferentielReader
	users PropositionUserReader
}

func NewPropositionService(repo PropositionRepository, refs ReferentielReader, users PropositionUserReader) *PropositionService {
	return &PropositionService{
		repo:  repo,
		refs:  refs,
		users: users,
	}
}

// ListEnriched joins raw propositions against the reference collections,
// with the same guard and silent-drop policy as missions.
func (s *PropositionService) ListEnriched(ctx context.Context) ([]domain.Proposition, error) {
	propositions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	ref, err := loadReferentiel(ctx, s.refs)
	if err != nil {
		return nil, err
	}
	if !ref.complete() {
		return []domain.Proposition{}, nil
	}

	enriched := make([]domain.Proposition, 0, len(propositions))
	for _, p := range propositions {
		cours, ecole, classe, ok := ref.resolve(p.CoursID, p.EcoleID, p.ClasseID)
		if !ok {
			continue
		}

		p.Cours = cours
		p.Ecole = ecole
		p.Classe = classe
		if p.Candidatures == nil {
			p.Candidatures = []domain.Candidature{}
		}
		enriched = append(enriched, p)
	}

	return enriched, nil
}

// ListForFormateur returns public propositions plus the ones directly
// targeted at the trainer.
func (s *PropositionService) ListForFormateur(ctx context.Context, formateurID string) ([]domain.Proposition, error) {
	propositions, err := s.ListEnriched(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Proposition, 0, len(propositions))
	for _, p := range propositions {
		if p.VisiblePar(formateurID) {
			visible = append(visible, p)
		}
	}

	return visible, nil
}

// ListWithCandidatureDe returns propositions the trainer has applied to.
func (s *PropositionService) ListWithCandidatureDe(ctx context.Context, formateurID string) ([]domain.Proposition, error) {
	propositions, err := s.ListEnriched(ctx)
	if err != nil {
		return nil, err
	}

	var applied []domain.Proposition
	for _, p := range propositions {
		for _, c := range p.Candidatures {
			if c.FormateurID == formateurID {
				applied = append(applied, p)
				break
			}
		}
	}

	return applied, nil
}

func (s *PropositionService) GetByID(ctx context.Context, id string) (domain.Proposition, error) {
	propositions, err := s.ListEnriched(ctx)
	if err != nil {
		return domain.Proposition{}, err
	}

	for _, p := range propositions {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Proposition{}, ErrPropositionNotFound
}

// Postuler records a candidature on a proposition. A trainer applying twice
// ends up with two candidatures; the original behaves the same way.
func (s *PropositionService) Postuler(ctx context.Context, propositionID, formateurID, message string) (domain.Proposition, error) {
	proposition, err := s.repo.FindByID(ctx, propositionID)
	if err != nil {
		return domain.Proposition{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	formateurNom := ""
	if user, err := s.users.FindByID(ctx, formateurID); err == nil {
		formateurNom = user.NomComplet()
	}

	proposition.Candidatures = append(proposition.Candidatures, domain.Candidature{
		ID:            uuid.NewString(),
		PropositionID: propositionID,
		FormateurID:   formateurID,
		FormateurNom:  formateurNom,
		Message:       message,
		Statut:        domain.StatutCandidatureEnAttente,
		CreatedAt:     time.Now(),
	})
	proposition.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, proposition)
	if err != nil {
		return domain.Proposition{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *PropositionService) Accepter(ctx context.Context, propositionID string) (domain.Proposition, error) {
	return s.updateStatut(ctx, propositionID, domain.StatutPropositionAcceptee)
}

func (s *PropositionService) Refuser(ctx context.Context, propositionID string) (domain.Proposition, error) {
	return s.updateStatut(ctx, propositionID, domain.StatutPropositionRefusee)
}

func (s *PropositionService) updateStatut(ctx context.Context, propositionID, statut string) (domain.Proposition, error) {
	proposition, err := s.repo.FindByID(ctx, propositionID)
	if err != nil {
		return domain.Proposition{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	proposition.Statut = statut
	proposition.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, proposition)
	if err != nil {
		return domain.Proposition{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// CreateInput carries the admin-created proposition fields.
type CreateInput struct {
	CoursID          string
	EcoleID          string
	ClasseID         string
	DateDebut        time.Time
	DateFin          time.Time
	HeureDebut       string
	HeureFin         string
	Type             string
	FormateurCibleID string
	Description      string
	Remuneration     float64
	DateExpiration   time.Time
	CreatedBy        string
}

func (s *PropositionService) Create(ctx context.Context, input CreateInput) (domain.Proposition, error) {
	now := time.Now()
	proposition := domain.Proposition{
		ID:               uuid.NewString(),
		CoursID:          input.CoursID,
		EcoleID:          input.EcoleID,
		ClasseID:         input.ClasseID,
		DateDebut:        input.DateDebut,
		DateFin:          input.DateFin,
		HeureDebut:       input.HeureDebut,
		HeureFin:         input.HeureFin,
		Type:             input.Type,
		Statut:           domain.StatutPropositionEnAttente,
		FormateurCibleID: input.FormateurCibleID,
		Candidatures:     []domain.Candidature{},
		Description:      input.Description,
		Remuneration:     input.Remuneration,
		DateExpiration:   input.DateExpiration,
		CreatedBy:        input.CreatedBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repo.Create(ctx, proposition)
	if err != nil {
		return domain.Proposition{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// FilterOptions narrows the admin proposition listing.
type FilterOptions struct {
	Search string
	Statut string
	Type   string
}

// Filter applies free-text search over joined fields plus status and type
// filters, newest first.
func (s *PropositionService) Filter(ctx context.Context, opts FilterOptions) ([]domain.Proposition, error) {
	propositions, err := s.ListEnriched(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(opts.Search)
	filtered := make([]domain.Proposition, 0, len(propositions))
	for _, p := range propositions {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if opts.Statut != "" && p.Statut != opts.Statut {
			continue
		}
		if opts.Type != "" && p.Type != opts.Type {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return filtered, nil
}

func matchesSearch(p domain.Proposition, search string) bool {
	if p.Cours != nil && strings.Contains(strings.ToLower(p.Cours.Nom), search) {
		return true
	}
	if p.Ecole != nil && strings.Contains(strings.ToLower(p.Ecole.Nom), search) {
		return true
	}
	if p.Classe != nil && strings.Contains(strings.ToLower(p.Classe.Nom), search) {
		return true
	}

	return strings.Contains(strings.ToLower(p.Description), search)
}

// PropositionStats are the counters above the admin proposition list.
type PropositionStats struct {
	Total     int `json:"total"`
	EnAttente int `json:"enAttente"`
	Acceptees int `json:"acceptees"`
	Refusees  int `json:"refusees"`
	Expirees  int `json:"expirees"`
	Urgentes  int `json:"urgentes"`
}

func (s *PropositionService) Stats(ctx context.Context) (PropositionStats, error) {
	propositions, err := s.ListEnriched(ctx)
	if err != nil {
		return PropositionStats{}, err
	}

	now := time.Now()
	urgentCutoff := now.Add(3 * 24 * time.Hour)

	stats := PropositionStats{Total: len(propositions)}
	for _, p := range propositions {
		switch p.Statut {
		case domain.StatutPropositionEnAttente:
			stats.EnAttente++
		case domain.StatutPropositionAcceptee:
			stats.Acceptees++
		case domain.StatutPropositionRefusee:
			stats.Refusees++
		}
		if p.Statut == domain.StatutPropositionEnAttente && p.EstExpiree(now) {
			stats.Expirees++
		}
		if p.Statut == domain.StatutPropositionEnAttente &&
			!p.DateExpiration.Before(now) && !p.DateExpiration.After(urgentCutoff) {
			stats.Urgentes++
		}
	}

	return stats, nil
}
