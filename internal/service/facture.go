package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/repository"
)

var (
	ErrFactureNotFound   = repository.ErrFactureNotFound
	ErrFactureSansLignes = errors.New("facture has no lines")
)

type FactureRepository interface {
	FindAll(ctx context.Context) ([]domain.Facture, error)
	FindByID(ctx context.Context, id string) (domain.Facture, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, facture domain.Facture) (domain.Facture, error)
	Create(ctx context.Context, facture domain.Facture) (domain.Facture, error)
}

type FactureUserReader interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
}

type FactureNotifier interface {
	Notify(ctx context.Context, userID, typ, titre, message string, metadata map[string]string) error
}

type FactureService struct {
	repo     FactureRepository
	users    FactureUserReader
	notifier FactureNotifier
}

func NewFactureService(repo FactureRepository, users FactureUserReader, notifier FactureNotifier) *FactureService {
	return &FactureService{
		repo:     repo,
		users:    users,
		notifier: notifier,
	}
}

func (s *FactureService) enrich(ctx context.Context, facture domain.Facture) domain.Facture {
	if facture.FormateurNom == "" {
		if user, err := s.users.FindByID(ctx, facture.FormateurID); err == nil {
			facture.FormateurNom = user.NomComplet()
		}
	}

	return facture
}

func (s *FactureService) ListAll(ctx context.Context) ([]domain.Facture, error) {
	factures, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	enriched := make([]domain.Facture, len(factures))
	for i, f := range factures {
		enriched[i] = s.enrich(ctx, f)
	}

	return enriched, nil
}

// ListByFormateur returns the trainer's factures, newest emission first.
func (s *FactureService) ListByFormateur(ctx context.Context, formateurID string) ([]domain.Facture, error) {
	factures, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]domain.Facture, 0, len(factures))
	for _, f := range factures {
		if f.FormateurID == formateurID {
			mine = append(mine, f)
		}
	}

	sort.Slice(mine, func(i, j int) bool {
		return mine[i].DateEmission.After(mine[j].DateEmission)
	})

	return mine, nil
}

func (s *FactureService) GetByID(ctx context.Context, id string) (domain.Facture, error) {
	facture, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Facture{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return s.enrich(ctx, facture), nil
}

// LigneInput is one facture line as submitted by the trainer; the amount is
// always recomputed server-side.
type LigneInput struct {
	Description string
	MissionID   string
	Quantite    float64
	TauxHoraire float64
}

// Create builds a draft facture: sequential number, recomputed totals,
// 30-day due date.
func (s *FactureService) Create(ctx context.Context, formateurID string, lignes []LigneInput, notes string) (domain.Facture, error) {
	if len(lignes) == 0 {
		return domain.Facture{}, ErrFactureSansLignes
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return domain.Facture{}, fmt.Errorf("s.repo.Count -> %w", err)
	}

	now := time.Now()
	facture := domain.Facture{
		ID:           uuid.NewString(),
		Numero:       fmt.Sprintf("FAC-%d-%03d", now.Year(), count+1),
		FormateurID:  formateurID,
		Lignes:       make([]domain.LigneFacture, len(lignes)),
		DateEmission: now,
		DateEcheance: now.Add(30 * 24 * time.Hour),
		Statut:       domain.StatutFactureBrouillon,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for i, l := range lignes {
		facture.Lignes[i] = domain.LigneFacture{
			ID:          uuid.NewString(),
			Description: l.Description,
			MissionID:   l.MissionID,
			Quantite:    l.Quantite,
			TauxHoraire: l.TauxHoraire,
		}
	}
	facture.CalculerTotaux()

	created, err := s.repo.Create(ctx, facture)
	if err != nil {
		return domain.Facture{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return s.enrich(ctx, created), nil
}

func (s *FactureService) Soumettre(ctx context.Context, factureID string) (domain.Facture, error) {
	return s.updateStatut(ctx, factureID, domain.StatutFactureSoumise, "")
}

// Valider moves the facture to validee and notifies the trainer.
func (s *FactureService) Valider(ctx context.Context, factureID string) (domain.Facture, error) {
	facture, err := s.updateStatut(ctx, factureID, domain.StatutFactureValidee, "")
	if err != nil {
		return domain.Facture{}, err
	}

	err = s.notifier.Notify(ctx, facture.FormateurID,
		domain.TypeNotificationFactureValidee,
		"Facture validée",
		fmt.Sprintf("Votre facture %s a été validée.", facture.Numero),
		map[string]string{"factureId": facture.ID})
	if err != nil {
		return domain.Facture{}, fmt.Errorf("s.notifier.Notify -> %w", err)
	}

	return facture, nil
}

// Payer stamps the payment date and notifies the trainer.
func (s *FactureService) Payer(ctx context.Context, factureID string) (domain.Facture, error) {
	facture, err := s.repo.FindByID(ctx, factureID)
	if err != nil {
		return domain.Facture{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	now := time.Now()
	facture.Statut = domain.StatutFacturePayee
	facture.DatePaiement = &now
	facture.UpdatedAt = now

	updated, err := s.repo.Update(ctx, facture)
	if err != nil {
		return domain.Facture{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	err = s.notifier.Notify(ctx, updated.FormateurID,
		domain.TypeNotificationFacturePayee,
		"Facture payée",
		fmt.Sprintf("Votre facture %s a été payée.", updated.Numero),
		map[string]string{"factureId": updated.ID})
	if err != nil {
		return domain.Facture{}, fmt.Errorf("s.notifier.Notify -> %w", err)
	}

	return s.enrich(ctx, updated), nil
}

// Refuser records the admin remarks and notifies the trainer.
func (s *FactureService) Refuser(ctx context.Context, factureID, remarques string) (domain.Facture, error) {
	facture, err := s.updateStatut(ctx, factureID, domain.StatutFactureRefusee, remarques)
	if err != nil {
		return domain.Facture{}, err
	}

	err = s.notifier.Notify(ctx, facture.FormateurID,
		domain.TypeNotificationFactureRefusee,
		"Facture refusée",
		fmt.Sprintf("Votre facture %s a été refusée: %s", facture.Numero, remarques),
		map[string]string{"factureId": facture.ID})
	if err != nil {
		return domain.Facture{}, fmt.Errorf("s.notifier.Notify -> %w", err)
	}

	return facture, nil
}

func (s *FactureService) updateStatut(ctx context.Context, factureID, statut, remarques string) (domain.Facture, error) {
	facture, err := s.repo.FindByID(ctx, factureID)
	if err != nil {
		return domain.Facture{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	facture.Statut = statut
	if remarques != "" {
		facture.RemarquesAdmin = remarques
	}
	facture.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, facture)
	if err != nil {
		return domain.Facture{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return s.enrich(ctx, updated), nil
}

// FactureStats are the counters above a trainer's facture list.
type FactureStats struct {
	Total        int     `json:"total"`
	Brouillons   int     `json:"brouillons"`
	Soumises     int     `json:"soumises"`
	Validees     int     `json:"validees"`
	Payees       int     `json:"payees"`
	Refusees     int     `json:"refusees"`
	MontantTotal float64 `json:"montantTotal"`
	MontantPaye  float64 `json:"montantPaye"`
}

func (s *FactureService) StatsByFormateur(ctx context.Context, formateurID string) (FactureStats, error) {
	factures, err := s.ListByFormateur(ctx, formateurID)
	if err != nil {
		return FactureStats{}, err
	}

	stats := FactureStats{Total: len(factures)}
	for _, f := range factures {
		switch f.Statut {
		case domain.StatutFactureBrouillon:
			stats.Brouillons++
		case domain.StatutFactureSoumise:
			stats.Soumises++
		case domain.StatutFactureValidee:
			stats.Validees++
		case domain.StatutFacturePayee:
			stats.Payees++
			stats.MontantPaye += f.Total
		case domain.StatutFactureRefusee:
			stats.Refusees++
		}
		stats.MontantTotal += f.Total
	}

	return stats, nil
}
