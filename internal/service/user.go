package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eduka/eduka-api/internal/domain"
)

var ErrAlerteIntervenantNotFound = errors.New("alerte intervenant not found")

type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByRole(ctx context.Context, role string) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) ListFormateurs(ctx context.Context) ([]domain.User, error) {
	formateurs, err := s.repo.FindByRole(ctx, domain.RoleFormateur)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByRole -> %w", err)
	}

	return formateurs, nil
}

// ProfileInput carries the fields a trainer can edit on their own profile.
type ProfileInput struct {
	Telephone    string
	Adresse      string
	Ville        string
	CodePostal   string
	TarifHoraire float64
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, input ProfileInput) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	user.Telephone = input.Telephone
	user.Adresse = input.Adresse
	user.Ville = input.Ville
	user.CodePostal = input.CodePostal
	user.TarifHoraire = input.TarifHoraire
	user.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *UserService) AjouterCompetence(ctx context.Context, userID, nom, niveau string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	user.Competences = append(user.Competences, domain.Competence{
		ID:     uuid.NewString(),
		Nom:    nom,
		Niveau: niveau,
	})
	user.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *UserService) SupprimerCompetence(ctx context.Context, userID, competenceID string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	kept := make([]domain.Competence, 0, len(user.Competences))
	for _, c := range user.Competences {
		if c.ID != competenceID {
			kept = append(kept, c)
		}
	}
	user.Competences = kept
	user.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// AjouterDocument records uploaded document metadata on the profile.
func (s *UserService) AjouterDocument(ctx context.Context, userID, nom, typ string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	user.Documents = append(user.Documents, domain.Document{
		ID:         uuid.NewString(),
		Nom:        nom,
		Type:       typ,
		URL:        "/uploads/" + nom,
		UploadedAt: time.Now(),
	})
	user.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *UserService) SupprimerDocument(ctx context.Context, userID, documentID string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	kept := make([]domain.Document, 0, len(user.Documents))
	for _, d := range user.Documents {
		if d.ID != documentID {
			kept = append(kept, d)
		}
	}
	user.Documents = kept
	user.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// AjouterAlerteIntervenant raises an admin alert on a trainer profile.
func (s *UserService) AjouterAlerteIntervenant(ctx context.Context, userID, typ, titre, description, adminID string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	user.Alertes = append(user.Alertes, domain.AlerteIntervenant{
		ID:          uuid.NewString(),
		Type:        typ,
		Titre:       titre,
		Description: description,
		CreatedAt:   time.Now(),
		CreatedBy:   adminID,
	})
	user.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *UserService) ResoudreAlerteIntervenant(ctx context.Context, userID, alerteID, adminID string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	// Work on a copy; the slice from FindByID shares its backing array with
	// the live snapshot, which is only ever swapped, never edited in place.
	alertes := make([]domain.AlerteIntervenant, len(user.Alertes))
	copy(alertes, user.Alertes)

	resolved := false
	now := time.Now()
	for i, a := range alertes {
		if a.ID == alerteID {
			alertes[i].Resolue = true
			alertes[i].ResolvedAt = &now
			alertes[i].ResolvedBy = adminID
			resolved = true
		}
	}
	if !resolved {
		return domain.User{}, ErrAlerteIntervenantNotFound
	}
	user.Alertes = alertes
	user.UpdatedAt = now

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
