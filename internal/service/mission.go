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
	ErrMissionNotFound     = repository.ErrMissionNotFound
	ErrMissionDejaDemarree = errors.New("mission already started")
)

type MissionRepository interface {
	FindAll(ctx context.Context) ([]domain.Mission, error)
	FindByID(ctx context.Context, id string) (domain.Mission, error)
	Update(ctx context.Context, mission domain.Mission) (domain.Mission, error)
	Create(ctx context.Context, mission domain.Mission) (domain.Mission, error)
}

type MissionUserReader interface {
	FindAll(ctx context.Context) ([]domain.User, error)
}

type MissionNotifier interface {
	NotifyAdmins(ctx context.Context, typ, titre, message string, metadata map[string]string) error
}

type MissionService struct {
	repo     MissionRepository
	refs     ReferentielReader
	users    MissionUserReader
	notifier MissionNotifier
}

func NewMissionService(repo MissionRepository, refs ReferentielReader, users MissionUserReader, notifier MissionNotifier) *MissionService {
	return &MissionService{
		repo:     repo,
		refs:     refs,
		users:    users,
		notifier: notifier,
	}
}

// ListEnriched joins raw missions against the reference collections. The
// join waits for every reference collection to be loaded, and a mission
// whose cours, ecole or classe cannot be resolved is dropped rather than
// returned half-populated.
func (s *MissionService) ListEnriched(ctx context.Context) ([]domain.Mission, error) {
	missions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	ref, err := loadReferentiel(ctx, s.refs)
	if err != nil {
		return nil, err
	}
	if !ref.complete() {
		return []domain.Mission{}, nil
	}

	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.users.FindAll -> %w", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.NomComplet()
	}

	enriched := make([]domain.Mission, 0, len(missions))
	for _, m := range missions {
		cours, ecole, classe, ok := ref.resolve(m.CoursID, m.EcoleID, m.ClasseID)
		if !ok {
			continue
		}

		m.Cours = cours
		m.Ecole = ecole
		m.Classe = classe
		m.FormateurNom = names[m.FormateurID]
		enriched = append(enriched, m)
	}

	return enriched, nil
}

func (s *MissionService) ListByFormateur(ctx context.Context, formateurID string) ([]domain.Mission, error) {
	missions, err := s.ListEnriched(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Mission, 0, len(missions))
	for _, m := range missions {
		if m.FormateurID == formateurID {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

func (s *MissionService) GetByID(ctx context.Context, id string) (domain.Mission, error) {
	missions, err := s.ListEnriched(ctx)
	if err != nil {
		return domain.Mission{}, err
	}

	for _, m := range missions {
		if m.ID == id {
			return m, nil
		}
	}

	return domain.Mission{}, ErrMissionNotFound
}

// CalendarEvent is the calendar view of one mission.
type CalendarEvent struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Start   time.Time      `json:"start"`
	End     time.Time      `json:"end"`
	Color   string         `json:"backgroundColor"`
	Mission domain.Mission `json:"mission"`
}

func (s *MissionService) CalendarEvents(ctx context.Context, formateurID string) ([]CalendarEvent, error) {
	var missions []domain.Mission
	var err error
	if formateurID != "" {
		missions, err = s.ListByFormateur(ctx, formateurID)
	} else {
		missions, err = s.ListEnriched(ctx)
	}
	if err != nil {
		return nil, err
	}

	events := make([]CalendarEvent, 0, len(missions))
	for _, m := range missions {
		title := "Cours"
		if m.Cours != nil {
			title = m.Cours.Nom
		}

		events = append(events, CalendarEvent{
			ID:      m.ID,
			Title:   title,
			Start:   m.Debut(),
			End:     m.Fin(),
			Color:   couleurStatut(m.Statut),
			Mission: m,
		})
	}

	return events, nil
}

func couleurStatut(statut string) string {
	switch statut {
	case domain.StatutMissionPlanifiee:
		return "#FF9966"
	case domain.StatutMissionEnCours:
		return "#3b82f6"
	case domain.StatutMissionTerminee:
		return "#10b981"
	case domain.StatutMissionAnnulee:
		return "#ef4444"
	default:
		return "#6b7280"
	}
}

// IncidentInput is the optional incident reported when starting a mission.
type IncidentInput struct {
	Type        string
	Description string
}

// Demarrer flags the mission as started, optionally attaching an incident
// and alerting the admins about it.
func (s *MissionService) Demarrer(ctx context.Context, missionID, userID string, incident *IncidentInput) (domain.Mission, error) {
	mission, err := s.repo.FindByID(ctx, missionID)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if mission.MissionDemarree {
		return domain.Mission{}, ErrMissionDejaDemarree
	}

	now := time.Now()
	mission.MissionDemarree = true
	mission.DateDemarrage = &now
	mission.Statut = domain.StatutMissionEnCours
	mission.UpdatedAt = now

	if incident != nil {
		mission.Incidents = append(mission.Incidents, domain.Incident{
			ID:          uuid.NewString(),
			Type:        incident.Type,
			Description: incident.Description,
			CreatedAt:   now,
			CreatedBy:   userID,
		})
	}

	updated, err := s.repo.Update(ctx, mission)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	if incident != nil {
		err = s.notifier.NotifyAdmins(ctx,
			domain.TypeNotificationIncidentSignale,
			"Incident signalé",
			fmt.Sprintf("%s: %s", incident.Type, incident.Description),
			map[string]string{"missionId": mission.ID},
		)
		if err != nil {
			return domain.Mission{}, fmt.Errorf("s.notifier.NotifyAdmins -> %w", err)
		}
	}

	return updated, nil
}

// Terminer marks the mission as completed.
func (s *MissionService) Terminer(ctx context.Context, missionID string) (domain.Mission, error) {
	return s.updateStatut(ctx, missionID, domain.StatutMissionTerminee)
}

func (s *MissionService) Annuler(ctx context.Context, missionID string) (domain.Mission, error) {
	return s.updateStatut(ctx, missionID, domain.StatutMissionAnnulee)
}

func (s *MissionService) updateStatut(ctx context.Context, missionID, statut string) (domain.Mission, error) {
	mission, err := s.repo.FindByID(ctx, missionID)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	mission.Statut = statut
	mission.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, mission)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// AjouterFichierNote records the metadata of an uploaded note file.
func (s *MissionService) AjouterFichierNote(ctx context.Context, missionID, nom, userID string) (domain.Mission, error) {
	mission, err := s.repo.FindByID(ctx, missionID)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	mission.FichiersNotes = append(mission.FichiersNotes, domain.FichierNote{
		ID:         uuid.NewString(),
		Nom:        nom,
		URL:        "/uploads/" + nom,
		UploadedAt: time.Now(),
		UploadedBy: userID,
	})
	mission.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, mission)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// UpdateStatutSuivi updates the admin follow-up status.
func (s *MissionService) UpdateStatutSuivi(ctx context.Context, missionID, statutSuivi string) (domain.Mission, error) {
	mission, err := s.repo.FindByID(ctx, missionID)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	mission.StatutSuivi = statutSuivi
	mission.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, mission)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// AjouterAlerte attaches an admin follow-up alert to the mission.
func (s *MissionService) AjouterAlerte(ctx context.Context, missionID, typ, titre, description, adminID string) (domain.Mission, error) {
	mission, err := s.repo.FindByID(ctx, missionID)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	mission.Alertes = append(mission.Alertes, domain.Alerte{
		ID:          uuid.NewString(),
		Type:        typ,
		Titre:       titre,
		Description: description,
		CreatedAt:   time.Now(),
		CreatedBy:   adminID,
	})
	mission.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, mission)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

var ErrAlerteNotFound = errors.New("alerte not found")

func (s *MissionService) ResoudreAlerte(ctx context.Context, missionID, alerteID, adminID string) (domain.Mission, error) {
	mission, err := s.repo.FindByID(ctx, missionID)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	// Work on a copy; the slice from FindByID shares its backing array with
	// the live snapshot, which is only ever swapped, never edited in place.
	alertes := make([]domain.Alerte, len(mission.Alertes))
	copy(alertes, mission.Alertes)

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
		return domain.Mission{}, ErrAlerteNotFound
	}
	mission.Alertes = alertes
	mission.UpdatedAt = now

	updated, err := s.repo.Update(ctx, mission)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// MissionStats are the per-status counts shown on the missions pages.
type MissionStats struct {
	Total              int `json:"total"`
	Planifiees         int `json:"planifiees"`
	EnCours            int `json:"enCours"`
	Terminees          int `json:"terminees"`
	Annulees           int `json:"annulees"`
	AlertesNonResolues int `json:"alertesNonResolues"`
}

func (s *MissionService) Stats(ctx context.Context) (MissionStats, error) {
	missions, err := s.ListEnriched(ctx)
	if err != nil {
		return MissionStats{}, err
	}

	stats := MissionStats{Total: len(missions)}
	for _, m := range missions {
		switch m.Statut {
		case domain.StatutMissionPlanifiee:
			stats.Planifiees++
		case domain.StatutMissionEnCours:
			stats.EnCours++
		case domain.StatutMissionTerminee:
			stats.Terminees++
		case domain.StatutMissionAnnulee:
			stats.Annulees++
		}
		for _, a := range m.Alertes {
			if !a.Resolue {
				stats.AlertesNonResolues++
			}
		}
	}

	return stats, nil
}

// AnnualStats feeds the history page: completed missions for one trainer and
// one year, with totals and the busiest month.
type AnnualStats struct {
	Annee          int              `json:"annee"`
	Missions       []domain.Mission `json:"missions"`
	NombreMissions int              `json:"nombreMissions"`
	NombreHeures   float64          `json:"nombreHeures"`
	MoisPlusActif  string           `json:"moisPlusActif"`
	AnneesDispo    []int            `json:"anneesDisponibles"`
}

var moisFrancais = []string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

func (s *MissionService) HistoriqueAnnuel(ctx context.Context, formateurID string, annee int) (AnnualStats, error) {
	missions, err := s.ListByFormateur(ctx, formateurID)
	if err != nil {
		return AnnualStats{}, err
	}

	completed := make([]domain.Mission, 0, len(missions))
	yearSet := make(map[int]struct{})
	for _, m := range missions {
		if m.Statut != domain.StatutMissionTerminee {
			continue
		}
		yearSet[m.Debut().Year()] = struct{}{}
		if m.Debut().Year() == annee {
			completed = append(completed, m)
		}
	}

	sort.Slice(completed, func(i, j int) bool {
		return completed[i].Debut().After(completed[j].Debut())
	})

	stats := AnnualStats{
		Annee:          annee,
		Missions:       completed,
		NombreMissions: len(completed),
	}

	perMonth := make(map[int]int)
	for _, m := range completed {
		stats.NombreHeures += m.DureeHeures()
		perMonth[int(m.Debut().Month())]++
	}

	best, bestCount := 0, 0
	for month, count := range perMonth {
		if count > bestCount || (count == bestCount && month < best) {
			best, bestCount = month, count
		}
	}
	if best > 0 {
		stats.MoisPlusActif = moisFrancais[best-1]
	}

	for y := range yearSet {
		stats.AnneesDispo = append(stats.AnneesDispo, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(stats.AnneesDispo)))

	return stats, nil
}
