package service

import (
	"context"
	"sort"

	"github.com/eduka/eduka-api/internal/domain"
)

// DashboardService derives the admin aggregates from the other services'
// enriched snapshots; it owns no state of its own.
type DashboardService struct {
	missions     *MissionService
	propositions *PropositionService
	factures     *FactureService
	users        UserRepository
	refs         ReferentielReader
}

func NewDashboardService(missions *MissionService, propositions *PropositionService, factures *FactureService, users UserRepository, refs ReferentielReader) *DashboardService {
	return &DashboardService{
		missions:     missions,
		propositions: propositions,
		factures:     factures,
		users:        users,
		refs:         refs,
	}
}

type DashboardStats struct {
	MissionsTotal         int     `json:"missionsTotal"`
	MissionsEnCours       int     `json:"missionsEnCours"`
	MissionsTerminees     int     `json:"missionsTerminees"`
	PropositionsTotal     int     `json:"propositionsTotal"`
	PropositionsEnAttente int     `json:"propositionsEnAttente"`
	FormateursActifs      int     `json:"formateursActifs"`
	FacturesPayees        int     `json:"facturesPayees"`
	ChiffreAffaires       float64 `json:"chiffreAffaires"`
}

func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	missions, err := s.missions.ListEnriched(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	propositions, err := s.propositions.ListEnriched(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	factures, err := s.factures.ListAll(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	formateurs, err := s.users.FindByRole(ctx, domain.RoleFormateur)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		MissionsTotal:     len(missions),
		PropositionsTotal: len(propositions),
	}

	activeTrainers := make(map[string]struct{})
	for _, m := range missions {
		switch m.Statut {
		case domain.StatutMissionEnCours:
			stats.MissionsEnCours++
		case domain.StatutMissionTerminee:
			stats.MissionsTerminees++
		}
		activeTrainers[m.FormateurID] = struct{}{}
	}
	for _, f := range formateurs {
		if _, ok := activeTrainers[f.ID]; ok {
			stats.FormateursActifs++
		}
	}
	for _, p := range propositions {
		if p.Statut == domain.StatutPropositionEnAttente {
			stats.PropositionsEnAttente++
		}
	}
	for _, f := range factures {
		if f.Statut == domain.StatutFacturePayee {
			stats.FacturesPayees++
			stats.ChiffreAffaires += f.Total
		}
	}

	return stats, nil
}

func (s *DashboardService) RecentMissions(ctx context.Context, limit int) ([]domain.Mission, error) {
	missions, err := s.missions.ListEnriched(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(missions, func(i, j int) bool {
		return missions[i].CreatedAt.After(missions[j].CreatedAt)
	})
	if len(missions) > limit {
		missions = missions[:limit]
	}

	return missions, nil
}

func (s *DashboardService) RecentPropositions(ctx context.Context, limit int) ([]domain.Proposition, error) {
	propositions, err := s.propositions.ListEnriched(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(propositions, func(i, j int) bool {
		return propositions[i].CreatedAt.After(propositions[j].CreatedAt)
	})
	if len(propositions) > limit {
		propositions = propositions[:limit]
	}

	return propositions, nil
}

// EcoleStats is one school with its mission aggregates.
type EcoleStats struct {
	domain.Ecole
	NombreClasses int `json:"nombreClasses"`
}

// EcolesAvecStats resolves the per-school counters the admin schools page
// shows; revenue sums the paid facture lines tied to the school's missions.
func (s *DashboardService) EcolesAvecStats(ctx context.Context) ([]EcoleStats, error) {
	ecoles, err := s.refs.FindAllEcoles(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := s.refs.FindAllClasses(ctx)
	if err != nil {
		return nil, err
	}
	missions, err := s.missions.ListEnriched(ctx)
	if err != nil {
		return nil, err
	}
	factures, err := s.factures.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	missionEcole := make(map[string]string, len(missions))
	stats := make([]EcoleStats, len(ecoles))
	for i, e := range ecoles {
		stats[i] = EcoleStats{Ecole: e}
	}
	index := make(map[string]*EcoleStats, len(ecoles))
	for i := range stats {
		index[stats[i].ID] = &stats[i]
	}

	for _, c := range classes {
		if st, ok := index[c.EcoleID]; ok {
			st.NombreClasses++
		}
	}
	for _, m := range missions {
		missionEcole[m.ID] = m.EcoleID
		st, ok := index[m.EcoleID]
		if !ok {
			continue
		}
		st.NombreMissionsTotal++
		if m.Statut == domain.StatutMissionEnCours {
			st.NombreMissionsEnCours++
		}
	}
	for _, f := range factures {
		if f.Statut != domain.StatutFacturePayee {
			continue
		}
		for _, l := range f.Lignes {
			ecoleID, ok := missionEcole[l.MissionID]
			if !ok {
				continue
			}
			if st, ok := index[ecoleID]; ok {
				st.ChiffreAffaires += l.Montant
			}
		}
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].NombreMissionsTotal > stats[j].NombreMissionsTotal
	})

	return stats, nil
}

// FormateurStats is one trainer with mission-derived aggregates.
type FormateurStats struct {
	domain.User
	MissionsEnCours int     `json:"missionsEnCours"`
	HeuresTotales   float64 `json:"heuresTotales"`
}

func (s *DashboardService) FormateursAvecStats(ctx context.Context) ([]FormateurStats, error) {
	formateurs, err := s.users.FindByRole(ctx, domain.RoleFormateur)
	if err != nil {
		return nil, err
	}
	missions, err := s.missions.ListEnriched(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]FormateurStats, len(formateurs))
	index := make(map[string]*FormateurStats, len(formateurs))
	for i, f := range formateurs {
		stats[i] = FormateurStats{User: f}
		index[f.ID] = &stats[i]
	}

	for _, m := range missions {
		st, ok := index[m.FormateurID]
		if !ok {
			continue
		}
		st.NombreMissions++
		st.HeuresTotales += m.DureeHeures()
		if m.Statut == domain.StatutMissionEnCours {
			st.MissionsEnCours++
		}
	}

	return stats, nil
}
