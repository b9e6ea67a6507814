package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduka/eduka-api/internal/domain"
)

func newDashboard(missions *fakeMissionRepo, propositions *fakePropositionRepo, factures *fakeFactureRepo, users *fakeUserRepo) *DashboardService {
	refs := completeRefs()
	missionSvc := NewMissionService(missions, refs, users, &fakeNotifier{})
	propositionSvc := NewPropositionService(propositions, refs, users)
	factureSvc := NewFactureService(factures, users, &fakeNotifier{})

	return NewDashboardService(missionSvc, propositionSvc, factureSvc, users, refs)
}

func TestDashboardService_Stats(t *testing.T) {
	missions := &fakeMissionRepo{missions: []domain.Mission{
		{ID: "mission-1", CoursID: "cours-1", EcoleID: "ecole-1", ClasseID: "classe-1", FormateurID: "user-1", Statut: domain.StatutMissionEnCours},
		{ID: "mission-2", CoursID: "cours-1", EcoleID: "ecole-1", ClasseID: "classe-1", FormateurID: "user-2", Statut: domain.StatutMissionTerminee},
	}}
	propositions := &fakePropositionRepo{propositions: []domain.Proposition{
		{ID: "prop-1", CoursID: "cours-1", EcoleID: "ecole-1", ClasseID: "classe-1", Statut: domain.StatutPropositionEnAttente},
	}}
	factures := &fakeFactureRepo{factures: []domain.Facture{
		{ID: "facture-1", Statut: domain.StatutFacturePayee, Total: 162},
		{ID: "facture-2", Statut: domain.StatutFactureSoumise, Total: 100},
	}}
	users := &fakeUserRepo{users: []domain.User{
		{ID: "user-1", Role: domain.RoleFormateur},
		{ID: "user-2", Role: domain.RoleFormateur},
		{ID: "user-3", Role: domain.RoleFormateur}, // no mission, not active
		{ID: "admin-1", Role: domain.RoleAdmin},
	}}

	stats, err := newDashboard(missions, propositions, factures, users).Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.MissionsTotal)
	assert.Equal(t, 1, stats.MissionsEnCours)
	assert.Equal(t, 1, stats.MissionsTerminees)
	assert.Equal(t, 1, stats.PropositionsTotal)
	assert.Equal(t, 1, stats.PropositionsEnAttente)
	assert.Equal(t, 2, stats.FormateursActifs)
	assert.Equal(t, 1, stats.FacturesPayees)
	assert.Equal(t, 162.0, stats.ChiffreAffaires)
}

func TestDashboardService_RecentMissions(t *testing.T) {
	base := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	missions := &fakeMissionRepo{missions: []domain.Mission{
		{ID: "mission-1", CoursID: "cours-1", EcoleID: "ecole-1", ClasseID: "classe-1", CreatedAt: base},
		{ID: "mission-2", CoursID: "cours-1", EcoleID: "ecole-1", ClasseID: "classe-1", CreatedAt: base.AddDate(0, 0, 2)},
		{ID: "mission-3", CoursID: "cours-1", EcoleID: "ecole-1", ClasseID: "classe-1", CreatedAt: base.AddDate(0, 0, 1)},
	}}
	dashboard := newDashboard(missions, &fakePropositionRepo{}, &fakeFactureRepo{}, &fakeUserRepo{})

	recent, err := dashboard.RecentMissions(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "mission-2", recent[0].ID)
	assert.Equal(t, "mission-3", recent[1].ID)
}

func TestDashboardService_EcolesAvecStats(t *testing.T) {
	missions := &fakeMissionRepo{missions: []domain.Mission{
		{ID: "mission-1", CoursID: "cours-1", EcoleID: "ecole-1", ClasseID: "classe-1", Statut: domain.StatutMissionEnCours},
		{ID: "mission-2", CoursID: "cours-1", EcoleID: "ecole-1", ClasseID: "classe-1", Statut: domain.StatutMissionTerminee},
	}}
	factures := &fakeFactureRepo{factures: []domain.Facture{
		{ID: "facture-1", Statut: domain.StatutFacturePayee, Lignes: []domain.LigneFacture{
			{MissionID: "mission-2", Montant: 135},
		}},
		{ID: "facture-2", Statut: domain.StatutFactureBrouillon, Lignes: []domain.LigneFacture{
			{MissionID: "mission-1", Montant: 999},
		}},
	}}
	dashboard := newDashboard(missions, &fakePropositionRepo{}, factures, &fakeUserRepo{})

	stats, err := dashboard.EcolesAvecStats(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "ecole-1", stats[0].ID)
	assert.Equal(t, 1, stats[0].NombreClasses)
	assert.Equal(t, 2, stats[0].NombreMissionsTotal)
	assert.Equal(t, 1, stats[0].NombreMissionsEnCours)

	// Only paid facture lines count towards revenue.
	assert.Equal(t, 135.0, stats[0].ChiffreAffaires)
}

func TestDashboardService_FormateursAvecStats(t *testing.T) {
	missions := &fakeMissionRepo{missions: []domain.Mission{
		{ID: "mission-1", CoursID: "cours-1", EcoleID: "ecole-1", ClasseID: "classe-1", FormateurID: "user-1", Statut: domain.StatutMissionEnCours, HeureDebut: "09:00", HeureFin: "12:00"},
		{ID: "mission-2", CoursID: "cours-1", EcoleID: "ecole-1", ClasseID: "classe-1", FormateurID: "user-1", Statut: domain.StatutMissionTerminee, HeureDebut: "14:00", HeureFin: "16:00"},
	}}
	users := &fakeUserRepo{users: []domain.User{
		{ID: "user-1", Role: domain.RoleFormateur},
		{ID: "user-2", Role: domain.RoleFormateur},
	}}
	dashboard := newDashboard(missions, &fakePropositionRepo{}, &fakeFactureRepo{}, users)

	stats, err := dashboard.FormateursAvecStats(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, 2, stats[0].NombreMissions)
	assert.Equal(t, 1, stats[0].MissionsEnCours)
	assert.Equal(t, 5.0, stats[0].HeuresTotales)
	assert.Zero(t, stats[1].NombreMissions)
}
