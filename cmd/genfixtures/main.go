// Command genfixtures regenerates the JSON dataset under ./fixtures.
// The output is deterministic so the test expectations stay stable.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/eduka/eduka-api/internal/domain"
)

const outDir = "./fixtures"

func main() {
	rng := rand.New(rand.NewSource(42))

	write("users", users())
	write("cours", cours())
	write("ecoles", ecoles())
	write("classes", classes())
	write("missions", missions(rng))
	write("propositions", propositions(rng))
	write("factures", factures(rng))
	write("notifications", notifications())
	write("historique", historique())

	fmt.Println("fixtures generated")
}

func write(collection string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}

	path := filepath.Join(outDir, collection+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		panic(err)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func users() []domain.User {
	created := date(2025, time.September, 1)

	return []domain.User{
		{
			ID: "user-1", Email: "sophie.martin@eduka.fr", Nom: "Martin", Prenom: "Sophie",
			Telephone: "0612345671", Role: domain.RoleFormateur, Ville: "Paris", CodePostal: "75011",
			TarifHoraire: 45,
			Competences: []domain.Competence{
				{ID: "comp-1", Nom: "Mathématiques", Niveau: "expert"},
				{ID: "comp-2", Nom: "Physique", Niveau: "avance"},
			},
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "user-2", Email: "karim.benali@eduka.fr", Nom: "Benali", Prenom: "Karim",
			Telephone: "0612345672", Role: domain.RoleFormateur, Ville: "Lyon", CodePostal: "69003",
			TarifHoraire: 50,
			Competences: []domain.Competence{
				{ID: "comp-3", Nom: "Informatique", Niveau: "expert"},
			},
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "user-3", Email: "claire.dubois@eduka.fr", Nom: "Dubois", Prenom: "Claire",
			Telephone: "0612345673", Role: domain.RoleFormateur, Ville: "Marseille", CodePostal: "13006",
			TarifHoraire: 40,
			Competences: []domain.Competence{
				{ID: "comp-4", Nom: "Français", Niveau: "expert"},
				{ID: "comp-5", Nom: "Histoire", Niveau: "intermediaire"},
			},
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "admin-1", Email: "admin@eduka.fr", Nom: "Royer", Prenom: "Nathalie",
			Telephone: "0612345674", Role: domain.RoleAdmin,
			CreatedAt: created, UpdatedAt: created,
		},
	}
}

func cours() []domain.Cours {
	return []domain.Cours{
		{ID: "cours-1", Nom: "Mathématiques", Matiere: "Mathématiques", Niveau: "Collège", Description: "Remise à niveau et approfondissement"},
		{ID: "cours-2", Nom: "Physique-Chimie", Matiere: "Physique", Niveau: "Lycée", Description: "Préparation au baccalauréat"},
		{ID: "cours-3", Nom: "Initiation à la programmation", Matiere: "Informatique", Niveau: "Lycée", Description: "Python et algorithmique"},
		{ID: "cours-4", Nom: "Français", Matiere: "Français", Niveau: "Primaire", Description: "Lecture et expression écrite"},
		{ID: "cours-5", Nom: "Sciences de l'ingénieur", Matiere: "Technologie", Niveau: "Lycée", Description: "Filière STI2D"},
	}
}

func ecoles() []domain.Ecole {
	return []domain.Ecole{
		{ID: "ecole-1", Nom: "Collège Jean Moulin", Adresse: "12 Rue des Lilas", Ville: "Paris", CodePostal: "75011", Telephone: "0145678901"},
		{ID: "ecole-2", Nom: "Lycée Victor Hugo", Adresse: "3 Avenue de la République", Ville: "Lyon", CodePostal: "69003", Telephone: "0445678902"},
		{ID: "ecole-3", Nom: "École Primaire Les Tilleuls", Adresse: "8 Place du Marché", Ville: "Marseille", CodePostal: "13006", Telephone: "0491678903"},
		{ID: "ecole-4", Nom: "Lycée Technique Diderot", Adresse: "27 Boulevard Voltaire", Ville: "Paris", CodePostal: "75012", Telephone: "0145678904"},
	}
}

func classes() []domain.Classe {
	return []domain.Classe{
		{ID: "classe-1", Nom: "3èmeA", Niveau: "3ème", NombreEleves: 28, EcoleID: "ecole-1"},
		{ID: "classe-2", Nom: "3èmeB", Niveau: "3ème", NombreEleves: 25, EcoleID: "ecole-1"},
		{ID: "classe-3", Nom: "TerminaleS1", Niveau: "Terminale S", NombreEleves: 30, EcoleID: "ecole-2"},
		{ID: "classe-4", Nom: "TerminaleS2", Niveau: "Terminale S", NombreEleves: 32, EcoleID: "ecole-2"},
		{ID: "classe-5", Nom: "CE2A", Niveau: "CE2", NombreEleves: 22, EcoleID: "ecole-3"},
		{ID: "classe-6", Nom: "1èreSTI2D", Niveau: "1ère STI2D", NombreEleves: 26, EcoleID: "ecole-4"},
	}
}

func missions(rng *rand.Rand) []domain.Mission {
	statuts := []string{domain.StatutMissionPlanifiee, domain.StatutMissionEnCours, domain.StatutMissionTerminee}
	debuts := []string{"08:00", "10:00", "14:00"}
	fins := []string{"10:00", "12:00", "16:00", "18:00"}
	start := date(2025, time.November, 1)
	now := date(2025, time.October, 15)

	missions := make([]domain.Mission, 15)
	for i := range missions {
		day := start.AddDate(0, 0, rng.Intn(60))
		missions[i] = domain.Mission{
			ID:            fmt.Sprintf("mission-%d", i+1),
			CoursID:       fmt.Sprintf("cours-%d", i%5+1),
			EcoleID:       fmt.Sprintf("ecole-%d", i%4+1),
			ClasseID:      fmt.Sprintf("classe-%d", i%6+1),
			DateDebut:     day,
			DateFin:       day,
			HeureDebut:    debuts[rng.Intn(len(debuts))],
			HeureFin:      fins[rng.Intn(len(fins))],
			FormateurID:   fmt.Sprintf("user-%d", i%3+1),
			Statut:        statuts[rng.Intn(len(statuts))],
			FichiersNotes: []domain.FichierNote{},
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	return missions
}

func propositions(rng *rand.Rand) []domain.Proposition {
	statuts := []string{
		domain.StatutPropositionEnAttente,
		domain.StatutPropositionAcceptee,
		domain.StatutPropositionRefusee,
	}
	remunerations := []float64{120, 135, 150}
	start := date(2025, time.December, 1)
	now := date(2025, time.October, 15)

	propositions := make([]domain.Proposition, 10)
	for i := range propositions {
		day := start.AddDate(0, 0, rng.Intn(30))
		p := domain.Proposition{
			ID:             fmt.Sprintf("prop-%d", i+1),
			CoursID:        fmt.Sprintf("cours-%d", i%5+1),
			EcoleID:        fmt.Sprintf("ecole-%d", i%4+1),
			ClasseID:       fmt.Sprintf("classe-%d", i%6+1),
			DateDebut:      day,
			DateFin:        day,
			HeureDebut:     "09:00",
			HeureFin:       "12:00",
			Type:           domain.TypePropositionPublique,
			Statut:         statuts[rng.Intn(len(statuts))],
			Description:    "Mission pour enseigner le cours dans le cadre du programme scolaire",
			Remuneration:   remunerations[rng.Intn(len(remunerations))],
			DateExpiration: day.AddDate(0, 0, 7),
			CreatedBy:      "admin-1",
			Candidatures:   []domain.Candidature{},
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if i >= 7 {
			p.Type = domain.TypePropositionDirecte
			p.FormateurCibleID = fmt.Sprintf("user-%d", i%3+1)
		}
		propositions[i] = p
	}

	return propositions
}

func factures(rng *rand.Rand) []domain.Facture {
	statuts := []string{
		domain.StatutFactureSoumise,
		domain.StatutFactureValidee,
		domain.StatutFacturePayee,
	}

	factures := make([]domain.Facture, 8)
	for i := range factures {
		emission := date(2025, time.November, 1).AddDate(0, 0, i*5)
		f := domain.Facture{
			ID:          fmt.Sprintf("facture-%d", i+1),
			Numero:      fmt.Sprintf("FAC-2025-%03d", i+1),
			FormateurID: fmt.Sprintf("user-%d", i%3+1),
			Lignes: []domain.LigneFacture{
				{
					ID:          fmt.Sprintf("ligne-%d-1", i),
					Description: "Cours de mathématiques - Collège Jean Moulin",
					MissionID:   fmt.Sprintf("mission-%d", i+1),
					Quantite:    3,
					TauxHoraire: 45,
				},
			},
			DateEmission: emission,
			DateEcheance: emission.AddDate(0, 0, 30),
			Statut:       statuts[rng.Intn(len(statuts))],
			CreatedAt:    emission,
			UpdatedAt:    emission,
		}
		f.CalculerTotaux()
		factures[i] = f
	}

	return factures
}

func notifications() []domain.Notification {
	types := []string{
		domain.TypeNotificationNouvelleProposition,
		domain.TypeNotificationPropositionAcceptee,
		domain.TypeNotificationMissionConfirmee,
		domain.TypeNotificationFactureValidee,
	}
	base := date(2025, time.October, 15)

	notifications := make([]domain.Notification, 12)
	for i := range notifications {
		notifications[i] = domain.Notification{
			ID:        fmt.Sprintf("notif-%d", i+1),
			UserID:    fmt.Sprintf("user-%d", i%3+1),
			Type:      types[i%len(types)],
			Titre:     fmt.Sprintf("Notification %d", i+1),
			Message:   fmt.Sprintf("Message de test pour la notification %d", i+1),
			Lien:      fmt.Sprintf("/missions/mission-%d", i+1),
			Lu:        i > 5,
			Metadata:  map[string]string{},
			CreatedAt: base.Add(-time.Duration(i*6) * time.Hour),
		}
	}

	return notifications
}

func historique() []domain.HistoriqueEntry {
	base := date(2025, time.October, 10)

	return []domain.HistoriqueEntry{
		{
			ID: "hist-1", UserID: "user-1", Type: domain.TypeActionPropositionSoumise,
			Description: "Candidature envoyée", Metadata: map[string]string{"propositionId": "prop-1"},
			CreatedAt: base,
		},
		{
			ID: "hist-2", UserID: "user-1", Type: domain.TypeActionFactureCreee,
			Description: "Facture FAC-2025-001 créée", Metadata: map[string]string{"factureId": "facture-1"},
			CreatedAt: base.AddDate(0, 0, 2),
		},
		{
			ID: "hist-3", UserID: "user-2", Type: domain.TypeActionMissionTerminee,
			Description: "Mission terminée", Metadata: map[string]string{"missionId": "mission-2"},
			CreatedAt: base.AddDate(0, 0, 3),
		},
	}
}
