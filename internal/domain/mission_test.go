package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMission_DureeHeuresLegacy(t *testing.T) {
	m := Mission{HeureDebut: "08:00", HeureFin: "12:00"}

	assert.Equal(t, 4.0, m.DureeHeures())
}

func TestMission_DureeHeuresSeances(t *testing.T) {
	m := Mission{
		// The legacy pair must be ignored when seances are present.
		HeureDebut: "08:00",
		HeureFin:   "18:00",
		Seances: []Seance{
			{DureeHeures: 2},
			{DureeHeures: 3.5},
		},
	}

	assert.Equal(t, 5.5, m.DureeHeures())
}

func TestMission_DureeHeuresInvalidHours(t *testing.T) {
	m := Mission{HeureDebut: "huit heures", HeureFin: "10:00"}

	assert.Equal(t, 0.0, m.DureeHeures())
}

func TestMission_DebutFin(t *testing.T) {
	d1 := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC)

	legacy := Mission{DateDebut: d1, DateFin: d2}
	assert.Equal(t, d1, legacy.Debut())
	assert.Equal(t, d2, legacy.Fin())

	withSeances := Mission{
		DateDebut: d1.AddDate(0, 1, 0),
		Seances: []Seance{
			{Date: d1},
			{Date: d2},
		},
	}
	assert.Equal(t, d1, withSeances.Debut())
	assert.Equal(t, d2, withSeances.Fin())
}

func TestProposition_VisiblePar(t *testing.T) {
	publique := Proposition{Type: TypePropositionPublique}
	assert.True(t, publique.VisiblePar("user-1"))

	directe := Proposition{Type: TypePropositionDirecte, FormateurCibleID: "user-2"}
	assert.False(t, directe.VisiblePar("user-1"))
	assert.True(t, directe.VisiblePar("user-2"))
}

func TestUser_NomComplet(t *testing.T) {
	u := User{Nom: "Martin", Prenom: "Sophie"}
	assert.Equal(t, "Sophie Martin", u.NomComplet())

	sansPrenom := User{Nom: "Martin"}
	assert.Equal(t, "Martin", sansPrenom.NomComplet())
}
