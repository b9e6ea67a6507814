package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFacture_CalculerTotaux(t *testing.T) {
	f := Facture{
		Lignes: []LigneFacture{
			{Quantite: 3, TauxHoraire: 45, Montant: 999}, // stale amount must be recomputed
		},
	}

	f.CalculerTotaux()

	assert.Equal(t, 135.0, f.Lignes[0].Montant)
	assert.Equal(t, 135.0, f.SousTotal)
	assert.Equal(t, 27.0, f.Taxe)
	assert.Equal(t, 162.0, f.Total)
}

func TestFacture_CalculerTotauxPlusieursLignes(t *testing.T) {
	f := Facture{
		Lignes: []LigneFacture{
			{Quantite: 2, TauxHoraire: 50},
			{Quantite: 1.5, TauxHoraire: 40},
		},
	}

	f.CalculerTotaux()

	assert.Equal(t, 100.0, f.Lignes[0].Montant)
	assert.Equal(t, 60.0, f.Lignes[1].Montant)
	assert.Equal(t, 160.0, f.SousTotal)
	assert.Equal(t, 32.0, f.Taxe)
	assert.Equal(t, 192.0, f.Total)
}

func TestFacture_EstEnRetard(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	echeance := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	late := Facture{Statut: StatutFactureSoumise, DateEcheance: echeance}
	assert.True(t, late.EstEnRetard(now))

	paid := Facture{Statut: StatutFacturePayee, DateEcheance: echeance}
	assert.False(t, paid.EstEnRetard(now))

	upcoming := Facture{Statut: StatutFactureSoumise, DateEcheance: now.AddDate(0, 0, 5)}
	assert.False(t, upcoming.EstEnRetard(now))
}
