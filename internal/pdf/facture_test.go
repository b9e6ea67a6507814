package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduka/eduka-api/internal/domain"
)

func TestRenderFacture(t *testing.T) {
	facture := domain.Facture{
		ID:           "facture-1",
		Numero:       "FAC-2025-001",
		FormateurID:  "user-1",
		FormateurNom: "Sophie Martin",
		Lignes: []domain.LigneFacture{
			{Description: "Cours de mathématiques - Terminale S1", Quantite: 3, TauxHoraire: 45, Montant: 135},
		},
		SousTotal:    135,
		Taxe:         27,
		Total:        162,
		DateEmission: time.Date(2025, time.October, 12, 0, 0, 0, 0, time.UTC),
		DateEcheance: time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC),
		Statut:       domain.StatutFactureSoumise,
	}

	data, err := RenderFacture(facture)

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderFacture_SansLignes(t *testing.T) {
	data, err := RenderFacture(domain.Facture{Numero: "FAC-2025-002"})

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
