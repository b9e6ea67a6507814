package request

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validCreatePropositionRequest() CreatePropositionRequest {
	return CreatePropositionRequest{
		CoursID:        "cours-1",
		EcoleID:        "ecole-1",
		ClasseID:       "classe-1",
		DateDebut:      time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC),
		DateFin:        time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC),
		HeureDebut:     "09:00",
		HeureFin:       "12:00",
		Type:           "publique",
		Remuneration:   45,
		DateExpiration: time.Date(2025, time.October, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreatePropositionRequest_Validate(t *testing.T) {
	req := validCreatePropositionRequest()

	assert.NoError(t, req.Validate())
}

func TestCreatePropositionRequest_DirecteSansCible(t *testing.T) {
	req := validCreatePropositionRequest()
	req.Type = "directe"

	assert.ErrorIs(t, req.Validate(), errMissingFormateurCible)

	req.FormateurCibleID = "user-2"
	assert.NoError(t, req.Validate())
}

func TestCreatePropositionRequest_HeureInvalide(t *testing.T) {
	req := validCreatePropositionRequest()
	req.HeureDebut = "9h00"

	assert.Error(t, req.Validate())
}

func TestCreatePropositionRequest_TypeInconnu(t *testing.T) {
	req := validCreatePropositionRequest()
	req.Type = "ouverte"

	assert.Error(t, req.Validate())
}

func TestPostulerRequest_Validate(t *testing.T) {
	assert.NoError(t, (&PostulerRequest{}).Validate())
	assert.NoError(t, (&PostulerRequest{Message: "Disponible dès lundi"}).Validate())
	assert.Error(t, (&PostulerRequest{Message: strings.Repeat("a", 501)}).Validate())
}
