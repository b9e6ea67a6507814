package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCreateFactureRequest() CreateFactureRequest {
	return CreateFactureRequest{
		Lignes: []LigneFactureRequest{
			{Description: "Cours de mathématiques", MissionID: "mission-1", Quantite: 3, TauxHoraire: 45},
		},
	}
}

func TestCreateFactureRequest_Validate(t *testing.T) {
	req := validCreateFactureRequest()

	assert.NoError(t, req.Validate())
}

func TestCreateFactureRequest_SansLignes(t *testing.T) {
	req := CreateFactureRequest{}

	assert.Error(t, req.Validate())
}

func TestCreateFactureRequest_QuantiteTropFaible(t *testing.T) {
	req := validCreateFactureRequest()
	req.Lignes[0].Quantite = 0.1

	assert.Error(t, req.Validate())
}

func TestCreateFactureRequest_SansDescription(t *testing.T) {
	req := validCreateFactureRequest()
	req.Lignes[0].Description = ""

	assert.Error(t, req.Validate())
}

func TestRefuserFactureRequest_Validate(t *testing.T) {
	assert.Error(t, (&RefuserFactureRequest{}).Validate())
	assert.NoError(t, (&RefuserFactureRequest{Remarques: "Taux horaire incorrect"}).Validate())
}
