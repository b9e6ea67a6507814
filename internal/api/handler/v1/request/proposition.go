package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errMissingFormateurCible = errors.New("un formateur cible est requis pour une proposition directe")

type PostulerRequest struct {
	Message string `json:"message"`
}

func (req *PostulerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Message, validation.Length(0, 500)),
	)
}

type CreatePropositionRequest struct {
	CoursID          string    `json:"coursId"`
	EcoleID          string    `json:"ecoleId"`
	ClasseID         string    `json:"classeId"`
	DateDebut        time.Time `json:"dateDebut"`
	DateFin          time.Time `json:"dateFin"`
	HeureDebut       string    `json:"heureDebut"`
	HeureFin         string    `json:"heureFin"`
	Type             string    `json:"type"`
	FormateurCibleID string    `json:"formateurCibleId"`
	Description      string    `json:"description"`
	Remuneration     float64   `json:"remuneration"`
	DateExpiration   time.Time `json:"dateExpiration"`
}

func (req *CreatePropositionRequest) Validate() error {
	if req.Type == "directe" && req.FormateurCibleID == "" {
		return errMissingFormateurCible
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.CoursID, validation.Required),
		validation.Field(&req.EcoleID, validation.Required),
		validation.Field(&req.ClasseID, validation.Required),
		validation.Field(&req.DateDebut, validation.Required),
		validation.Field(&req.DateFin, validation.Required),
		validation.Field(&req.HeureDebut, validation.Required, validation.Date("15:04")),
		validation.Field(&req.HeureFin, validation.Required, validation.Date("15:04")),
		validation.Field(&req.Type, validation.Required, validation.In("publique", "directe")),
		validation.Field(&req.Remuneration, validation.Required, validation.Min(0.0)),
		validation.Field(&req.DateExpiration, validation.Required),
	)
}

type StatutCandidatureRequest struct {
	Statut string `json:"statut"`
}

func (req *StatutCandidatureRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Statut, validation.Required, validation.In("acceptee", "refusee")),
	)
}
