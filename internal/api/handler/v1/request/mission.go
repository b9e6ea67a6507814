package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// DemarrerMissionRequest optionally carries an incident noticed when the
// trainer checks in.
type DemarrerMissionRequest struct {
	Incident *IncidentRequest `json:"incident,omitempty"`
}

type IncidentRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (req *DemarrerMissionRequest) Validate() error {
	if req.Incident == nil {
		return nil
	}

	return validation.ValidateStruct(
		req.Incident,
		validation.Field(&req.Incident.Type, validation.Required,
			validation.In("retard", "absence", "probleme_ecole", "probleme_eleve", "autre")),
		validation.Field(&req.Incident.Description, validation.Required, validation.Length(5, 500)),
	)
}

type FichierNoteRequest struct {
	Nom string `json:"nom"`
}

func (req *FichierNoteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nom, validation.Required, validation.Length(1, 255)),
	)
}

type StatutSuiviRequest struct {
	StatutSuivi string `json:"statutSuivi"`
}

func (req *StatutSuiviRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StatutSuivi, validation.Required,
			validation.In("ok", "intervenant_trouve", "en_attente_intervenant", "probleme_intervenant",
				"retard", "absence_intervenant", "annulation_demandee", "autre")),
	)
}

type AlerteRequest struct {
	Type        string `json:"type"`
	Titre       string `json:"titre"`
	Description string `json:"description"`
}

func (req *AlerteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Type, validation.Required,
			validation.In("absence", "retard", "probleme_technique", "annulation", "autre")),
		validation.Field(&req.Titre, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}
