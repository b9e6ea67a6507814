package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type UpdateProfileRequest struct {
	Telephone    string  `json:"telephone"`
	Adresse      string  `json:"adresse"`
	Ville        string  `json:"ville"`
	CodePostal   string  `json:"codePostal"`
	TarifHoraire float64 `json:"tarifHoraire"`
}

func (req *UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Telephone, validation.Length(0, 20)),
		validation.Field(&req.Ville, validation.Length(0, 100)),
		validation.Field(&req.CodePostal, validation.Length(0, 10)),
		validation.Field(&req.TarifHoraire, validation.Min(0.0)),
	)
}

type CompetenceRequest struct {
	Nom    string `json:"nom"`
	Niveau string `json:"niveau"`
}

func (req *CompetenceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nom, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Niveau, validation.Required,
			validation.In("debutant", "intermediaire", "avance", "expert")),
	)
}

type DocumentRequest struct {
	Nom  string `json:"nom"`
	Type string `json:"type"`
}

func (req *DocumentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nom, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Type, validation.Required, validation.In("cv", "diplome", "certification", "autre")),
	)
}

type AlerteIntervenantRequest struct {
	Type        string `json:"type"`
	Titre       string `json:"titre"`
	Description string `json:"description"`
}

func (req *AlerteIntervenantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Type, validation.Required,
			validation.In("absence_recurrente", "retard_frequent", "evaluation_negative",
				"probleme_comportement", "disponibilite", "document_manquant", "autre")),
		validation.Field(&req.Titre, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}
