package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type LigneFactureRequest struct {
	Description string  `json:"description"`
	MissionID   string  `json:"missionId"`
	Quantite    float64 `json:"quantite"`
	TauxHoraire float64 `json:"tauxHoraire"`
}

type CreateFactureRequest struct {
	Lignes []LigneFactureRequest `json:"lignes"`
	Notes  string                `json:"notes"`
}

func (req *CreateFactureRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Lignes, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Notes, validation.Length(0, 1000)),
	)
	if err != nil {
		return err
	}

	for i := range req.Lignes {
		ligne := &req.Lignes[i]
		err = validation.ValidateStruct(
			ligne,
			validation.Field(&ligne.Description, validation.Required, validation.Length(1, 200)),
			validation.Field(&ligne.Quantite, validation.Required, validation.Min(0.25)),
			validation.Field(&ligne.TauxHoraire, validation.Required, validation.Min(1.0)),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

type RefuserFactureRequest struct {
	Remarques string `json:"remarques"`
}

func (req *RefuserFactureRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Remarques, validation.Required, validation.Length(2, 500)),
	)
}
