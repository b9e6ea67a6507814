package domain

import "time"

type Ecole struct {
	ID          string `json:"id"`
	Nom         string `json:"nom"`
	Adresse     string `json:"adresse"`
	Ville       string `json:"ville"`
	CodePostal  string `json:"codePostal"`
	Telephone   string `json:"telephone"`
	Email       string `json:"email"`
	Responsable string `json:"responsable"`
	Logo        string `json:"logo,omitempty"`
	SiteWeb     string `json:"siteWeb,omitempty"`

	// Aggregates filled by the admin school stats, not present in fixtures.
	NombreMissionsEnCours int     `json:"nombreMissionsEnCours,omitempty"`
	NombreMissionsTotal   int     `json:"nombreMissionsTotal,omitempty"`
	ChiffreAffaires       float64 `json:"chiffreAffaires,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Classe struct {
	ID           string `json:"id"`
	Nom          string `json:"nom"`
	Niveau       string `json:"niveau"` // "CP", "CE1", "6ème", "Terminale", ...
	NombreEleves int    `json:"nombreEleves"`
	EcoleID      string `json:"ecoleId"`
}
