package domain

import "time"

const (
	RoleFormateur = "formateur"
	RoleAdmin     = "admin"
)

type Competence struct {
	ID     string `json:"id"`
	Nom    string `json:"nom"`
	Niveau string `json:"niveau"` // "debutant", "intermediaire" or "expert"
}

type Document struct {
	ID         string    `json:"id"`
	Nom        string    `json:"nom"`
	Type       string    `json:"type"` // "cv", "diplome", "kbis" or "autre"
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type Disponibilite struct {
	Jour       string `json:"jour"`       // "lundi", "mardi", ...
	HeureDebut string `json:"heureDebut"` // "08:00"
	HeureFin   string `json:"heureFin"`   // "18:00"
}

const (
	TypeAlerteIntervenantAbsenceRecurrente  = "absence_recurrente"
	TypeAlerteIntervenantRetardFrequent     = "retard_frequent"
	TypeAlerteIntervenantEvaluationNegative = "evaluation_negative"
	TypeAlerteIntervenantComportement       = "probleme_comportement"
	TypeAlerteIntervenantDisponibilite      = "disponibilite"
	TypeAlerteIntervenantDocumentManquant   = "document_manquant"
	TypeAlerteIntervenantAutre              = "autre"
)

// AlerteIntervenant is an admin-raised alert attached to a trainer profile.
type AlerteIntervenant struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Titre       string     `json:"titre"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   string     `json:"createdBy"`
	Resolue     bool       `json:"resolue"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy  string     `json:"resolvedBy,omitempty"`
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Telephone string `json:"telephone"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar,omitempty"`

	// Trainer-specific fields.
	Competences    []Competence        `json:"competences,omitempty"`
	Documents      []Document          `json:"documents,omitempty"`
	Disponibilites []Disponibilite     `json:"disponibilites,omitempty"`
	Adresse        string              `json:"adresse,omitempty"`
	Ville          string              `json:"ville,omitempty"`
	CodePostal     string              `json:"codePostal,omitempty"`
	Alertes        []AlerteIntervenant `json:"alertes,omitempty"`
	NombreMissions int                 `json:"nombreMissions,omitempty"`
	NombreHeures   float64             `json:"nombreHeures,omitempty"`
	NoteGlobale    float64             `json:"noteGlobale,omitempty"`
	TarifHoraire   float64             `json:"tarifHoraire,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NomComplet is the display name used when enriching missions and factures.
func (u User) NomComplet() string {
	if u.Prenom == "" {
		return u.Nom
	}

	return u.Prenom + " " + u.Nom
}
