package domain

import "time"

const (
	StatutPropositionEnAttente = "en_attente"
	StatutPropositionAcceptee  = "acceptee"
	StatutPropositionRefusee   = "refusee"
	StatutPropositionExpiree   = "expiree"
)

const (
	// TypePropositionPublique is visible to every trainer.
	TypePropositionPublique = "publique"
	// TypePropositionDirecte is sent to a single targeted trainer.
	TypePropositionDirecte = "directe"
)

const (
	StatutCandidatureEnAttente = "en_attente"
	StatutCandidatureAcceptee  = "acceptee"
	StatutCandidatureRefusee   = "refusee"
)

type Candidature struct {
	ID            string    `json:"id"`
	PropositionID string    `json:"propositionId"`
	FormateurID   string    `json:"formateurId"`
	FormateurNom  string    `json:"formateurNom"`
	Message       string    `json:"message,omitempty"`
	Statut        string    `json:"statut"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Proposition struct {
	ID       string `json:"id"`
	CoursID  string `json:"coursId"`
	EcoleID  string `json:"ecoleId"`
	ClasseID string `json:"classeId"`

	// Resolved by the enrichment join, nil on raw records.
	Cours  *Cours  `json:"cours,omitempty"`
	Ecole  *Ecole  `json:"ecole,omitempty"`
	Classe *Classe `json:"classe,omitempty"`

	Seances []Seance `json:"seances,omitempty"`

	DateDebut  time.Time `json:"dateDebut"`
	DateFin    time.Time `json:"dateFin"`
	HeureDebut string    `json:"heureDebut"`
	HeureFin   string    `json:"heureFin"`

	Type   string `json:"type"`
	Statut string `json:"statut"`

	// Set only for direct propositions.
	FormateurCibleID string `json:"formateurCibleId,omitempty"`

	Candidatures []Candidature `json:"candidatures"`

	Description    string    `json:"description"`
	Remuneration   float64   `json:"remuneration"`
	DateExpiration time.Time `json:"dateExpiration"`

	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VisiblePar reports whether the proposition is offered to the given trainer.
func (p Proposition) VisiblePar(formateurID string) bool {
	return p.Type == TypePropositionPublique || p.FormateurCibleID == formateurID
}

func (p Proposition) EstExpiree(now time.Time) bool {
	return p.DateExpiration.Before(now)
}
