package domain

import "time"

const (
	StatutMissionPlanifiee = "planifiee"
	StatutMissionEnCours   = "en_cours"
	StatutMissionTerminee  = "terminee"
	StatutMissionAnnulee   = "annulee"
)

const (
	StatutSuiviOK                   = "ok"
	StatutSuiviIntervenantTrouve    = "intervenant_trouve"
	StatutSuiviEnAttenteIntervenant = "en_attente_intervenant"
	StatutSuiviProblemeIntervenant  = "probleme_intervenant"
	StatutSuiviRetard               = "retard"
	StatutSuiviAbsenceIntervenant   = "absence_intervenant"
	StatutSuiviAnnulationDemandee   = "annulation_demandee"
	StatutSuiviAutre                = "autre"
)

const (
	TypeAlerteAbsence           = "absence"
	TypeAlerteRetard            = "retard"
	TypeAlerteProblemeTechnique = "probleme_technique"
	TypeAlerteAnnulation        = "annulation"
	TypeAlerteAutre             = "autre"
)

const (
	TypeIncidentRetard        = "retard"
	TypeIncidentAbsence       = "absence"
	TypeIncidentProblemeEcole = "probleme_ecole"
	TypeIncidentProblemeEleve = "probleme_eleve"
	TypeIncidentAutre         = "autre"
)

// Alerte is an admin follow-up alert attached to a mission.
type Alerte struct {
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

// Incident is reported by the trainer when starting a mission.
type Incident struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

type FichierNote struct {
	ID         string    `json:"id"`
	Nom        string    `json:"nom"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
	UploadedBy string    `json:"uploadedBy"`
}

// Seance is a single scheduled slot of a mission. Older fixtures carry a
// single dateDebut/heureDebut pair on the mission instead of a seances list.
type Seance struct {
	Date        time.Time `json:"date"`
	HeureDebut  string    `json:"heureDebut"` // "09:00"
	HeureFin    string    `json:"heureFin"`   // "12:00"
	DureeHeures float64   `json:"dureeHeures"`
}

type Mission struct {
	ID       string `json:"id"`
	CoursID  string `json:"coursId"`
	EcoleID  string `json:"ecoleId"`
	ClasseID string `json:"classeId"`

	// Resolved by the enrichment join, nil on raw records.
	Cours  *Cours  `json:"cours,omitempty"`
	Ecole  *Ecole  `json:"ecole,omitempty"`
	Classe *Classe `json:"classe,omitempty"`

	Seances []Seance `json:"seances,omitempty"`

	// Legacy single-slot schedule, used when Seances is empty.
	DateDebut  time.Time `json:"dateDebut"`
	DateFin    time.Time `json:"dateFin"`
	HeureDebut string    `json:"heureDebut"`
	HeureFin   string    `json:"heureFin"`

	FormateurID  string `json:"formateurId"`
	FormateurNom string `json:"formateurNom,omitempty"`

	Statut        string        `json:"statut"`
	FichiersNotes []FichierNote `json:"fichiersNotes"`

	StatutSuivi string     `json:"statutSuivi,omitempty"`
	Alertes     []Alerte   `json:"alertes,omitempty"`
	Incidents   []Incident `json:"incidents,omitempty"`

	MissionDemarree bool       `json:"missionDemarree,omitempty"`
	DateDemarrage   *time.Time `json:"dateDemarrage,omitempty"`

	QRCodeURL     string `json:"qrCodeUrl,omitempty"`
	EvaluationURL string `json:"evaluationUrl,omitempty"`

	Notes     string `json:"notes,omitempty"`
	Remarques string `json:"remarques,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Debut is the first scheduled moment, from seances when present, otherwise
// from the legacy date pair.
func (m Mission) Debut() time.Time {
	if len(m.Seances) > 0 {
		return m.Seances[0].Date
	}

	return m.DateDebut
}

func (m Mission) Fin() time.Time {
	if len(m.Seances) > 0 {
		return m.Seances[len(m.Seances)-1].Date
	}

	return m.DateFin
}

// DureeHeures sums the scheduled hours across seances, falling back to the
// legacy heureDebut/heureFin pair.
func (m Mission) DureeHeures() float64 {
	if len(m.Seances) > 0 {
		var total float64
		for _, s := range m.Seances {
			total += s.DureeHeures
		}

		return total
	}

	return hoursBetween(m.HeureDebut, m.HeureFin)
}

func hoursBetween(debut, fin string) float64 {
	start, err := time.Parse("15:04", debut)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", fin)
	if err != nil {
		return 0
	}

	return end.Sub(start).Hours()
}
