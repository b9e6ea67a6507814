package domain

import "time"

const (
	TypeActionPropositionSoumise  = "proposition_soumise"
	TypeActionPropositionAcceptee = "proposition_acceptee"
	TypeActionPropositionRefusee  = "proposition_refusee"
	TypeActionMissionCreee        = "mission_creee"
	TypeActionMissionTerminee     = "mission_terminee"
	TypeActionMissionAnnulee      = "mission_annulee"
	TypeActionFactureCreee        = "facture_creee"
	TypeActionFactureSoumise      = "facture_soumise"
	TypeActionFactureValidee      = "facture_validee"
	TypeActionFacturePayee        = "facture_payee"
	TypeActionProfilModifie       = "profil_modifie"
	TypeActionDocumentAjoute      = "document_ajoute"
	TypeActionEvaluationRecue     = "evaluation_recue"
)

type HistoriqueEntry struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}
