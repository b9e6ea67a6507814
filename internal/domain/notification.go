package domain

import "time"

const (
	TypeNotificationNouvelleProposition = "nouvelle_proposition"
	TypeNotificationPropositionAcceptee = "proposition_acceptee"
	TypeNotificationPropositionRefusee  = "proposition_refusee"
	TypeNotificationMissionConfirmee    = "mission_confirmee"
	TypeNotificationMissionAnnulee      = "mission_annulee"
	TypeNotificationMissionRappel       = "mission_rappel"
	TypeNotificationMissionDemarree     = "mission_demarree"
	TypeNotificationIncidentSignale     = "incident_signale"
	TypeNotificationFactureValidee      = "facture_validee"
	TypeNotificationFacturePayee        = "facture_payee"
	TypeNotificationFactureRefusee      = "facture_refusee"
	TypeNotificationMessageAdmin        = "message_admin"
	TypeNotificationEvaluationRecue     = "evaluation_recue"
)

type Notification struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Type    string `json:"type"`
	Titre   string `json:"titre"`
	Message string `json:"message"`
	Lien    string `json:"lien,omitempty"`
	Lu      bool   `json:"lu"`

	Metadata map[string]string `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
