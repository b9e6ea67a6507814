package domain

import "time"

const (
	StatutFactureBrouillon = "brouillon"
	StatutFactureSoumise   = "soumise"
	StatutFactureValidee   = "validee"
	StatutFacturePayee     = "payee"
	StatutFactureRefusee   = "refusee"
)

// TauxTVA is the VAT rate applied to every facture.
const TauxTVA = 0.2

type LigneFacture struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	MissionID   string  `json:"missionId,omitempty"`
	Quantite    float64 `json:"quantite"` // hours
	TauxHoraire float64 `json:"tauxHoraire"`
	Montant     float64 `json:"montant"` // quantite * tauxHoraire
}

type Facture struct {
	ID           string `json:"id"`
	Numero       string `json:"numero"` // "FAC-2025-001"
	FormateurID  string `json:"formateurId"`
	FormateurNom string `json:"formateurNom,omitempty"`

	Lignes []LigneFacture `json:"lignes"`

	SousTotal float64 `json:"sousTotal"`
	Taxe      float64 `json:"taxe"`
	Total     float64 `json:"total"`

	DateEmission time.Time  `json:"dateEmission"`
	DateEcheance time.Time  `json:"dateEcheance"`
	DatePaiement *time.Time `json:"datePaiement,omitempty"`

	Statut string `json:"statut"`

	PDFURL string `json:"pdfUrl,omitempty"`

	Notes          string `json:"notes,omitempty"`
	RemarquesAdmin string `json:"remarquesAdmin,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CalculerTotaux recomputes every line amount and the facture totals.
// Amounts coming from clients or fixtures are never trusted as-is.
func (f *Facture) CalculerTotaux() {
	var sousTotal float64
	for i := range f.Lignes {
		f.Lignes[i].Montant = f.Lignes[i].Quantite * f.Lignes[i].TauxHoraire
		sousTotal += f.Lignes[i].Montant
	}

	f.SousTotal = sousTotal
	f.Taxe = sousTotal * TauxTVA
	f.Total = f.SousTotal + f.Taxe
}

func (f Facture) EstEnRetard(now time.Time) bool {
	return f.Statut != StatutFacturePayee && f.DateEcheance.Before(now)
}
