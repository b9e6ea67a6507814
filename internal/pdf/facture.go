// Package pdf renders factures as downloadable PDF documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/eduka/eduka-api/internal/domain"
)

const (
	agencyName    = "Eduka Formation"
	agencyStreet  = "25 Rue de l'Innovation"
	agencyCity    = "75001 Paris"
	dateFormatFR  = "02/01/2006"
)

// RenderFacture lays out the invoice header, parties, line table and totals.
// Pure formatting: no I/O beyond the returned buffer.
func RenderFacture(facture domain.Facture) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 10, "FACTURE", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 8, tr(fmt.Sprintf("N° %s", facture.Numero)), "", 1, "C", false, 0, "")
	doc.Ln(8)

	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(20, 50)
	doc.MultiCell(80, 5, tr(agencyName+"\n"+agencyStreet+"\n"+agencyCity), "", "L", false)
	doc.SetXY(120, 50)
	doc.MultiCell(70, 5, tr(facture.FormateurNom), "", "L", false)

	doc.SetXY(20, 80)
	doc.CellFormat(0, 5, tr("Date d'émission : "+facture.DateEmission.Format(dateFormatFR)), "", 1, "L", false, 0, "")
	doc.SetX(20)
	doc.CellFormat(0, 5, tr("Date d'échéance : "+facture.DateEcheance.Format(dateFormatFR)), "", 1, "L", false, 0, "")

	doc.SetXY(20, 110)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(90, 7, "Description", "B", 0, "L", false, 0, "")
	doc.CellFormat(25, 7, tr("Qté"), "B", 0, "R", false, 0, "")
	doc.CellFormat(25, 7, "Taux", "B", 0, "R", false, 0, "")
	doc.CellFormat(30, 7, "Montant", "B", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, ligne := range facture.Lignes {
		doc.SetX(20)
		doc.CellFormat(90, 7, tr(ligne.Description), "", 0, "L", false, 0, "")
		doc.CellFormat(25, 7, formatQuantite(ligne.Quantite), "", 0, "R", false, 0, "")
		doc.CellFormat(25, 7, formatEuros(ligne.TauxHoraire), "", 0, "R", false, 0, "")
		doc.CellFormat(30, 7, formatEuros(ligne.Montant), "", 1, "R", false, 0, "")
	}

	doc.Ln(5)
	doc.SetX(110)
	doc.CellFormat(30, 7, "Sous-total", "T", 0, "L", false, 0, "")
	doc.CellFormat(30, 7, formatEuros(facture.SousTotal), "T", 1, "R", false, 0, "")
	doc.SetX(110)
	doc.CellFormat(30, 7, "TVA (20%)", "", 0, "L", false, 0, "")
	doc.CellFormat(30, 7, formatEuros(facture.Taxe), "", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "B", 12)
	doc.SetX(110)
	doc.CellFormat(30, 8, "TOTAL", "", 0, "L", false, 0, "")
	doc.CellFormat(30, 8, formatEuros(facture.Total), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("doc.Output -> %w", err)
	}

	return buf.Bytes(), nil
}

func formatEuros(v float64) string {
	return fmt.Sprintf("%.2f EUR", v)
}

func formatQuantite(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}

	return fmt.Sprintf("%.2f", v)
}
