// Package report renders skin reports as downloadable PDF documents.
package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/kaagyebi/lumea-api/internal/models"
)

const title = "Lumea Skin Analysis Report"

// Filename is the attachment name offered for a report download.
func Filename(rep *models.SkinReport) string {
	return fmt.Sprintf("Lumea-Skin-Report-%s.pdf", rep.ID)
}

// Render builds an A4 document for rep. rep.User should be loaded.
func Render(rep *models.SkinReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetTitle(title, true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	if rep.User.Name != "" {
		pdf.CellFormat(contentW, 6, tr("User: "+rep.User.Name), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 6, "Date: "+rep.CreatedAt.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.Line(20, pdf.GetY(), pageW-20, pdf.GetY())
	pdf.Ln(4)

	// ── Analysis ─────────────────────────────────────────────────────────────
	a := rep.Analysis

	section(pdf, contentW, "Analysis")
	field(pdf, tr, contentW, "Tone", a.Tone)
	field(pdf, tr, contentW, "Skin Type", a.SkinType)
	field(pdf, tr, contentW, "Skin Age", strconv.FormatFloat(a.SkinAge, 'f', -1, 64))
	field(pdf, tr, contentW, "Skin Health", a.SkinHealth)
	field(pdf, tr, contentW, "Texture", a.Texture)
	field(pdf, tr, contentW, "Oil Level", a.OilLevel)
	field(pdf, tr, contentW, "Pore Visibility", a.PoreVisibility)
	if a.OverallScore != nil {
		field(pdf, tr, contentW, "Overall Score", fmt.Sprintf("%.0f", *a.OverallScore))
	}
	pdf.Ln(3)

	section(pdf, contentW, "Conditions")
	paragraph(pdf, tr, contentW, joinOr(a.Conditions, "None identified"))

	section(pdf, contentW, "Precautions")
	paragraph(pdf, tr, contentW, joinOr(a.Precautions, "None"))

	if a.SkinSummary != "" {
		section(pdf, contentW, "Summary")
		paragraph(pdf, tr, contentW, a.SkinSummary)
	}

	section(pdf, contentW, "Cosmetologist Notes")
	notes := rep.CosmetologistNotes
	if strings.TrimSpace(notes) == "" {
		notes = "No notes provided."
	}
	paragraph(pdf, tr, contentW, notes)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *fpdf.Fpdf, w float64, name string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(w, 8, name, "", 1, "L", false, 0, "")
}

func field(pdf *fpdf.Fpdf, tr func(string) string, w float64, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(45, 6, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(w-45, 6, tr(value), "", 1, "L", false, 0, "")
}

func paragraph(pdf *fpdf.Fpdf, tr func(string) string, w float64, text string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(w, 6, tr(text), "", "L", false)
	pdf.Ln(3)
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}
