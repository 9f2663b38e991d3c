package delivery

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"veredicto/internal/domain/entities"
	"veredicto/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer renders the unlocked report as an A4 PDF document.

type PDFRenderer struct{}

var _ interfaces.IReportRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(_ context.Context, rep entities.Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "VEREDICTO — Reporte Oficial", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Report ID: %s", rep.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Dominio: %s", rep.Domain), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Fecha: %s", time.Now().UTC().Format("2006-01-02 15:04:05 UTC")), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	if len(rep.ProblemsDetected) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, "Problemas detectados", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, p := range rep.ProblemsDetected {
			pdf.MultiCell(0, 6, "- "+p, "", "L", false)
		}
		pdf.Ln(4)
	}

	if rep.TechnicalSummary != "" {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, "Resumen técnico", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, rep.TechnicalSummary, "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Veredicto completo", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, rep.FullReport, "", "L", false)

	if rep.SuggestedActions != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, "Acciones sugeridas", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, rep.SuggestedActions, "", "L", false)
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "Gracias por confiar en Veredicto", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
