package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// WorkerSchedule dibuja la planilla mensual de un trabajador: encabezado con
// datos y periodo, tabla cronológica de turnos, resumen de horas por semana y
// bloque de firma al pie. Una página A4 por trabajador.
func (d *documentSink) WorkerSchedule(doc WorkerScheduleDoc) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetY(12)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, tr("Planilla de Turnos Mensual"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(20, 5, "Nombre:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(85, 5, tr(doc.Nombre), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(15, 5, "RUT:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 5, doc.Rut, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(20, 5, "Sucursal:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(85, 5, tr(doc.Sucursal), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(15, 5, "Periodo:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 5, tr(doc.Periodo), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Tabla de turnos, centrada.
	colWidths := []float64{30, 25, 20, 20, 40}
	var totalWidth float64
	for _, w := range colWidths {
		totalWidth += w
	}
	pageWidth, _ := pdf.GetPageSize()
	startX := (pageWidth - totalWidth) / 2

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(224, 224, 224)
	pdf.SetX(startX)
	headers := []string{"Día", "Fecha", "Turno", "Jornada", "Horario"}
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 6, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range doc.Rows {
		pdf.SetX(startX)
		pdf.CellFormat(colWidths[0], 5, tr(row.Dia), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 5, row.Fecha, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], 5, tr(row.Codigo), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[3], 5, row.Jornada, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[4], 5, tr(row.Horario), "1", 1, "C", false, 0, "")
	}

	// Resumen de horas por semana.
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Resumen de Horas", "", 1, "C", false, 0, "")

	if len(doc.WeeklyHeaders) > 0 {
		summaryColWidth := totalWidth / float64(len(doc.WeeklyHeaders))

		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetX(startX)
		for _, h := range doc.WeeklyHeaders {
			pdf.CellFormat(summaryColWidth, 6, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetX(startX)
		for _, v := range doc.WeeklyValues {
			pdf.CellFormat(summaryColWidth, 6, v, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	// Bloque de firma al pie de la página.
	pdf.SetY(250)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(95, 6, "Recibido Conforme,", "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.Line(pdf.GetX()+10, pdf.GetY(), pdf.GetX()+80, pdf.GetY())
	pdf.Line(pdf.GetX()+115, pdf.GetY(), pdf.GetX()+165, pdf.GetY())
	pdf.CellFormat(95, 6, "Firma Trabajador", "", 0, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Fecha", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}

	return buf.Bytes(), nil
}
