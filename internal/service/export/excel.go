package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// documentSink es la implementación por defecto de DocumentSink: excelize
// para la planilla y fpdf para los PDF.
type documentSink struct{}

func NewDocumentSink() DocumentSink {
	return &documentSink{}
}

func (d *documentSink) BranchSheet(doc BranchSheetDoc) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Planificacion"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	// Fila 1: bloque de título y periodo. Fila 2: encabezados de columna.
	f.SetCellValue(sheet, "A1", "Planificación Mensual de Turnos")
	f.SetCellValue(sheet, "C1", doc.Sucursal)
	f.SetCellValue(sheet, "D1", doc.Periodo)

	headers := []string{"RUT", "Nombre", "Área", "Fecha", "Turno"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 2)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, row := range doc.Rows {
		rowNum := rowIdx + 3
		f.SetCellValue(sheet, cellName(1, rowNum), row.Rut)
		f.SetCellValue(sheet, cellName(2, rowNum), row.Nombre)
		f.SetCellValue(sheet, cellName(3, rowNum), doc.Sucursal)
		f.SetCellValue(sheet, cellName(4, rowNum), row.Fecha)
		f.SetCellValue(sheet, cellName(5, rowNum), row.Codigo)
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      2,
		TopLeftCell: "A3",
	})
	f.SetColWidth(sheet, "A", "B", 25)
	f.SetColWidth(sheet, "C", "E", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("escribir planilla: %w", err)
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
