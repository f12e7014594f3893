// Package report implementa los generadores de exportación del kardex
// (Excel con excelize y PDF con Maroto v2).
package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/serodominguez/waresoft-api/internal/application/reports"
)

// ExcelKardexGenerator implementa reports.ExcelGenerator usando excelize.
type ExcelKardexGenerator struct{}

// NewExcelKardexGenerator construye el generador.
func NewExcelKardexGenerator() *ExcelKardexGenerator { return &ExcelKardexGenerator{} }

const kardexSheet = "Kardex"

// GenerateKardexExcel genera el libro y devuelve sus bytes.
func (g *ExcelKardexGenerator) GenerateKardexExcel(_ context.Context, report *reports.KardexReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(kardexSheet)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de título: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}

	// Encabezado del reporte
	f.SetCellValue(kardexSheet, "A1", "KARDEX DE PRODUCTO")
	f.SetCellStyle(kardexSheet, "A1", "A1", titleStyle)
	f.SetCellValue(kardexSheet, "A2", fmt.Sprintf("Sucursal: %s (%s)", report.Store.Name, report.Store.Code))
	f.SetCellValue(kardexSheet, "A3", fmt.Sprintf("Producto: %s (%s)", report.Product.Description, report.Product.Code))
	f.SetCellValue(kardexSheet, "A4", "Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"))

	// Cabecera de la tabla
	headers := []string{"Documento", "Fecha", "Tipo", "Detalle", "Cantidad", "Precio Unit.", "Saldo"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 6)
		f.SetCellValue(kardexSheet, cell, h)
	}
	first, _ := excelize.CoordinatesToCellName(1, 6)
	last, _ := excelize.CoordinatesToCellName(len(headers), 6)
	f.SetCellStyle(kardexSheet, first, last, headerStyle)

	// Movimientos
	row := 7
	for _, m := range report.Kardex.Movements {
		values := []interface{}{
			m.DocumentCode,
			m.DocumentDate.Format("02/01/2006"),
			m.MovementType,
			m.DocumentInfo,
			m.Quantity,
			m.UnitPrice.StringFixed(2),
			m.Balance,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(kardexSheet, cell, v)
		}
		row++
	}

	// Resumen
	row++
	f.SetCellValue(kardexSheet, fmt.Sprintf("A%d", row), "Saldo reconstruido:")
	f.SetCellValue(kardexSheet, fmt.Sprintf("B%d", row), report.Kardex.FinalBalance)
	row++
	f.SetCellValue(kardexSheet, fmt.Sprintf("A%d", row), "Stock disponible:")
	f.SetCellValue(kardexSheet, fmt.Sprintf("B%d", row), report.Kardex.LiveAvailable)
	row++
	f.SetCellValue(kardexSheet, fmt.Sprintf("A%d", row), "Diferencia:")
	f.SetCellValue(kardexSheet, fmt.Sprintf("B%d", row), report.Kardex.StockDifference)

	f.SetColWidth(kardexSheet, "A", "A", 16)
	f.SetColWidth(kardexSheet, "B", "D", 18)
	f.SetColWidth(kardexSheet, "E", "G", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
