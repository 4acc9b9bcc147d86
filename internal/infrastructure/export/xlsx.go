package export

import (
	"context"
	"fmt"
	"io"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/jhoicas/Inventario-activos/internal/application/report"
)

var _ report.Exporter = XLSXExporter{}

const sheetName = "Activos"

var xlsxHeaders = []string{"Número", "Nombre", "Cantidad", "Marca", "Categoría", "Sala", "Condición", "Fecha", "Usuario"}

// XLSXExporter hoja única con encabezado en negrita y una fila por activo.
type XLSXExporter struct{}

func (XLSXExporter) Format() report.Format { return report.FormatXLSX }

func (XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXExporter) Export(_ context.Context, w io.Writer, r report.Report) error {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	for i, h := range xlsxHeaders {
		f.SetCellValue(sheetName, cell(i, 1), h)
	}
	if style, err := f.NewStyle(`{"font":{"bold":true},"fill":{"type":"pattern","color":["#00467F"],"pattern":1}}`); err == nil {
		f.SetCellStyle(sheetName, cell(0, 1), cell(len(xlsxHeaders)-1, 1), style)
	}

	for n, a := range r.Rows {
		line := n + 2
		// El número va como texto para conservar los ceros a la izquierda.
		values := []interface{}{a.Number, a.Name, a.Quantity, a.Brand, a.Category, a.Room, a.Condition.Label(), a.Date, a.User}
		for i, v := range values {
			f.SetCellValue(sheetName, cell(i, line), v)
		}
	}
	f.SetColWidth(sheetName, "A", "A", 22)
	f.SetColWidth(sheetName, "B", "B", 32)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	return nil
}

// cell referencia A1 a partir de columna (base 0) y fila (base 1).
func cell(col, row int) string {
	return fmt.Sprintf("%s%d", excelize.ToAlphaString(col), row)
}
