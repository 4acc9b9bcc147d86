// Package export implementa los exportadores tabulares del listado de activos.
package export

import (
	"context"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/jhoicas/Inventario-activos/internal/application/report"
)

var _ report.Exporter = CSVExporter{}

// CSVExporter escribe una fila por activo con las columnas de las etiquetas csv de dto.AssetResponse.
type CSVExporter struct{}

func (CSVExporter) Format() report.Format { return report.FormatCSV }

func (CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

func (CSVExporter) Export(_ context.Context, w io.Writer, r report.Report) error {
	return gocsv.Marshal(r.Rows, w)
}
