// Package report exporta el listado de activos (mismos filtros, búsqueda y orden) a CSV, XLSX o PDF.
package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/jhoicas/Inventario-activos/internal/application/dto"
	"github.com/jhoicas/Inventario-activos/internal/domain"
)

// Format formato de exportación.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// MaxRows tope de filas por exportación.
const MaxRows = 10000

// Report datos que recibe un exportador.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Rows        []dto.AssetResponse
}

// Exporter escribe un Report en un formato concreto.
type Exporter interface {
	Format() Format
	ContentType() string
	Export(ctx context.Context, w io.Writer, r Report) error
}

// AssetSource fuente paginada de activos (la implementa *usecase.AssetUseCase).
type AssetSource interface {
	All(ctx context.Context, in dto.AssetListRequest) iter.Seq2[dto.AssetResponse, error]
}

// File resultado listo para servir como descarga.
type File struct {
	Name        string
	ContentType string
	Body        []byte
	Rows        int
}

// ExportUseCase arma el reporte recorriendo todas las páginas del listado.
type ExportUseCase struct {
	assets    AssetSource
	exporters map[Format]Exporter
	now       func() time.Time
}

// NewExportUseCase construye el caso de uso con los exportadores disponibles.
func NewExportUseCase(assets AssetSource, now func() time.Time, exporters ...Exporter) *ExportUseCase {
	if now == nil {
		now = time.Now
	}
	m := make(map[Format]Exporter, len(exporters))
	for _, e := range exporters {
		m[e.Format()] = e
	}
	return &ExportUseCase{assets: assets, exporters: m, now: now}
}

// Export genera el archivo. Un formato no registrado es un error de validación sobre "format".
func (uc *ExportUseCase) Export(ctx context.Context, format string, in dto.AssetListRequest) (*File, error) {
	exp, ok := uc.exporters[Format(format)]
	if !ok {
		var verr domain.ValidationError
		verr.Add("format", "formato no soportado: "+format)
		return nil, &verr
	}

	// El listado exportado arranca siempre desde el principio.
	in.Offset = 0
	in.Limit = dto.MaxLimit

	rows := make([]dto.AssetResponse, 0, dto.MaxLimit)
	for item, err := range uc.assets.All(ctx, in) {
		if err != nil {
			return nil, err
		}
		rows = append(rows, item)
		if len(rows) >= MaxRows {
			break
		}
	}

	now := uc.now()
	var buf bytes.Buffer
	if err := exp.Export(ctx, &buf, Report{Title: "Inventario de activos", GeneratedAt: now, Rows: rows}); err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}
	return &File{
		Name:        fmt.Sprintf("activos_%s.%s", now.Format("20060102_150405"), format),
		ContentType: exp.ContentType(),
		Body:        buf.Bytes(),
		Rows:        len(rows),
	}, nil
}

// Formats formatos registrados.
func (uc *ExportUseCase) Formats() []Format {
	out := make([]Format, 0, len(uc.exporters))
	for _, f := range []Format{FormatCSV, FormatXLSX, FormatPDF} {
		if _, ok := uc.exporters[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
