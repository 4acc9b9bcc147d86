// Package pdf genera el reporte imprimible del inventario de activos.
//
// Layout de la página A4 horizontal:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + total de activos  │  Fecha de generación   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Número | Nombre | Cant | Marca | Categoría | ...     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: cantidad total por condición                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"io"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Inventario-activos/internal/application/dto"
	"github.com/jhoicas/Inventario-activos/internal/application/report"
	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}

	// Colores de badge por DisplayMeta.Color.
	badgeColors = map[string]*props.Color{
		"success": {Red: 25, Green: 135, Blue: 84},
		"warning": {Red: 204, Green: 140, Blue: 0},
		"danger":  {Red: 200, Green: 35, Blue: 51},
	}
)

var _ report.Exporter = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.Exporter usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

func (g *MarotoReportGenerator) Format() report.Format { return report.FormatPDF }

func (g *MarotoReportGenerator) ContentType() string { return "application/pdf" }

// Export genera el PDF y lo escribe en w.
func (g *MarotoReportGenerator) Export(_ context.Context, w io.Writer, r report.Report) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(r.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(r.Rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(r.Rows)...)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("pdf: generar documento: %w", err)
	}
	_, err = w.Write(doc.GetBytes())
	return err
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r report.Report) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d activos", len(r.Rows)), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Número", 2, align.Left),
		h("Nombre", 3, align.Left),
		h("Cant.", 1, align.Right),
		h("Marca", 1, align.Left),
		h("Categoría", 1, align.Left),
		h("Sala", 1, align.Left),
		h("Condición", 1, align.Center),
		h("Fecha", 1, align.Center),
		h("Usuario", 1, align.Left),
	)
}

// tableRows: una fila por activo; la condición va con el color de su badge.
func tableRows(assets []dto.AssetResponse) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	rows := make([]core.Row, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, row.New(6).Add(
			cell(a.Number, 2, align.Left),
			cell(a.Name, 3, align.Left),
			cell(strconv.FormatInt(a.Quantity, 10), 1, align.Right),
			cell(nonEmpty(a.Brand, "-"), 1, align.Left),
			cell(nonEmpty(a.Category, "-"), 1, align.Left),
			cell(nonEmpty(a.Room, "-"), 1, align.Left),
			col.New(1).Add(text.New(a.Condition.Label(), props.Text{
				Size: 7.5, Align: align.Center, Top: 1, Style: fontstyle.Bold,
				Color: badgeColors[a.Condition.Meta().Color],
			})),
			cell(a.Date, 1, align.Center),
			cell(nonEmpty(a.User, "-"), 1, align.Left),
		))
	}
	return rows
}

// summaryRows: cantidad total de unidades por condición.
func summaryRows(assets []dto.AssetResponse) []core.Row {
	totals := make(map[entity.Condition]int64, len(entity.Conditions))
	for _, a := range assets {
		totals[a.Condition] += a.Quantity
	}
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New("RESUMEN POR CONDICIÓN", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}))),
	}
	for _, c := range entity.Conditions {
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(c.Label()+":", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: badgeColors[c.Meta().Color],
			})),
			col.New(2).Add(text.New(formatThousands(totals[c])+" unidades", props.Text{Size: 8})),
			col.New(8),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatThousands inserta puntos de miles. Ej: 1000000 → "1.000.000"
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	l := len(s)
	if l <= 3 {
		return s
	}
	buf := make([]byte, 0, l+l/3)
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
