package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-activos/internal/application/dto"
	"github.com/jhoicas/Inventario-activos/internal/application/report"
	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
	"github.com/jhoicas/Inventario-activos/internal/infrastructure/pdf"
)

func TestMarotoReportGenerator_GeneraPDF(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()
	r := report.Report{
		Title:       "Inventario de activos",
		GeneratedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Rows: []dto.AssetResponse{
			{Number: "000000000000000042", Name: "Laptop", Quantity: 1200, Brand: "Lenovo",
				Condition: entity.ConditionNew, Date: "2026-03-01"},
			{Number: "000000000000000043", Name: "Silla", Quantity: 4,
				Condition: entity.ConditionUsed, Date: "2026-03-02", User: "Ana"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, g.Export(context.Background(), &buf, r))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "debe ser un documento PDF")
	assert.Equal(t, report.FormatPDF, g.Format())
	assert.Equal(t, "application/pdf", g.ContentType())
}

func TestMarotoReportGenerator_SinActivos(t *testing.T) {
	var buf bytes.Buffer
	err := pdf.NewMarotoReportGenerator().Export(context.Background(), &buf, report.Report{Title: "Vacío", GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
