package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Inventario-activos/internal/application/dto"
)

// Codificaciones aceptadas por ReadAssetCSV.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
)

// importRow columnas esperadas del CSV de importación. Todo se lee como texto: una celda
// que no convierte queda como falla de campo de su fila y no corta la lectura.
type importRow struct {
	Name       string `csv:"name"`
	Quantity   string `csv:"quantity"`
	BrandID    string `csv:"brand_id"`
	CategoryID string `csv:"category_id"`
	RoomID     string `csv:"room_id"`
	Condition  string `csv:"condition"`
	Date       string `csv:"date,omitempty"`
	UserID     string `csv:"user_id,omitempty"`
}

const msgInteger = "debe ser un número entero"

// ReadAssetCSV lee filas de activos. Con EncodingLatin1 decodifica ISO-8859-1 (exportaciones de Excel en Windows).
// Solo un CSV ilegible (encabezado, comillas) es error; las celdas inválidas quedan en AssetRequest.Invalid.
func ReadAssetCSV(r io.Reader, encoding string) ([]dto.AssetRequest, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf8":
	case EncodingLatin1, "iso-8859-1":
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	default:
		return nil, fmt.Errorf("csv: codificación no soportada %q", encoding)
	}

	var rows []importRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	out := make([]dto.AssetRequest, 0, len(rows))
	for _, row := range rows {
		in := dto.AssetRequest{
			Name:      row.Name,
			Condition: strings.ToLower(strings.TrimSpace(row.Condition)),
			Date:      strings.TrimSpace(row.Date),
		}
		if q, ok := parseCell(&in, "quantity", row.Quantity); ok {
			in.Quantity = &q
		}
		in.BrandID, _ = parseCell(&in, "brand_id", row.BrandID)
		in.CategoryID, _ = parseCell(&in, "category_id", row.CategoryID)
		in.RoomID, _ = parseCell(&in, "room_id", row.RoomID)
		in.UserID, _ = parseCell(&in, "user_id", row.UserID)
		out = append(out, in)
	}
	return out, nil
}

// parseCell convierte una celda entera. Vacía devuelve ok=false sin falla (la validación
// decide si era requerida); no numérica la marca inválida en in.
func parseCell(in *dto.AssetRequest, field, cell string) (int64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		in.MarkInvalid(field, msgInteger)
		return 0, false
	}
	return n, true
}
