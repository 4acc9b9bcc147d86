package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-activos/internal/application/dto"
	"github.com/jhoicas/Inventario-activos/internal/application/validation"
)

func ptr(v int64) *int64 { return &v }

func TestStruct_EntradaValida_SinFallas(t *testing.T) {
	in := dto.AssetRequest{
		Name: "Laptop", Quantity: ptr(0), BrandID: 1, CategoryID: 1, RoomID: 1,
		Condition: "new", Date: "2026-01-31",
	}
	verr := validation.Struct(in)
	assert.True(t, verr.Empty(), "no debe haber fallas: %v", verr.Fields)
	assert.NoError(t, verr.Err())
}

func TestStruct_ReportaTodasLasFallas(t *testing.T) {
	in := dto.AssetRequest{
		Name:      "",
		Quantity:  ptr(-1),
		Condition: "broken",
		Date:      "31/01/2026",
		UserID:    -3,
	}
	verr := validation.Struct(in)
	require.Error(t, verr.Err())
	assert.ElementsMatch(t,
		[]string{"name", "quantity", "brand_id", "category_id", "room_id", "condition", "date", "user_id"},
		verr.FieldNames())
}

func TestStruct_CantidadAusente(t *testing.T) {
	in := dto.AssetRequest{Name: "Silla", BrandID: 1, CategoryID: 1, RoomID: 1, Condition: "used"}
	verr := validation.Struct(in)
	assert.Equal(t, []string{"quantity"}, verr.FieldNames())
}

func TestStruct_NombreMuyLargo(t *testing.T) {
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	in := dto.AssetRequest{Name: string(long), Quantity: ptr(1), BrandID: 1, CategoryID: 1, RoomID: 1, Condition: "new"}
	verr := validation.Struct(in)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "name", verr.Fields[0].Field)
	assert.Contains(t, verr.Fields[0].Message, "255")
}

func TestStruct_BulkDeleteSinIDs(t *testing.T) {
	verr := validation.Struct(dto.BulkDeleteRequest{})
	assert.Equal(t, []string{"ids"}, verr.FieldNames())
}
