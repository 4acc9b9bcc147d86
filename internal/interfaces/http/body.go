package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-activos/internal/application/dto"
	"github.com/jhoicas/Inventario-activos/internal/domain"
)

// errMalformedBody cuerpo que no es un objeto JSON.
var errMalformedBody = errors.New("cuerpo inválido")

// bodyField destino de un campo JSON y mensaje si su tipo no corresponde.
type bodyField struct {
	name    string
	target  any
	message string
}

func assetRequestFields(in *dto.AssetRequest) []bodyField {
	const (
		msgText    = "debe ser texto"
		msgInteger = "debe ser un número entero"
	)
	return []bodyField{
		{"name", &in.Name, msgText},
		{"quantity", &in.Quantity, msgInteger},
		{"brand_id", &in.BrandID, msgInteger},
		{"category_id", &in.CategoryID, msgInteger},
		{"room_id", &in.RoomID, msgInteger},
		{"condition", &in.Condition, msgText},
		{"date", &in.Date, msgText},
		{"user_id", &in.UserID, msgInteger},
	}
}

// parseAssetRequest decodifica el cuerpo de alta/edición. Un campo con tipo incorrecto
// (ej. "quantity":"abc" o 1.5) no corta la petición: queda en Invalid y la validación
// lo informa junto con las demás fallas. Solo un JSON mal formado es errMalformedBody.
func parseAssetRequest(c *fiber.Ctx) (dto.AssetRequest, error) {
	var in dto.AssetRequest
	err := c.BodyParser(&in)
	if err == nil {
		return in, nil
	}
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return dto.AssetRequest{}, errMalformedBody
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return dto.AssetRequest{}, errMalformedBody
	}
	in = dto.AssetRequest{}
	for _, f := range assetRequestFields(&in) {
		value, ok := raw[f.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, f.target); err != nil {
			in.MarkInvalid(f.name, f.message)
		}
	}
	return in, nil
}

// parseBulkDelete decodifica {"ids":[...]}; ids con tipo incorrecto es una falla de campo.
func parseBulkDelete(c *fiber.Ctx) (dto.BulkDeleteRequest, error) {
	var in dto.BulkDeleteRequest
	err := c.BodyParser(&in)
	if err == nil {
		return in, nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		verr := &domain.ValidationError{}
		verr.Add("ids", "debe ser una lista de enteros")
		return in, verr
	}
	return in, errMalformedBody
}
