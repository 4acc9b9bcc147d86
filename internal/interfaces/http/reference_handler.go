package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-activos/internal/application/usecase"
)

// ReferenceHandler opciones de marcas, categorías, salas y usuarios para los selectores.
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// Options godoc
// @Summary      Opciones de referencia
// @Tags         options
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "brand|category|room|user"
// @Success      200   {array}   entity.Option
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/options/{kind} [get]
func (h *ReferenceHandler) Options(c *fiber.Ctx) error {
	out, err := h.uc.Options(c.UserContext(), c.Params("kind"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
