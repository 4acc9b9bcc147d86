package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-activos/internal/application/report"
	"github.com/jhoicas/Inventario-activos/internal/application/usecase"
)

// AssetHandler maneja las peticiones HTTP del inventario de activos (protegido).
type AssetHandler struct {
	uc     *usecase.AssetUseCase
	export *report.ExportUseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *usecase.AssetUseCase, export *report.ExportUseCase) *AssetHandler {
	return &AssetHandler{uc: uc, export: export}
}

// Create godoc
// @Summary      Crear activo
// @Description  El número de 18 caracteres se genera en el servidor. date por defecto hoy; user_id por defecto el usuario autenticado.
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssetRequest  true  "Datos del activo"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	in, err := parseAssetRequest(c)
	if err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Location("/api/assets/" + strconv.FormatInt(out.ID, 10))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener activo por ID
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del activo"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar activo
// @Description  Edición completa; el número no cambia.
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "ID del activo"
// @Param        body  body  dto.AssetRequest  true  "Datos del activo"
// @Success      200   {object}  dto.AssetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
	}
	in, err := parseAssetRequest(c)
	if err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar activo
// @Tags         assets
// @Security     Bearer
// @Param        id   path  int  true  "ID del activo"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BulkDelete godoc
// @Summary      Eliminar varios activos
// @Description  Los ids inexistentes se informan en not_found y no abortan el lote.
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkDeleteRequest  true  "IDs a eliminar"
// @Success      200   {object}  dto.BulkDeleteResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/assets/bulk-delete [post]
func (h *AssetHandler) BulkDelete(c *fiber.Ctx) error {
	in, err := parseBulkDelete(c)
	if errors.Is(err, errMalformedBody) {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.BulkDelete(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar activos
// @Description  Filtros repetibles o separados por coma. AND entre filtros, OR dentro de cada uno.
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        category_id  query  []int   false  "Categorías"  collectionFormat(csv)
// @Param        room_id      query  []int   false  "Salas"       collectionFormat(csv)
// @Param        brand_id     query  []int   false  "Marcas"      collectionFormat(csv)
// @Param        condition    query  []string false "Condiciones (new, used, damaged)" collectionFormat(csv)
// @Param        search       query  string  false  "Texto libre"
// @Param        sort         query  string  false  "number|name|quantity|brand|category|room|condition|date|user"
// @Param        direction    query  string  false  "asc|desc"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.AssetListResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	in, err := parseListRequest(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar activos
// @Description  Mismos filtros, búsqueda y orden que el listado, sin paginar.
// @Tags         assets
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  true  "csv|xlsx|pdf"
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/assets/export [get]
func (h *AssetHandler) Export(c *fiber.Ctx) error {
	in, err := parseListRequest(c)
	if err != nil {
		return respondError(c, err)
	}
	file, err := h.export.Export(c.UserContext(), c.Query("format", string(report.FormatCSV)), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Body)
}

// Conditions godoc
// @Summary      Condiciones de un activo
// @Description  Valor, etiqueta, color e ícono de cada condición.
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ConditionOption
// @Router       /api/assets/conditions [get]
func (h *AssetHandler) Conditions(c *fiber.Ctx) error {
	return c.JSON(h.uc.Conditions())
}
