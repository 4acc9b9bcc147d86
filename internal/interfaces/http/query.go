package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-activos/internal/application/dto"
	"github.com/jhoicas/Inventario-activos/internal/domain"
)

// queryValues junta parámetros repetidos y listas separadas por coma: ?x=1&x=2,3 → [1 2 3].
func queryValues(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func queryIDs(c *fiber.Ctx, key string, verr *domain.ValidationError) []int64 {
	values := queryValues(c, key)
	if len(values) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			verr.Add(key, "debe ser una lista de ids positivos")
			return nil
		}
		ids = append(ids, id)
	}
	return ids
}

func queryInt(c *fiber.Ctx, key string, def int, verr *domain.ValidationError) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		verr.Add(key, "debe ser un entero")
		return def
	}
	return n
}

// parseListRequest lee filtros, búsqueda, orden y paginación del query string.
func parseListRequest(c *fiber.Ctx) (dto.AssetListRequest, error) {
	var verr domain.ValidationError
	in := dto.AssetListRequest{
		CategoryIDs: queryIDs(c, "category_id", &verr),
		RoomIDs:     queryIDs(c, "room_id", &verr),
		BrandIDs:    queryIDs(c, "brand_id", &verr),
		Conditions:  queryValues(c, "condition"),
		Search:      c.Query("search"),
		Sort:        c.Query("sort"),
		Direction:   c.Query("direction"),
		PageRequest: dto.PageRequest{
			Limit:  queryInt(c, "limit", dto.DefaultLimit, &verr),
			Offset: queryInt(c, "offset", 0, &verr),
		},
	}
	return in, verr.Err()
}

// pathID lee :id como entero positivo.
func pathID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
