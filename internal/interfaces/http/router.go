package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-activos/internal/application/report"
	"github.com/jhoicas/Inventario-activos/internal/application/usecase"
	"github.com/jhoicas/Inventario-activos/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AssetUC     *usecase.AssetUseCase
	ReferenceUC *usecase.ReferenceUseCase
	ExportUC    *report.ExportUseCase
	Metrics     *metrics.Metrics // nil: sin /metrics
	HealthCheck func(ctx context.Context) error
	JWTSecret   string
	ServiceName string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}
	app.Get("/health", healthHandler(deps))

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Opciones de referencia para los selectores
	refHandler := NewReferenceHandler(deps.ReferenceUC)
	api.Get("/options/:kind", refHandler.Options)

	// Activos. Las rutas fijas van antes de /:id.
	assets := api.Group("/assets")
	h := NewAssetHandler(deps.AssetUC, deps.ExportUC)
	assets.Get("/conditions", h.Conditions)
	assets.Get("/export", h.Export)
	assets.Get("/", h.List)
	assets.Post("/", h.Create)
	assets.Post("/bulk-delete", RequireRole(RoleAdmin), h.BulkDelete)
	assets.Get("/:id", h.GetByID)
	assets.Put("/:id", h.Update)
	assets.Delete("/:id", RequireRole(RoleAdmin), h.Delete)
}

func healthHandler(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.HealthCheck != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := deps.HealthCheck(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": deps.ServiceName, "error": err.Error()})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	}
}
