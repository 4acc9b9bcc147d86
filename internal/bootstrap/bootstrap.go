// Package bootstrap arma los casos de uso según la configuración (driver de almacenamiento,
// caché Redis, métricas). Lo comparten la API y la CLI.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inventario-activos/internal/application/report"
	"github.com/jhoicas/Inventario-activos/internal/application/usecase"
	"github.com/jhoicas/Inventario-activos/internal/domain/repository"
	"github.com/jhoicas/Inventario-activos/internal/infrastructure/cache"
	"github.com/jhoicas/Inventario-activos/internal/infrastructure/export"
	"github.com/jhoicas/Inventario-activos/internal/infrastructure/idgen"
	"github.com/jhoicas/Inventario-activos/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-activos/internal/infrastructure/metrics"
	"github.com/jhoicas/Inventario-activos/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-activos/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-activos/pkg/config"
	"github.com/jhoicas/Inventario-activos/pkg/logger"
)

// Container dependencias ya construidas.
type Container struct {
	AssetUC     *usecase.AssetUseCase
	ReferenceUC *usecase.ReferenceUseCase
	ExportUC    *report.ExportUseCase
	Metrics     *metrics.Metrics

	Pool     *pgxpool.Pool         // nil con STORAGE_DRIVER=memory
	Store    *memory.Store         // nil con STORAGE_DRIVER=postgres
	RefCache *cache.ReferenceCache // nil sin REDIS_ADDR

	closers []func()
}

// HealthCheck verifica la base de datos si la hay.
func (c *Container) HealthCheck(ctx context.Context) error {
	if c.Pool == nil {
		return nil
	}
	return c.Pool.Ping(ctx)
}

// Close libera conexiones en orden inverso de apertura.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build construye el contenedor. Si Redis no responde se sigue sin caché.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Container, error) {
	c := &Container{Metrics: metrics.New()}

	var (
		assets repository.AssetRepository
		refs   repository.ReferenceRepository
		tx     usecase.TxRunner
	)
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		c.Store = memory.NewStore()
		if cfg.Storage.SeedDemo {
			c.Store.SeedDemo()
		}
		assets = memory.NewAssetRepository(c.Store)
		refs = memory.NewReferenceRepository(c.Store)
		tx = memory.NewTxRunner(c.Store)
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		c.Pool = pool
		c.closers = append(c.closers, pool.Close)
		assets = postgres.NewAssetRepository(pool)
		refs = postgres.NewReferenceRepository(pool)
		tx = postgres.NewTxRunner(pool)
	}

	if cfg.Redis.Enabled() {
		rdb, err := cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, opciones sin caché")
		} else {
			c.closers = append(c.closers, func() { _ = rdb.Close() })
			c.RefCache = cache.NewReferenceCache(refs, rdb, cfg.Redis.TTL, *log.Component("cache"))
			refs = c.RefCache
		}
	}

	gen, err := idgen.NewSnowflakeGenerator(cfg.Number.NodeID)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.AssetUC = usecase.NewAssetUseCase(assets, refs, tx, gen, usecase.AssetConfig{
		MaxNumberAttempts: cfg.Number.MaxAttempts,
		Logger:            log.Component("assets"),
		Metrics:           c.Metrics,
	})
	c.ReferenceUC = usecase.NewReferenceUseCase(refs)
	c.ExportUC = report.NewExportUseCase(c.AssetUC, time.Now,
		export.CSVExporter{}, export.XLSXExporter{}, pdf.NewMarotoReportGenerator())
	return c, nil
}
