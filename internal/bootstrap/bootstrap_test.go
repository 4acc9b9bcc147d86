package bootstrap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-activos/internal/application/dto"
	"github.com/jhoicas/Inventario-activos/internal/application/report"
	"github.com/jhoicas/Inventario-activos/internal/bootstrap"
	"github.com/jhoicas/Inventario-activos/pkg/config"
	"github.com/jhoicas/Inventario-activos/pkg/logger"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{Driver: config.StorageDriverMemory, SeedDemo: true},
		Number:  config.NumberConfig{NodeID: 3, MaxAttempts: 5},
	}
}

func TestBuild_Memoria(t *testing.T) {
	ctx := context.Background()
	c, err := bootstrap.Build(ctx, memoryConfig(), logger.Nop())
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.Pool)
	assert.Nil(t, c.RefCache)
	require.NotNil(t, c.Store)
	assert.NoError(t, c.HealthCheck(ctx))

	opts, err := c.ReferenceUC.Options(ctx, "room")
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	qty := int64(1)
	out, err := c.AssetUC.Create(ctx, 1, dto.AssetRequest{
		Name: "Proyector", Quantity: &qty, BrandID: 3, CategoryID: 3, RoomID: 3, Condition: "new",
	})
	require.NoError(t, err)
	assert.Equal(t, "Administrador", out.User)

	assert.Equal(t, []report.Format{report.FormatCSV, report.FormatXLSX, report.FormatPDF}, c.ExportUC.Formats())
}

func TestBuild_NodoInvalido(t *testing.T) {
	cfg := memoryConfig()
	cfg.Number.NodeID = 5000
	_, err := bootstrap.Build(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
