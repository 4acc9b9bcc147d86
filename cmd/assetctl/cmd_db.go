package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-activos/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-activos/pkg/config"
	"github.com/jhoicas/Inventario-activos/pkg/logger"
)

// assetctl migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones pendientes de PostgreSQL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Storage.Driver != config.StorageDriverPostgres {
			return errors.New("migrate requiere STORAGE_DRIVER=postgres")
		}
		log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

		pool, err := postgres.NewPool(cmd.Context(), cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()

		n, err := postgres.Migrate(cmd.Context(), pool, log.Zerolog())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d migraciones aplicadas\n", n)
		return nil
	},
}
