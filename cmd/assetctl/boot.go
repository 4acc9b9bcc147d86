package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/jhoicas/Inventario-activos/internal/bootstrap"
	"github.com/jhoicas/Inventario-activos/pkg/config"
	"github.com/jhoicas/Inventario-activos/pkg/logger"
)

var (
	actorID int64
	asJSON  bool
)

// boot carga configuración y dependencias. Los logs van a stderr para no ensuciar la salida.
func boot(ctx context.Context) (*config.Config, *bootstrap.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})
	deps, err := bootstrap.Build(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, deps, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
