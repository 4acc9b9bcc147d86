package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-activos/pkg/config"
	"github.com/jhoicas/Inventario-activos/pkg/jwt"
)

var tokenRole string

// assetctl token --actor 1 --role admin
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Emite un Bearer token firmado con JWT_SECRET (desarrollo y scripts)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.JWT.Secret == "" {
			return errors.New("JWT_SECRET no configurado")
		}
		tok, err := jwt.Generate(cfg.JWT.Secret, actorID, tokenRole, cfg.JWT.Issuer, cfg.JWT.Expiration)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenRole, "role", "operador", "admin | operador")
}
