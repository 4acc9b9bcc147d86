package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
)

var optionsRefresh bool

// assetctl options KIND
var optionsCmd = &cobra.Command{
	Use:       "options KIND",
	Short:     "Lista marcas, categorías, salas o usuarios",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"brand", "category", "room", "user"},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, deps, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer deps.Close()

		// --refresh descarta la lista cacheada en Redis antes de leer.
		if kind := entity.ReferenceKind(args[0]); optionsRefresh && deps.RefCache != nil && kind.Valid() {
			if err := deps.RefCache.Invalidate(cmd.Context(), kind); err != nil {
				return fmt.Errorf("invalidar caché: %w", err)
			}
		}

		opts, err := deps.ReferenceUC.Options(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), opts)
		}
		for _, o := range opts {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", o.ID, o.Name)
		}
		return nil
	},
}

func init() {
	optionsCmd.Flags().BoolVar(&optionsRefresh, "refresh", false, "ignora la caché de Redis")
}
