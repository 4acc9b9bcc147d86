package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-activos/internal/infrastructure/export"
)

var importEncoding string

// assetctl import FILE
var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Importa activos desde un CSV (name,quantity,brand_id,category_id,room_id,condition[,date,user_id])",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		rows, err := export.ReadAssetCSV(f, importEncoding)
		if err != nil {
			return err
		}

		_, deps, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer deps.Close()

		res, err := deps.AssetUC.Import(cmd.Context(), actorID, rows)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), res)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d activos creados, %d filas con error\n", len(res.Created), len(res.Failed))
		for _, fail := range res.Failed {
			fmt.Fprintf(out, "  línea %d: %s", fail.Line, fail.Message)
			for _, fe := range fail.Fields {
				fmt.Fprintf(out, " [%s: %s]", fe.Field, fe.Message)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importEncoding, "encoding", export.EncodingUTF8, "utf-8 | latin1")
}
