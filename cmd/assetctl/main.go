// Command assetctl administra el inventario de activos desde la terminal.
//
//	assetctl migrate
//	assetctl list --category 3 --search laptop
//	assetctl import activos.csv --encoding latin1
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "assetctl",
	Short:         "CLI del inventario de activos",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&actorID, "actor", 1, "usuario que ejecuta la operación (user_id por defecto)")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "salida JSON")

	// Base de datos
	rootCmd.AddCommand(migrateCmd)

	// Activos
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(optionsCmd)

	// Acceso
	rootCmd.AddCommand(tokenCmd)
}
