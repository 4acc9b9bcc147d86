package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-activos/internal/application/dto"
)

var listFlags struct {
	categories []int64
	rooms      []int64
	brands     []int64
	conditions []string
	search     string
	sort       string
	desc       bool
	limit      int
	offset     int
	all        bool
}

// assetctl list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista activos con filtros, búsqueda y orden",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, deps, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer deps.Close()

		in := dto.AssetListRequest{
			CategoryIDs: listFlags.categories,
			RoomIDs:     listFlags.rooms,
			BrandIDs:    listFlags.brands,
			Conditions:  listFlags.conditions,
			Search:      listFlags.search,
			Sort:        listFlags.sort,
			PageRequest: dto.PageRequest{Limit: listFlags.limit, Offset: listFlags.offset},
		}
		if listFlags.desc {
			in.Direction = "desc"
		}

		var (
			items []dto.AssetResponse
			total = -1
		)
		if listFlags.all {
			for item, err := range deps.AssetUC.All(cmd.Context(), in) {
				if err != nil {
					return err
				}
				items = append(items, item)
			}
		} else {
			res, err := deps.AssetUC.List(cmd.Context(), in)
			if err != nil {
				return err
			}
			items, total = res.Items, res.Page.Total
		}

		if asJSON {
			return printJSON(cmd.OutOrStdout(), items)
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNÚMERO\tNOMBRE\tCANT\tMARCA\tCATEGORÍA\tSALA\tCONDICIÓN\tFECHA\tUSUARIO")
		for _, a := range items {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				a.ID, a.Number, a.Name, a.Quantity, a.Brand, a.Category, a.Room, a.Condition.Label(), a.Date, a.User)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if total >= 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d de %d\n", len(items), total)
		}
		return nil
	},
}

var createFlags struct {
	name      string
	quantity  int64
	brand     int64
	category  int64
	room      int64
	condition string
	date      string
	user      int64
}

// assetctl create
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Crea un activo con número generado",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, deps, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer deps.Close()

		in := dto.AssetRequest{
			Name:       createFlags.name,
			BrandID:    createFlags.brand,
			CategoryID: createFlags.category,
			RoomID:     createFlags.room,
			Condition:  createFlags.condition,
			Date:       createFlags.date,
			UserID:     createFlags.user,
		}
		if cmd.Flags().Changed("quantity") {
			q := createFlags.quantity
			in.Quantity = &q
		}
		out, err := deps.AssetUC.Create(cmd.Context(), actorID, in)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), out)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "activo %d creado con número %s\n", out.ID, out.Number)
		return nil
	},
}

// assetctl delete ID [ID...]
var deleteCmd = &cobra.Command{
	Use:   "delete ID [ID...]",
	Short: "Elimina uno o varios activos (los ids inexistentes no abortan el lote)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, a := range args {
			id, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido %q", a)
			}
			ids = append(ids, id)
		}

		_, deps, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer deps.Close()

		out, err := deps.AssetUC.BulkDelete(cmd.Context(), dto.BulkDeleteRequest{IDs: ids})
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), out)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "eliminados: %v\nno encontrados: %v\n", out.Deleted, out.NotFound)
		return nil
	},
}

func init() {
	f := listCmd.Flags()
	f.Int64SliceVar(&listFlags.categories, "category", nil, "ids de categoría (repetible o separados por coma)")
	f.Int64SliceVar(&listFlags.rooms, "room", nil, "ids de sala")
	f.Int64SliceVar(&listFlags.brands, "brand", nil, "ids de marca")
	f.StringSliceVar(&listFlags.conditions, "condition", nil, "new, used, damaged")
	f.StringVar(&listFlags.search, "search", "", "texto libre")
	f.StringVar(&listFlags.sort, "sort", "", "number|name|quantity|brand|category|room|condition|date|user")
	f.BoolVar(&listFlags.desc, "desc", false, "orden descendente")
	f.IntVar(&listFlags.limit, "limit", dto.DefaultLimit, "tamaño de página")
	f.IntVar(&listFlags.offset, "offset", 0, "desplazamiento")
	f.BoolVar(&listFlags.all, "all", false, "recorre todas las páginas")

	c := createCmd.Flags()
	c.StringVar(&createFlags.name, "name", "", "nombre")
	c.Int64Var(&createFlags.quantity, "quantity", 0, "cantidad")
	c.Int64Var(&createFlags.brand, "brand", 0, "id de marca")
	c.Int64Var(&createFlags.category, "category", 0, "id de categoría")
	c.Int64Var(&createFlags.room, "room", 0, "id de sala")
	c.StringVar(&createFlags.condition, "condition", "", "new, used, damaged")
	c.StringVar(&createFlags.date, "date", "", "AAAA-MM-DD (por defecto hoy)")
	c.Int64Var(&createFlags.user, "user", 0, "id de usuario (por defecto --actor)")
}
