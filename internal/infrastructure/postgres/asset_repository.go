package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-activos/internal/domain"
	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
	"github.com/jhoicas/Inventario-activos/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

const assetSelect = `
		SELECT a.id, a.number, a.name, a.quantity, a.brand_id, a.category_id, a.room_id, a.user_id,
		       a.condition, a.date, a.created_at, a.updated_at,
		       COALESCE(b.name, ''), COALESCE(c.name, ''), COALESCE(r.name, ''), COALESCE(u.name, '')
		FROM assets a` + assetJoins

// LEFT JOIN: un nombre de referencia ausente llega vacío en vez de descartar el activo.
const assetJoins = `
		LEFT JOIN brands b     ON b.id = a.brand_id
		LEFT JOIN categories c ON c.id = a.category_id
		LEFT JOIN rooms r      ON r.id = a.room_id
		LEFT JOIN users u      ON u.id = a.user_id`

// sortColumns lista blanca de expresiones ORDER BY.
var sortColumns = map[repository.AssetSort]string{
	repository.SortDefault:   "a.id",
	repository.SortNumber:    "a.number",
	repository.SortName:      "lower(a.name)",
	repository.SortQuantity:  "a.quantity",
	repository.SortBrand:     "lower(b.name)",
	repository.SortCategory:  "lower(c.name)",
	repository.SortRoom:      "lower(r.name)",
	repository.SortCondition: "a.condition",
	repository.SortDate:      "a.date",
	repository.SortUser:      "lower(u.name)",
}

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de persistencia para activos. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

// Create persiste un nuevo activo y asigna su ID.
// Devuelve domain.ErrDuplicate si el número ya existe (constraint único).
func (r *AssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	query := `
		INSERT INTO assets (number, name, quantity, brand_id, category_id, room_id, user_id, condition, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		asset.Number, asset.Name, asset.Quantity, asset.BrandID, asset.CategoryID, asset.RoomID,
		asset.UserID, string(asset.Condition), asset.Date, asset.CreatedAt, asset.UpdatedAt,
	).Scan(&asset.ID)
	if err != nil {
		return mapWriteError("insert asset", err)
	}
	return nil
}

// GetByID obtiene un activo por ID con los nombres de sus relaciones.
func (r *AssetRepo) GetByID(ctx context.Context, id int64) (*entity.Asset, error) {
	a, err := scanAsset(r.q.QueryRow(ctx, assetSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return a, nil
}

// ExistsByNumber indica si ya existe un activo con ese número.
func (r *AssetRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM assets WHERE number = $1)`, number).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists asset number: %w", err)
	}
	return ok, nil
}

// Update actualiza los campos editables. No modifica number ni created_at.
func (r *AssetRepo) Update(ctx context.Context, asset *entity.Asset) error {
	query := `
		UPDATE assets SET name = $2, quantity = $3, brand_id = $4, category_id = $5, room_id = $6,
		       user_id = $7, condition = $8, date = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		asset.ID, asset.Name, asset.Quantity, asset.BrandID, asset.CategoryID, asset.RoomID,
		asset.UserID, string(asset.Condition), asset.Date, asset.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update asset", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un activo por ID. Devuelve false si no existía.
func (r *AssetRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete asset: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List aplica filtros (AND entre filtros, ANY dentro de cada uno), búsqueda ILIKE sobre
// número, nombre, cantidad y nombres de relaciones, orden y paginación. Devuelve también el total.
func (r *AssetRepo) List(ctx context.Context, q repository.AssetQuery) ([]*entity.Asset, int, error) {
	where, args := buildAssetWhere(q)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM assets a`+assetJoins+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count assets: %w", err)
	}

	query := assetSelect + where + orderBy(q)
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Asset, 0, q.Limit)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, a)
	}
	return list, total, rows.Err()
}

func buildAssetWhere(q repository.AssetQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(expr string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.ReplaceAll(expr, "?", "$"+strconv.Itoa(len(args))))
	}
	if len(q.Filter.CategoryIDs) > 0 {
		add("a.category_id = ANY(?)", q.Filter.CategoryIDs)
	}
	if len(q.Filter.RoomIDs) > 0 {
		add("a.room_id = ANY(?)", q.Filter.RoomIDs)
	}
	if len(q.Filter.BrandIDs) > 0 {
		add("a.brand_id = ANY(?)", q.Filter.BrandIDs)
	}
	if len(q.Filter.Conditions) > 0 {
		values := make([]string, 0, len(q.Filter.Conditions))
		for _, c := range q.Filter.Conditions {
			values = append(values, string(c))
		}
		add("a.condition = ANY(?)", values)
	}
	if q.Search != "" {
		add(`(a.number ILIKE ? OR a.name ILIKE ? OR a.quantity::text ILIKE ?
		      OR b.name ILIKE ? OR c.name ILIKE ? OR r.name ILIKE ? OR u.name ILIKE ?)`, likePattern(q.Search))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderBy(q repository.AssetQuery) string {
	col, ok := sortColumns[q.Sort]
	if !ok {
		col = sortColumns[repository.SortDefault]
	}
	dir := " ASC"
	if q.Desc {
		dir = " DESC"
	}
	if col == "a.id" {
		return " ORDER BY a.id" + dir
	}
	return " ORDER BY " + col + dir + ", a.id ASC"
}

func scanAsset(row pgx.Row) (*entity.Asset, error) {
	var (
		a         entity.Asset
		condition string
	)
	err := row.Scan(
		&a.ID, &a.Number, &a.Name, &a.Quantity, &a.BrandID, &a.CategoryID, &a.RoomID, &a.UserID,
		&condition, &a.Date, &a.CreatedAt, &a.UpdatedAt,
		&a.BrandName, &a.CategoryName, &a.RoomName, &a.UserName,
	)
	if err != nil {
		return nil, err
	}
	a.Condition = entity.Condition(condition)
	return &a, nil
}

func mapWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isConstraintViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConstraintViolation)
	}
	return fmt.Errorf("%s: %w", op, err)
}
