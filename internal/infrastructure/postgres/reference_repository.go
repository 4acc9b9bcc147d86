package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
	"github.com/jhoicas/Inventario-activos/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo lectura de marcas, categorías, salones y usuarios sobre PostgreSQL.
type ReferenceRepo struct {
	q Querier
}

// NewReferenceRepository construye el adaptador. Acepta pool o tx (Querier).
func NewReferenceRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q}
}

// ListOptions devuelve id → nombre ordenado por id.
func (r *ReferenceRepo) ListOptions(ctx context.Context, kind entity.ReferenceKind) ([]entity.Option, error) {
	table := kind.Table()
	if table == "" {
		return nil, fmt.Errorf("list options: tipo de referencia desconocido %q", kind)
	}
	// table proviene de una lista cerrada (ReferenceKind.Table), no de la entrada del usuario.
	rows, err := r.q.Query(ctx, `SELECT id, name FROM `+table+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()
	list := []entity.Option{}
	for rows.Next() {
		var o entity.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Exists indica si existe la fila con ese id.
func (r *ReferenceRepo) Exists(ctx context.Context, kind entity.ReferenceKind, id int64) (bool, error) {
	table := kind.Table()
	if table == "" {
		return false, fmt.Errorf("exists: tipo de referencia desconocido %q", kind)
	}
	var ok bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists %s: %w", table, err)
	}
	return ok, nil
}
