package repository

import (
	"context"

	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
)

// ReferenceRepository puerto de solo lectura para marcas, categorías, salones y usuarios.
type ReferenceRepository interface {
	ListOptions(ctx context.Context, kind entity.ReferenceKind) ([]entity.Option, error)
	Exists(ctx context.Context, kind entity.ReferenceKind, id int64) (bool, error)
}
