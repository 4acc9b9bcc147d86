package repository

import (
	"context"

	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
)

// AssetSort columna de ordenamiento de activos.
type AssetSort string

const (
	SortDefault   AssetSort = ""
	SortNumber    AssetSort = "number"
	SortName      AssetSort = "name"
	SortQuantity  AssetSort = "quantity"
	SortBrand     AssetSort = "brand"
	SortCategory  AssetSort = "category"
	SortRoom      AssetSort = "room"
	SortCondition AssetSort = "condition"
	SortDate      AssetSort = "date"
	SortUser      AssetSort = "user"
)

// Valid indica si s es una columna ordenable (SortDefault incluido).
func (s AssetSort) Valid() bool {
	switch s {
	case SortDefault, SortNumber, SortName, SortQuantity, SortBrand, SortCategory,
		SortRoom, SortCondition, SortDate, SortUser:
		return true
	}
	return false
}

// AssetFilter filtros de selección múltiple: AND entre filtros, OR dentro de cada uno.
// Un slice vacío no restringe.
type AssetFilter struct {
	CategoryIDs []int64
	RoomIDs     []int64
	BrandIDs    []int64
	Conditions  []entity.Condition
}

// AssetQuery consulta de listado. Sin Sort se ordena por orden de creación (id).
type AssetQuery struct {
	Filter AssetFilter
	Search string
	Sort   AssetSort
	Desc   bool
	Limit  int
	Offset int
}

// AssetRepository define el puerto de persistencia para Asset (DIP).
// GetByID devuelve nil, nil si no existe.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id int64) (*entity.Asset, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	Update(ctx context.Context, asset *entity.Asset) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, q AssetQuery) ([]*entity.Asset, int, error)
}
