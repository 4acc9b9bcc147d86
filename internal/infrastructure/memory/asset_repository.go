package memory

import (
	"context"
	"slices"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Inventario-activos/internal/domain"
	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
	"github.com/jhoicas/Inventario-activos/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo repositorio de activos en memoria. Con locked=true asume que el caller
// (TxRunner) ya tiene el lock del store.
type AssetRepo struct {
	s      *Store
	locked bool
}

// NewAssetRepository construye el repositorio sobre el store.
func NewAssetRepository(s *Store) *AssetRepo {
	return &AssetRepo{s: s}
}

func (r *AssetRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *AssetRepo) rlock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

// Create persiste el activo y le asigna ID. domain.ErrDuplicate si el número ya existe;
// domain.ErrConstraintViolation si alguna referencia no existe.
func (r *AssetRepo) Create(_ context.Context, asset *entity.Asset) error {
	defer r.lock()()
	for _, a := range r.s.assets {
		if a.Number == asset.Number {
			return domain.ErrDuplicate
		}
	}
	if !r.referencesExist(asset) {
		return domain.ErrConstraintViolation
	}
	r.s.nextID++
	asset.ID = r.s.nextID
	cp := *asset
	r.s.assets[cp.ID] = &cp
	r.s.order = append(r.s.order, cp.ID)
	return nil
}

// GetByID obtiene un activo por ID (nil, nil si no existe).
func (r *AssetRepo) GetByID(_ context.Context, id int64) (*entity.Asset, error) {
	defer r.rlock()()
	a, ok := r.s.assets[id]
	if !ok {
		return nil, nil
	}
	return r.s.withNames(a), nil
}

// ExistsByNumber indica si algún activo tiene ese número.
func (r *AssetRepo) ExistsByNumber(_ context.Context, number string) (bool, error) {
	defer r.rlock()()
	for _, a := range r.s.assets {
		if a.Number == number {
			return true, nil
		}
	}
	return false, nil
}

// Update reemplaza los campos editables. Number y CreatedAt no cambian.
func (r *AssetRepo) Update(_ context.Context, asset *entity.Asset) error {
	defer r.lock()()
	current, ok := r.s.assets[asset.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if !r.referencesExist(asset) {
		return domain.ErrConstraintViolation
	}
	cp := *asset
	cp.Number = current.Number
	cp.CreatedAt = current.CreatedAt
	r.s.assets[cp.ID] = &cp
	return nil
}

// Delete elimina el activo; false si no existía.
func (r *AssetRepo) Delete(_ context.Context, id int64) (bool, error) {
	defer r.lock()()
	if _, ok := r.s.assets[id]; !ok {
		return false, nil
	}
	delete(r.s.assets, id)
	r.s.order = slices.DeleteFunc(r.s.order, func(v int64) bool { return v == id })
	return true, nil
}

// List aplica filtros, búsqueda, orden y paginación con la misma semántica que el adaptador PostgreSQL.
func (r *AssetRepo) List(_ context.Context, q repository.AssetQuery) ([]*entity.Asset, int, error) {
	defer r.rlock()()
	fold := cases.Fold()
	term := fold.String(q.Search)

	matched := make([]*entity.Asset, 0, len(r.s.order))
	for _, id := range r.s.order {
		a := r.s.withNames(r.s.assets[id])
		if !matchesFilter(a, q.Filter) {
			continue
		}
		if term != "" && !matchesSearch(a, term) {
			continue
		}
		matched = append(matched, a)
	}

	if q.Sort != repository.SortDefault || q.Desc {
		sort.SliceStable(matched, func(i, j int) bool {
			c := compare(matched[i], matched[j], q.Sort)
			if c == 0 {
				return matched[i].ID < matched[j].ID
			}
			if q.Desc {
				return c > 0
			}
			return c < 0
		})
	}

	total := len(matched)
	start := min(max(q.Offset, 0), total)
	end := total
	if q.Limit > 0 {
		end = min(start+q.Limit, total)
	}
	return matched[start:end], total, nil
}

func (r *AssetRepo) referencesExist(a *entity.Asset) bool {
	checks := []struct {
		kind entity.ReferenceKind
		id   int64
	}{
		{entity.ReferenceBrand, a.BrandID},
		{entity.ReferenceCategory, a.CategoryID},
		{entity.ReferenceRoom, a.RoomID},
		{entity.ReferenceUser, a.UserID},
	}
	for _, c := range checks {
		if _, ok := r.s.refName(c.kind, c.id); !ok {
			return false
		}
	}
	return true
}

func matchesFilter(a *entity.Asset, f repository.AssetFilter) bool {
	if len(f.CategoryIDs) > 0 && !slices.Contains(f.CategoryIDs, a.CategoryID) {
		return false
	}
	if len(f.RoomIDs) > 0 && !slices.Contains(f.RoomIDs, a.RoomID) {
		return false
	}
	if len(f.BrandIDs) > 0 && !slices.Contains(f.BrandIDs, a.BrandID) {
		return false
	}
	if len(f.Conditions) > 0 && !slices.Contains(f.Conditions, a.Condition) {
		return false
	}
	return true
}

// matchesSearch: basta con que una columna contenga el término (OR entre columnas).
func matchesSearch(a *entity.Asset, term string) bool {
	fold := cases.Fold()
	columns := []string{
		a.Number, a.Name, strconv.FormatInt(a.Quantity, 10),
		a.BrandName, a.CategoryName, a.RoomName, a.UserName,
	}
	for _, col := range columns {
		if strings.Contains(fold.String(col), term) {
			return true
		}
	}
	return false
}

func compare(a, b *entity.Asset, s repository.AssetSort) int {
	fold := cases.Fold()
	str := func(x, y string) int { return strings.Compare(fold.String(x), fold.String(y)) }
	switch s {
	case repository.SortNumber:
		return strings.Compare(a.Number, b.Number)
	case repository.SortName:
		return str(a.Name, b.Name)
	case repository.SortQuantity:
		return cmpInt(a.Quantity, b.Quantity)
	case repository.SortBrand:
		return str(a.BrandName, b.BrandName)
	case repository.SortCategory:
		return str(a.CategoryName, b.CategoryName)
	case repository.SortRoom:
		return str(a.RoomName, b.RoomName)
	case repository.SortCondition:
		return strings.Compare(string(a.Condition), string(b.Condition))
	case repository.SortDate:
		return a.Date.Compare(b.Date)
	case repository.SortUser:
		return str(a.UserName, b.UserName)
	}
	return cmpInt(a.ID, b.ID)
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
