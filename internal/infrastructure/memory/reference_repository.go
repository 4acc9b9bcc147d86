package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
	"github.com/jhoicas/Inventario-activos/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo lectura de entidades de referencia en memoria.
type ReferenceRepo struct {
	s *Store
}

// NewReferenceRepository construye el repositorio sobre el store.
func NewReferenceRepository(s *Store) *ReferenceRepo {
	return &ReferenceRepo{s: s}
}

// ListOptions devuelve las opciones ordenadas por id.
func (r *ReferenceRepo) ListOptions(_ context.Context, kind entity.ReferenceKind) ([]entity.Option, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m := r.s.refs[kind]
	out := make([]entity.Option, 0, len(m))
	for id, name := range m {
		out = append(out, entity.Option{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Exists indica si existe la entidad.
func (r *ReferenceRepo) Exists(_ context.Context, kind entity.ReferenceKind, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.refName(kind, id)
	return ok, nil
}
