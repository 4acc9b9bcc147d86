// Package memory implementa los puertos de persistencia en memoria (STORAGE_DRIVER=memory).
// Sirve para desarrollo local y como doble de prueba de los casos de uso y handlers.
package memory

import (
	"sync"

	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
)

// Store estado compartido por los repositorios en memoria.
type Store struct {
	mu     sync.RWMutex
	refs   map[entity.ReferenceKind]map[int64]string
	assets map[int64]*entity.Asset
	order  []int64
	nextID int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	s := &Store{
		refs:   make(map[entity.ReferenceKind]map[int64]string, len(entity.ReferenceKinds)),
		assets: make(map[int64]*entity.Asset),
	}
	for _, k := range entity.ReferenceKinds {
		s.refs[k] = make(map[int64]string)
	}
	return s
}

// PutReference agrega o renombra una entidad de referencia.
func (s *Store) PutReference(kind entity.ReferenceKind, id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.refs[kind]; ok {
		m[id] = name
	}
}

// RemoveReference elimina una entidad de referencia sin tocar los activos que la usan.
func (s *Store) RemoveReference(kind entity.ReferenceKind, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.refs[kind], id)
}

// SeedDemo carga datos de referencia de ejemplo para desarrollo local.
func (s *Store) SeedDemo() {
	demo := map[entity.ReferenceKind][]string{
		entity.ReferenceBrand:    {"Lenovo", "HP", "Epson"},
		entity.ReferenceCategory: {"Computadores", "Muebles", "Proyectores"},
		entity.ReferenceRoom:     {"Sala 101", "Sala 102", "Laboratorio"},
		entity.ReferenceUser:     {"Administrador"},
	}
	for kind, names := range demo {
		for i, name := range names {
			s.PutReference(kind, int64(i+1), name)
		}
	}
}

func (s *Store) refName(kind entity.ReferenceKind, id int64) (string, bool) {
	name, ok := s.refs[kind][id]
	return name, ok
}

// withNames devuelve una copia del activo con los nombres de sus relaciones.
func (s *Store) withNames(a *entity.Asset) *entity.Asset {
	cp := *a
	cp.BrandName, _ = s.refName(entity.ReferenceBrand, a.BrandID)
	cp.CategoryName, _ = s.refName(entity.ReferenceCategory, a.CategoryID)
	cp.RoomName, _ = s.refName(entity.ReferenceRoom, a.RoomID)
	cp.UserName, _ = s.refName(entity.ReferenceUser, a.UserID)
	return &cp
}
