package memory

import (
	"context"

	"github.com/jhoicas/Inventario-activos/internal/application/usecase"
	"github.com/jhoicas/Inventario-activos/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner serializa fn con el lock de escritura del store. No hay rollback:
// los cambios hechos antes de un error se conservan.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con un repositorio que opera bajo el lock ya tomado.
func (r *TxRunner) Run(_ context.Context, fn func(assets repository.AssetRepository) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(&AssetRepo{s: r.s, locked: true})
}
