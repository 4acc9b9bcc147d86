package usecase

import (
	"context"

	"github.com/jhoicas/Inventario-activos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando un repositorio de activos atado a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(assets repository.AssetRepository) error) error
}

// Metrics instrumentación de los casos de uso de activos. nil equivale a no medir.
type Metrics interface {
	ObserveOperation(operation, result string)
	NumberCollision()
}

type noopMetrics struct{}

func (noopMetrics) ObserveOperation(string, string) {}
func (noopMetrics) NumberCollision()                {}
