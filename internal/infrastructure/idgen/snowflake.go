// Package idgen genera candidatos a número de activo con Snowflake (bwmarrin/snowflake).
package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"

	"github.com/jhoicas/Inventario-activos/internal/domain/inventory"
)

var _ inventory.NumberGenerator = (*SnowflakeGenerator)(nil)

// SnowflakeGenerator produce números de 18 dígitos a partir de IDs Snowflake del nodo.
// Los bits bajos (nodo + secuencia) se conservan al acotar a 18 dígitos, así que dos
// números del mismo nodo solo chocan tras varios años; la verificación contra la DB cubre el resto.
type SnowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeGenerator crea el generador para el nodo indicado (0..1023).
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	return &SnowflakeGenerator{node: node}, nil
}

// Next devuelve el siguiente candidato.
func (g *SnowflakeGenerator) Next() string {
	return inventory.FormatNumber(g.node.Generate().Int64())
}
