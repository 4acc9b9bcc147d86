package idgen_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-activos/internal/domain/inventory"
	"github.com/jhoicas/Inventario-activos/internal/infrastructure/idgen"
)

func TestSnowflakeGenerator_NumerosUnicosDe18(t *testing.T) {
	gen, err := idgen.NewSnowflakeGenerator(1)
	require.NoError(t, err)

	const workers, perWorker = 8, 500
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				n := gen.Next()
				mu.Lock()
				seen[n] = struct{}{}
				mu.Unlock()
				assert.True(t, inventory.ValidNumber(n), "número %q debe tener 18 caracteres", n)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*perWorker, "no debe haber números repetidos")
}

func TestNewSnowflakeGenerator_NodoInvalido(t *testing.T) {
	_, err := idgen.NewSnowflakeGenerator(4096)
	assert.Error(t, err)
}
