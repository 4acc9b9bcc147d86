// Package inventory contiene reglas de dominio del inventario de activos que no dependen
// de la persistencia: formato y validez del número de activo.
package inventory

import (
	"fmt"

	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
)

// numberModulus acota el número a NumberLength dígitos decimales.
const numberModulus int64 = 1_000_000_000_000_000_000

// NumberGenerator produce candidatos a número de activo. No garantiza unicidad:
// el caso de uso verifica contra el almacenamiento y reintenta.
type NumberGenerator interface {
	Next() string
}

// FormatNumber convierte un identificador numérico en un número de activo de 18 dígitos
// (relleno con ceros a la izquierda). Valores negativos usan el valor absoluto del resto (math.MinInt64 incluido).
func FormatNumber(n int64) string {
	r := n % numberModulus
	if r < 0 {
		r = -r
	}
	return fmt.Sprintf("%0*d", entity.NumberLength, r)
}

// ValidNumber indica si s tiene exactamente NumberLength caracteres.
func ValidNumber(s string) bool {
	return len(s) == entity.NumberLength
}
