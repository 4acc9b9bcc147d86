package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-activos/internal/domain/inventory"
)

func TestFormatNumber_RellenaA18Digitos(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "000000000000000000"},
		{42, "000000000000000042"},
		{1_234_567_890_123_456_789, "234567890123456789"},
		{-7, "000000000000000007"},
		{math.MinInt64, "223372036854775808"},
		{math.MaxInt64, "223372036854775807"},
	}
	for _, tc := range cases {
		got := inventory.FormatNumber(tc.in)
		assert.Equal(t, tc.want, got)
		assert.True(t, inventory.ValidNumber(got), "el número formateado debe ser válido")
	}
}

func TestValidNumber(t *testing.T) {
	assert.True(t, inventory.ValidNumber("123456789012345678"))
	assert.False(t, inventory.ValidNumber("12345"))
	assert.False(t, inventory.ValidNumber("1234567890123456789"))
	assert.False(t, inventory.ValidNumber(""))
}
