package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-activos/internal/domain/entity"
)

func TestConditionMeta(t *testing.T) {
	cases := []struct {
		cond  entity.Condition
		color string
		icon  string
	}{
		{entity.ConditionNew, "success", "check-circle"},
		{entity.ConditionUsed, "warning", "at-symbol"},
		{entity.ConditionDamaged, "danger", "sparkles"},
	}
	for _, tc := range cases {
		t.Run(string(tc.cond), func(t *testing.T) {
			meta := tc.cond.Meta()
			assert.Equal(t, tc.color, meta.Color)
			assert.Equal(t, tc.icon, meta.Icon)
		})
	}
}

// Un valor fuera del enum es un error de programación: no hay color por defecto.
func TestConditionMeta_ValorDesconocido_Panic(t *testing.T) {
	assert.Panics(t, func() { _ = entity.Condition("broken").Meta() })
	assert.Panics(t, func() { _ = entity.Condition("").Meta() })
}

func TestConditionValid(t *testing.T) {
	for _, c := range entity.Conditions {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, entity.Condition("broken").Valid())
	assert.False(t, entity.Condition("NEW").Valid())
}

func TestReferenceKind(t *testing.T) {
	assert.Equal(t, "brands", entity.ReferenceBrand.Table())
	assert.Equal(t, "categories", entity.ReferenceCategory.Table())
	assert.Equal(t, "rooms", entity.ReferenceRoom.Table())
	assert.Equal(t, "users", entity.ReferenceUser.Table())
	assert.False(t, entity.ReferenceKind("supplier").Valid())
	assert.Empty(t, entity.ReferenceKind("supplier").Table())
}
