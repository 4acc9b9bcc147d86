package entity

import "fmt"

// Condition estado físico de un activo.
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionUsed    Condition = "used"
	ConditionDamaged Condition = "damaged"
)

// Conditions lista las condiciones válidas en orden de presentación.
var Conditions = []Condition{ConditionNew, ConditionUsed, ConditionDamaged}

// DisplayMeta color de badge e ícono para una condición.
type DisplayMeta struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Valid indica si c es una de las condiciones conocidas.
func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionDamaged:
		return true
	}
	return false
}

// Label nombre legible de la condición.
func (c Condition) Label() string {
	switch c {
	case ConditionNew:
		return "New"
	case ConditionUsed:
		return "Used"
	case ConditionDamaged:
		return "Damaged"
	}
	panic(fmt.Sprintf("entity: condición sin etiqueta: %q", string(c)))
}

// Meta devuelve color e ícono de la condición.
// Entra en pánico ante un valor fuera del enum: nunca se asigna un color por defecto.
func (c Condition) Meta() DisplayMeta {
	switch c {
	case ConditionNew:
		return DisplayMeta{Color: "success", Icon: "check-circle"}
	case ConditionUsed:
		return DisplayMeta{Color: "warning", Icon: "at-symbol"}
	case ConditionDamaged:
		return DisplayMeta{Color: "danger", Icon: "sparkles"}
	}
	panic(fmt.Sprintf("entity: condición sin metadatos de presentación: %q", string(c)))
}
