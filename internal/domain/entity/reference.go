package entity

// ReferenceKind tipo de entidad de referencia (solo lectura para el inventario de activos).
type ReferenceKind string

const (
	ReferenceBrand    ReferenceKind = "brand"
	ReferenceCategory ReferenceKind = "category"
	ReferenceRoom     ReferenceKind = "room"
	ReferenceUser     ReferenceKind = "user"
)

// ReferenceKinds todas las entidades de referencia.
var ReferenceKinds = []ReferenceKind{ReferenceBrand, ReferenceCategory, ReferenceRoom, ReferenceUser}

// Valid indica si k es un tipo conocido.
func (k ReferenceKind) Valid() bool {
	switch k {
	case ReferenceBrand, ReferenceCategory, ReferenceRoom, ReferenceUser:
		return true
	}
	return false
}

// Table nombre de la tabla que respalda el tipo. Vacío si el tipo no es válido.
func (k ReferenceKind) Table() string {
	switch k {
	case ReferenceBrand:
		return "brands"
	case ReferenceCategory:
		return "categories"
	case ReferenceRoom:
		return "rooms"
	case ReferenceUser:
		return "users"
	}
	return ""
}

// Option par id → nombre de una entidad de referencia (marca, categoría, salón o usuario).
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
