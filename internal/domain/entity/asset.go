package entity

import "time"

// NumberLength longitud exacta del número de un activo.
const NumberLength = 18

// Asset representa un activo del inventario (equipo, mueble, etc.) ubicado en un salón.
// Number se genera al crear y no cambia nunca; Date es solo fecha (sin hora).
type Asset struct {
	ID         int64
	Number     string
	Name       string
	Quantity   int64
	BrandID    int64
	CategoryID int64
	RoomID     int64
	UserID     int64
	Condition  Condition
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Nombres de las relaciones (belongsTo), resueltos en lectura.
	BrandName    string
	CategoryName string
	RoomName     string
	UserName     string
}

// DateOnly trunca t a la fecha calendario en su zona horaria.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
