package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConstraintViolation = errors.New("violación de restricción en almacenamiento")
	ErrGenerationExhausted = errors.New("no se pudo generar un número de activo único")
)

// FieldError describe la falla de un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todas las fallas de campo de una petición (no solo la primera).
type ValidationError struct {
	Fields []FieldError
}

// Add registra una falla para el campo indicado. Un campo se reporta una sola vez.
func (e *ValidationError) Add(field, message string) {
	if e.Has(field) {
		return
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Has indica si el campo ya tiene una falla registrada.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Empty indica si no hay fallas registradas.
func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

// Err devuelve nil si no hay fallas, o el propio ValidationError.
func (e *ValidationError) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// FieldNames devuelve los nombres de los campos con falla, en orden de detección.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}
