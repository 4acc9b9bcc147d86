// Package validation adapta go-playground/validator a domain.ValidationError,
// reportando todas las fallas de campo con el nombre JSON del campo.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Inventario-activos/internal/domain"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		instance = v
	})
	return instance
}

// Struct valida s con sus tags `validate` y devuelve un ValidationError (posiblemente vacío).
// Nunca devuelve nil para que el caller pueda seguir agregando fallas.
func Struct(s any) *domain.ValidationError {
	verr := &domain.ValidationError{}
	err := get().Struct(s)
	if err == nil {
		return verr
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("_", err.Error())
		return verr
	}
	for _, fe := range fieldErrs {
		verr.Add(fieldName(fe), message(fe))
	}
	return verr
}

// fieldName usa el namespace sin el nombre del struct raíz (ej. "ids[0]").
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("máximo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser menor o igual a %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("requiere al menos %s elemento(s)", fe.Param())
		}
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor a %s", fe.Param())
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		return fmt.Sprintf("fecha inválida (formato %s)", fe.Param())
	}
	return "valor inválido (" + fe.Tag() + ")"
}
