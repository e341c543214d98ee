package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrTaskLimitReached   = errors.New("límite de tareas del plan alcanzado")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
)

// ValidationError agrupa TODAS las violaciones de precondición de una operación,
// campo por campo, para que el frontend pueda marcarlas de una sola vez.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye un error de validación vacío; se llena con Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add registra una violación para un campo. Si el campo ya tiene mensaje, lo conserva.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// HasErrors indica si se registró al menos una violación.
func (e *ValidationError) HasErrors() bool { return len(e.Fields) > 0 }

// ErrOrNil devuelve el error si hay violaciones, o nil para encadenar en los use cases.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validación fallida"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// AsValidation extrae un *ValidationError de la cadena de errores, si lo hay.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
