package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// NotFoundError indica que el recurso referenciado no existe o que una consulta no devolvió filas.
// Resource/Field/Value se llenan cuando la búsqueda fue por identificador.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
	Message  string
}

// NewNotFound construye el error para un recurso buscado por un campo concreto.
func NewNotFound(resource, field string, value any) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// NewEmptyResult construye el error para listados y búsquedas sin resultados.
func NewEmptyResult(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("no existe %s con %s = %v", e.Resource, e.Field, e.Value)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError indica que se violó una regla de unicidad.
type ConflictError struct {
	Message string
}

// NewConflict construye un ConflictError con el mensaje dado.
func NewConflict(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// InvalidInput envuelve ErrInvalidInput con el detalle del campo rechazado.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
