package services

import "fmt"

// Los servicios devuelven tres clases de error recuperable; cualquier otro
// error es un fallo del almacén y sube envuelto con %w. Los controladores
// traducen cada clase a su código HTTP.

// ValidationError: entrada malformada o semánticamente inválida.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError: el recurso referenciado no existe.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError: la operación choca con el estado actual. Cuando el
// conflicto es "mesa con cuenta abierta", TabID trae la cuenta existente.
type ConflictError struct {
	Message string
	TabID   uint
}

func (e *ConflictError) Error() string {
	return e.Message
}
