package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrValidation   = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("cama no disponible para la empresa")
	ErrInvalidState = errors.New("transición de estado no permitida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrEmailExists  = errors.New("el email ya está registrado")
)
