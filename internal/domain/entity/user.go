package entity

import "time"

// Roles del personal. Solo admin puede generar el informe de cierre.
const (
	RoleAdmin     = "admin"
	RoleReception = "recepcion"
)

// User es un usuario del personal del hotel. Su Name se usa como actor en el
// historial de auditoría de las reservas.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // RoleAdmin | RoleReception
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
