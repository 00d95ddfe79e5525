package entity

import "time"

// Guest representa un huésped. Pertenece exactamente a una empresa.
type Guest struct {
	ID        string
	CompanyID string
	Name      string
	Phone     string
	TaxID     string // CPF, opcional
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
