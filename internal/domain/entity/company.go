package entity

import "time"

// Company representa la empresa a la que pertenecen huéspedes y tickets de
// comida. La regla de cohabitación de habitaciones se evalúa contra su ID.
type Company struct {
	ID        string
	Name      string // único
	TaxID     string // CNPJ/CPF, opcional
	Contact   string // nombre o teléfono de contacto, opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanyFallbackName empresa usada para huéspedes particulares (seed).
const CompanyFallbackName = "Particular"
