package dto

import "time"

// CreateCompanyRequest alta de empresa.
type CreateCompanyRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	TaxID   string `json:"tax_id" validate:"omitempty,max=20"`
	Contact string `json:"contact" validate:"omitempty,max=200"`
}

// UpdateCompanyRequest edición de empresa.
type UpdateCompanyRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	TaxID   string `json:"tax_id" validate:"omitempty,max=20"`
	Contact string `json:"contact" validate:"omitempty,max=200"`
}

// CompanyResponse representación de una empresa en respuestas.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
}
