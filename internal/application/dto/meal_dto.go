package dto

import "time"

// CreateMealRequest registra un ticket de comida y lo manda a imprimir.
type CreateMealRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	CompanyID string `json:"company_id" validate:"required,uuid4"`
	TaxID     string `json:"tax_id" validate:"omitempty,max=14"`
	Type      string `json:"type" validate:"required,oneof=LUNCH DINNER"`
}

// MealResponse ticket registrado. Printed indica si la impresión salió bien;
// el registro persiste aunque sea false.
type MealResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CompanyID string    `json:"company_id"`
	TaxID     string    `json:"tax_id,omitempty"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Printed   bool      `json:"printed"`
}
