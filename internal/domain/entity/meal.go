package entity

import "time"

// Tipos de comida.
const (
	MealLunch  = "LUNCH"
	MealDinner = "DINNER"
)

// MealTypeDisplay devuelve la etiqueta imprimible del tipo de comida.
func MealTypeDisplay(mealType string) string {
	switch mealType {
	case MealLunch:
		return "ALMUERZO"
	case MealDinner:
		return "CENA"
	default:
		return mealType
	}
}

// Meal es un ticket de comida. Inmutable una vez creado: el registro es el
// comprobante que luego concilia el informe de cierre.
type Meal struct {
	ID        string
	CompanyID string
	Name      string
	TaxID     string // CPF del comensal, opcional
	Type      string // MealLunch | MealDinner
	CreatedAt time.Time
}

// MealTicket es la vista de lectura de un ticket junto con el nombre de su
// empresa (join hecho por el repositorio). La usan reportes e impresión.
type MealTicket struct {
	Meal
	CompanyName string
}
