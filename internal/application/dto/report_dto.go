package dto

import "time"

// GuestBillingLine línea del informe de cierre: días ocupados y comidas de un
// huésped dentro de la ventana del informe.
type GuestBillingLine struct {
	TaxID       string    `json:"tax_id"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Days        int       `json:"days"`
	LunchCount  int       `json:"lunch_count"`
	DinnerCount int       `json:"dinner_count"`
	EntryDate   time.Time `json:"entry_date"`
	ExitDate    time.Time `json:"exit_date"`
}

// OccupancyLine línea del informe de ocupación actual.
type OccupancyLine struct {
	RoomNumber  string    `json:"room_number"`
	BedLabel    string    `json:"bed_label"`
	GuestName   string    `json:"guest_name"`
	CompanyName string    `json:"company_name"`
	TaxID       string    `json:"tax_id"`
	Status      string    `json:"status"`
	CheckIn     time.Time `json:"check_in"`
	HasLuggage  bool      `json:"has_luggage"`
}

// FreeBedLine línea del informe de camas libres.
type FreeBedLine struct {
	RoomNumber string `json:"room_number"`
	BedLabel   string `json:"bed_label"`
	Climate    string `json:"climate"`
}

// MealHistoryLine línea del historial de comidas de un rango de fechas.
type MealHistoryLine struct {
	CreatedAt   time.Time `json:"created_at"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	CompanyName string    `json:"company_name"`
	TaxID       string    `json:"tax_id"`
}
