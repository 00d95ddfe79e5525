package dto

import "time"

// DashboardReservation reserva viva mostrada en la tarjeta de una cama.
type DashboardReservation struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	GuestName   string    `json:"guest_name"`
	CompanyName string    `json:"company_name"`
	StartDate   time.Time `json:"start_date"`
	HasLuggage  bool      `json:"has_luggage"`
}

// DashboardBed cama con su reserva viva (o ninguna).
type DashboardBed struct {
	BedID       string                `json:"bed_id"`
	Label       string                `json:"label"`
	Reservation *DashboardReservation `json:"reservation,omitempty"`
}

// DashboardRoom habitación con estado resuelto y sus camas.
type DashboardRoom struct {
	RoomID        string         `json:"room_id"`
	Number        string         `json:"number"`
	Climate       string         `json:"climate"`
	IsMaintenance bool           `json:"is_maintenance"`
	StatusCode    string         `json:"status_code"`
	DisplayClass  string         `json:"display_class"`
	Beds          []DashboardBed `json:"beds"`
}

// DashboardResponse vista completa del panel, en orden numérico de habitación.
type DashboardResponse struct {
	Rooms []DashboardRoom `json:"rooms"`
}
