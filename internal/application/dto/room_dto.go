package dto

import "time"

// CreateRoomRequest alta de habitación con sus camas.
type CreateRoomRequest struct {
	Number    string   `json:"number" validate:"required,max=10"`
	Climate   string   `json:"climate" validate:"required,oneof=AC FAN"`
	BedLabels []string `json:"bed_labels" validate:"required,min=1,dive,required,max=10"`
}

// AddBedRequest agrega una cama a una habitación existente.
type AddBedRequest struct {
	Label string `json:"label" validate:"required,max=10"`
}

// BedResponse representación de una cama.
type BedResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// RoomResponse representación de una habitación con sus camas.
type RoomResponse struct {
	ID            string        `json:"id"`
	Number        string        `json:"number"`
	Climate       string        `json:"climate"`
	IsMaintenance bool          `json:"is_maintenance"`
	Beds          []BedResponse `json:"beds"`
	CreatedAt     time.Time     `json:"created_at"`
}

// RoomListResponse listado de habitaciones.
type RoomListResponse struct {
	Items []RoomResponse `json:"items"`
}
