package dto

import (
	"time"

	"github.com/solnascente/frontdesk-api/internal/domain/entity"
)

// GuestData datos del huésped en la creación y el check-in de una reserva.
// CompanyName es texto libre: la empresa se crea si no existe.
type GuestData struct {
	Name        string `json:"name" validate:"required,max=200"`
	CompanyName string `json:"company_name" validate:"required,max=200"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	TaxID       string `json:"tax_id" validate:"omitempty,max=14"`
	Address     string `json:"address" validate:"omitempty,max=500"`
}

// CreateReservationRequest crea una reserva (PRE o ACTIVE) sobre una cama.
type CreateReservationRequest struct {
	Guest GuestData `json:"guest" validate:"required"`
	BedID string    `json:"bed_id" validate:"required,uuid4"`
	IsPre bool      `json:"is_pre"`
}

// ConfirmCheckInRequest confirma el check-in de una pre-reserva, con los
// datos definitivos del huésped.
type ConfirmCheckInRequest struct {
	Guest GuestData `json:"guest" validate:"required"`
}

// ChangeRoomRequest traslada la reserva a otra cama.
type ChangeRoomRequest struct {
	NewBedID string `json:"new_bed_id" validate:"required,uuid4"`
}

// ReservationResponse representación de una reserva con su historial.
type ReservationResponse struct {
	ID         string                `json:"id"`
	GuestID    string                `json:"guest_id"`
	BedID      string                `json:"bed_id"`
	Status     string                `json:"status"`
	StartDate  time.Time             `json:"start_date"`
	EndDate    *time.Time            `json:"end_date,omitempty"`
	HasLuggage bool                  `json:"has_luggage"`
	History    []entity.HistoryEntry `json:"history"`
}

// AvailableBedResponse una cama elegible para reservar.
type AvailableBedResponse struct {
	BedID      string `json:"bed_id"`
	Label      string `json:"label"`
	RoomID     string `json:"room_id"`
	RoomNumber string `json:"room_number"`
	Climate    string `json:"climate"`
}
