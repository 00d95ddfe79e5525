package repository

import "github.com/solnascente/frontdesk-api/internal/domain/entity"

// ReservationRepository define el puerto de persistencia para reservas.
// Las vistas ListLive* devuelven el join con huésped y empresa que necesitan
// el resolver de disponibilidad y el dashboard.
type ReservationRepository interface {
	Create(res *entity.Reservation) error
	GetByID(id string) (*entity.Reservation, error)
	Update(res *entity.Reservation) error
	// Delete borra la reserva y su historial. Solo la usa la cancelación de
	// pre-reservas; el historial se pierde con la fila.
	Delete(id string) error
	ListLive() ([]*entity.LiveReservation, error)
	ListLiveByRoom(roomID string) ([]*entity.LiveReservation, error)
}
