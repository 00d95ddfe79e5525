package repository

import "github.com/solnascente/frontdesk-api/internal/domain/entity"

// RoomRepository define el puerto de persistencia para habitaciones y camas.
type RoomRepository interface {
	Create(room *entity.Room) error
	GetByID(id string) (*entity.Room, error)
	GetByNumber(number string) (*entity.Room, error)
	// GetForUpdate bloquea la fila de la habitación (SELECT FOR UPDATE).
	// Solo tiene efecto dentro de una transacción.
	GetForUpdate(id string) (*entity.Room, error)
	List() ([]*entity.Room, error)
	Update(room *entity.Room) error
	CreateBed(bed *entity.Bed) error
	GetBedByID(id string) (*entity.Bed, error)
	ListBeds() ([]*entity.Bed, error)
	ListBedsByRoom(roomID string) ([]*entity.Bed, error)
}
