package repository

import "github.com/solnascente/frontdesk-api/internal/domain/entity"

// GuestRepository define el puerto de persistencia para huéspedes.
type GuestRepository interface {
	Create(guest *entity.Guest) error
	GetByID(id string) (*entity.Guest, error)
	// GetByTaxID busca por CPF; devuelve nil sin error si no existe.
	GetByTaxID(taxID string) (*entity.Guest, error)
	Update(guest *entity.Guest) error
}
