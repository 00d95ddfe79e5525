package postgres

import (
	"context"
	"fmt"

	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// Asegura que GuestRepo implementa repository.GuestRepository.
var _ repository.GuestRepository = (*GuestRepo)(nil)

// GuestRepo implementación del puerto GuestRepository sobre PostgreSQL.
type GuestRepo struct {
	db DB
}

// NewGuestRepository construye el adaptador de persistencia para huéspedes.
func NewGuestRepository(db DB) *GuestRepo {
	return &GuestRepo{db: db}
}

const guestColumns = `id, company_id, name, phone, tax_id, address, created_at, updated_at`

// Create persiste un nuevo huésped.
func (r *GuestRepo) Create(guest *entity.Guest) error {
	query := `
		INSERT INTO guests (id, company_id, name, phone, tax_id, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		guest.ID, guest.CompanyID, guest.Name, guest.Phone,
		guest.TaxID, guest.Address, guest.CreatedAt, guest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert guest: %w", err)
	}
	return nil
}

// GetByID obtiene un huésped por ID; nil sin error si no existe.
func (r *GuestRepo) GetByID(id string) (*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id), "get guest")
}

// GetByTaxID busca un huésped por CPF; nil sin error si no existe. Puede
// haber más de una ficha con el mismo CPF (una estadía viva por otra empresa
// fuerza ficha nueva); se devuelve la más reciente.
func (r *GuestRepo) GetByTaxID(taxID string) (*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE tax_id = $1 ORDER BY updated_at DESC LIMIT 1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, taxID), "get guest by tax id")
}

// Update actualiza un huésped existente.
func (r *GuestRepo) Update(guest *entity.Guest) error {
	query := `
		UPDATE guests SET company_id = $2, name = $3, phone = $4, tax_id = $5, address = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		guest.ID, guest.CompanyID, guest.Name, guest.Phone,
		guest.TaxID, guest.Address, guest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update guest: %w", err)
	}
	return nil
}

func (r *GuestRepo) scanOne(row interface{ Scan(dest ...any) error }, op string) (*entity.Guest, error) {
	var g entity.Guest
	err := row.Scan(&g.ID, &g.CompanyID, &g.Name, &g.Phone, &g.TaxID, &g.Address, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &g, nil
}
