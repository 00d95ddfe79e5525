package postgres

import (
	"context"
	"fmt"

	"github.com/solnascente/frontdesk-api/internal/domain"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// Asegura que RoomRepo implementa repository.RoomRepository.
var _ repository.RoomRepository = (*RoomRepo)(nil)

// RoomRepo implementación del puerto RoomRepository sobre PostgreSQL.
type RoomRepo struct {
	db DB
}

// NewRoomRepository construye el adaptador de persistencia para habitaciones.
func NewRoomRepository(db DB) *RoomRepo {
	return &RoomRepo{db: db}
}

const roomColumns = `id, number, climate, is_maintenance, created_at, updated_at`

// Create persiste una nueva habitación.
func (r *RoomRepo) Create(room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, number, climate, is_maintenance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		room.ID, room.Number, room.Climate, room.IsMaintenance,
		room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

// GetByID obtiene una habitación por ID; nil sin error si no existe.
func (r *RoomRepo) GetByID(id string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id), "get room")
}

// GetByNumber obtiene una habitación por número; nil sin error si no existe.
func (r *RoomRepo) GetByNumber(number string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE number = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, number), "get room by number")
}

// GetForUpdate bloquea la fila de la habitación hasta el fin de la
// transacción. Fuera de una transacción el FOR UPDATE no retiene nada.
func (r *RoomRepo) GetForUpdate(id string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id), "lock room")
}

// List devuelve todas las habitaciones.
func (r *RoomRepo) List() ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var list []*entity.Room
	for rows.Next() {
		var room entity.Room
		if err := rows.Scan(&room.ID, &room.Number, &room.Climate, &room.IsMaintenance, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		list = append(list, &room)
	}
	return list, rows.Err()
}

// Update actualiza una habitación existente.
func (r *RoomRepo) Update(room *entity.Room) error {
	query := `
		UPDATE rooms SET number = $2, climate = $3, is_maintenance = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		room.ID, room.Number, room.Climate, room.IsMaintenance, room.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update room: %w", err)
	}
	return nil
}

// CreateBed persiste una cama nueva.
func (r *RoomRepo) CreateBed(bed *entity.Bed) error {
	query := `INSERT INTO beds (id, room_id, label, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(context.Background(), query, bed.ID, bed.RoomID, bed.Label, bed.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bed: %w", err)
	}
	return nil
}

// GetBedByID obtiene una cama por ID; nil sin error si no existe.
func (r *RoomRepo) GetBedByID(id string) (*entity.Bed, error) {
	query := `SELECT id, room_id, label, created_at FROM beds WHERE id = $1`
	var bed entity.Bed
	err := r.db.QueryRow(context.Background(), query, id).Scan(&bed.ID, &bed.RoomID, &bed.Label, &bed.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bed: %w", err)
	}
	return &bed, nil
}

// ListBeds devuelve todas las camas.
func (r *RoomRepo) ListBeds() ([]*entity.Bed, error) {
	return r.listBeds(`SELECT id, room_id, label, created_at FROM beds ORDER BY room_id, label`)
}

// ListBedsByRoom devuelve las camas de una habitación ordenadas por etiqueta.
func (r *RoomRepo) ListBedsByRoom(roomID string) ([]*entity.Bed, error) {
	return r.listBeds(`SELECT id, room_id, label, created_at FROM beds WHERE room_id = $1 ORDER BY label`, roomID)
}

func (r *RoomRepo) listBeds(query string, args ...any) ([]*entity.Bed, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list beds: %w", err)
	}
	defer rows.Close()

	var list []*entity.Bed
	for rows.Next() {
		var bed entity.Bed
		if err := rows.Scan(&bed.ID, &bed.RoomID, &bed.Label, &bed.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bed: %w", err)
		}
		list = append(list, &bed)
	}
	return list, rows.Err()
}

func (r *RoomRepo) scanOne(row interface{ Scan(dest ...any) error }, op string) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(&room.ID, &room.Number, &room.Climate, &room.IsMaintenance, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &room, nil
}
