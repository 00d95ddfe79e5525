package postgres

import (
	"context"
	"fmt"

	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// Asegura que ReservationRepo implementa repository.ReservationRepository.
var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implementación del puerto ReservationRepository sobre
// PostgreSQL. El historial se guarda como JSONB dentro de la fila.
type ReservationRepo struct {
	db DB
}

// NewReservationRepository construye el adaptador de persistencia para reservas.
func NewReservationRepository(db DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

// Create persiste una nueva reserva con su historial inicial.
func (r *ReservationRepo) Create(res *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, guest_id, bed_id, status, start_date, end_date, has_luggage, history, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		res.ID, res.GuestID, res.BedID, res.Status, res.StartDate, res.EndDate,
		res.HasLuggage, res.History, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID; nil sin error si no existe.
func (r *ReservationRepo) GetByID(id string) (*entity.Reservation, error) {
	query := `
		SELECT id, guest_id, bed_id, status, start_date, end_date, has_luggage, history, created_at, updated_at
		FROM reservations WHERE id = $1`
	var res entity.Reservation
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&res.ID, &res.GuestID, &res.BedID, &res.Status, &res.StartDate, &res.EndDate,
		&res.HasLuggage, &res.History, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &res, nil
}

// Update actualiza la reserva completa, historial incluido. El historial solo
// crece: el caso de uso únicamente hace append.
func (r *ReservationRepo) Update(res *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET guest_id = $2, bed_id = $3, status = $4, start_date = $5, end_date = $6, has_luggage = $7, history = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		res.ID, res.GuestID, res.BedID, res.Status, res.StartDate, res.EndDate,
		res.HasLuggage, res.History, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	return nil
}

// Delete borra la reserva y su historial (cancelación de pre-reservas).
func (r *ReservationRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	return nil
}

const liveReservationQuery = `
	SELECT r.id, r.guest_id, r.bed_id, r.status, r.start_date, r.end_date, r.has_luggage, r.history, r.created_at, r.updated_at,
	       g.name, g.tax_id, g.company_id, c.name, b.room_id, rm.number, b.label
	FROM reservations r
	JOIN guests g    ON g.id = r.guest_id
	JOIN companies c ON c.id = g.company_id
	JOIN beds b      ON b.id = r.bed_id
	JOIN rooms rm    ON rm.id = b.room_id
	WHERE r.status IN ('PRE', 'ACTIVE')`

// ListLive devuelve todas las reservas vivas con huésped, empresa y ubicación.
func (r *ReservationRepo) ListLive() ([]*entity.LiveReservation, error) {
	return r.listLive(liveReservationQuery)
}

// ListLiveByRoom devuelve las reservas vivas de una habitación.
func (r *ReservationRepo) ListLiveByRoom(roomID string) ([]*entity.LiveReservation, error) {
	return r.listLive(liveReservationQuery+` AND b.room_id = $1`, roomID)
}

func (r *ReservationRepo) listLive(query string, args ...any) ([]*entity.LiveReservation, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list live reservations: %w", err)
	}
	defer rows.Close()

	var list []*entity.LiveReservation
	for rows.Next() {
		var lr entity.LiveReservation
		if err := rows.Scan(
			&lr.ID, &lr.GuestID, &lr.BedID, &lr.Status, &lr.StartDate, &lr.EndDate,
			&lr.HasLuggage, &lr.History, &lr.CreatedAt, &lr.UpdatedAt,
			&lr.GuestName, &lr.GuestTaxID, &lr.CompanyID, &lr.CompanyName,
			&lr.RoomID, &lr.RoomNumber, &lr.BedLabel,
		); err != nil {
			return nil, fmt.Errorf("scan live reservation: %w", err)
		}
		list = append(list, &lr)
	}
	return list, rows.Err()
}
