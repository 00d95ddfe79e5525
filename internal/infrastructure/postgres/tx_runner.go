package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/solnascente/frontdesk-api/internal/application/reservation"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// Asegura que TxRunner implementa reservation.TxRunner.
var _ reservation.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Dentro de la tx, RoomRepo.GetForUpdate bloquea la fila
// de la habitación hasta el final de la transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(
	resRepo repository.ReservationRepository,
	guestRepo repository.GuestRepository,
	roomRepo repository.RoomRepository,
	companyRepo repository.CompanyRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	resRepo := NewReservationRepository(tx)
	guestRepo := NewGuestRepository(tx)
	roomRepo := NewRoomRepository(tx)
	companyRepo := NewCompanyRepository(tx)

	if err := fn(resRepo, guestRepo, roomRepo, companyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
