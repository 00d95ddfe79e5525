package reservation

import (
	"context"

	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// TxRunner ejecuta una función con repositorios atados a una misma
// transacción. La implementación (infrastructure/postgres) hace Commit si fn
// devuelve nil y Rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		resRepo repository.ReservationRepository,
		guestRepo repository.GuestRepository,
		roomRepo repository.RoomRepository,
		companyRepo repository.CompanyRepository,
	) error) error
}
