package repository

import (
	"context"
	"time"

	"github.com/solnascente/frontdesk-api/internal/domain/entity"
)

// ReportRepository define las consultas read-only del informe de cierre.
// Nunca muta reservas ni tickets.
type ReportRepository interface {
	// ListStays devuelve las estancias cuyo intervalo [start, end-o-abierto]
	// intersecta [from, to). companyID vacío = todas las empresas.
	ListStays(ctx context.Context, from, to time.Time, companyID string) ([]entity.Stay, error)
}
