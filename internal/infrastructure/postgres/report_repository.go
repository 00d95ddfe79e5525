package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// Asegura que ReportRepo implementa repository.ReportRepository.
var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el cierre de facturación.
type ReportRepo struct {
	db DB
}

// NewReportRepository construye el adaptador de consultas de reportes.
func NewReportRepository(db DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// ListStays devuelve las estadías que se solapan con la ventana [from, to).
// Incluye reservas vivas (end_date NULL) y finalizadas que tocan la ventana.
// companyID vacío significa todas las empresas.
func (r *ReportRepo) ListStays(ctx context.Context, from, to time.Time, companyID string) ([]entity.Stay, error) {
	query := `
		SELECT g.name, g.tax_id, g.company_id, c.name, r.start_date, r.end_date
		FROM reservations r
		JOIN guests g    ON g.id = r.guest_id
		JOIN companies c ON c.id = g.company_id
		WHERE r.start_date < $1 AND (r.end_date IS NULL OR r.end_date >= $2)`
	args := []any{to, from}
	if companyID != "" {
		query += ` AND g.company_id = $3`
		args = append(args, companyID)
	}
	query += ` ORDER BY c.name, g.name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stays: %w", err)
	}
	defer rows.Close()

	var stays []entity.Stay
	for rows.Next() {
		var s entity.Stay
		if err := rows.Scan(&s.GuestName, &s.GuestTaxID, &s.CompanyID, &s.CompanyName, &s.Start, &s.End); err != nil {
			return nil, fmt.Errorf("scan stay: %w", err)
		}
		stays = append(stays, s)
	}
	return stays, rows.Err()
}
