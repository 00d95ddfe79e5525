package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// Asegura que MealRepo implementa repository.MealRepository.
var _ repository.MealRepository = (*MealRepo)(nil)

// MealRepo implementación del puerto MealRepository sobre PostgreSQL.
type MealRepo struct {
	db DB
}

// NewMealRepository construye el adaptador de persistencia para comidas.
func NewMealRepository(db DB) *MealRepo {
	return &MealRepo{db: db}
}

// Create registra un consumo de comida.
func (r *MealRepo) Create(meal *entity.Meal) error {
	query := `
		INSERT INTO meals (id, company_id, name, tax_id, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		meal.ID, meal.CompanyID, meal.Name, meal.TaxID, meal.Type, meal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}
	return nil
}

// ListByRange devuelve los consumos registrados en [from, to), con el nombre
// de la empresa resuelto. companyID vacío significa todas las empresas.
func (r *MealRepo) ListByRange(ctx context.Context, from, to time.Time, companyID string) ([]*entity.MealTicket, error) {
	query := `
		SELECT m.id, m.company_id, m.name, m.tax_id, m.type, m.created_at, c.name
		FROM meals m
		JOIN companies c ON c.id = m.company_id
		WHERE m.created_at >= $1 AND m.created_at < $2`
	args := []any{from, to}
	if companyID != "" {
		query += ` AND m.company_id = $3`
		args = append(args, companyID)
	}
	query += ` ORDER BY m.created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	var list []*entity.MealTicket
	for rows.Next() {
		var t entity.MealTicket
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Name, &t.TaxID, &t.Type, &t.CreatedAt, &t.CompanyName); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// CountByTaxIDAndRange cuenta almuerzos y cenas de un documento en [from, to).
func (r *MealRepo) CountByTaxIDAndRange(ctx context.Context, taxID string, from, to time.Time) (int, int, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE type = $1),
		       COUNT(*) FILTER (WHERE type = $2)
		FROM meals
		WHERE tax_id = $3 AND created_at >= $4 AND created_at < $5`
	var lunch, dinner int
	err := r.db.QueryRow(ctx, query, entity.MealLunch, entity.MealDinner, taxID, from, to).Scan(&lunch, &dinner)
	if err != nil {
		return 0, 0, fmt.Errorf("count meals: %w", err)
	}
	return lunch, dinner, nil
}
