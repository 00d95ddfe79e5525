package repository

import (
	"context"
	"time"

	"github.com/solnascente/frontdesk-api/internal/domain/entity"
)

// MealRepository define el puerto de persistencia para tickets de comida.
// Los tickets son inmutables: no hay Update ni Delete.
type MealRepository interface {
	Create(meal *entity.Meal) error
	// ListByRange devuelve los tickets con CreatedAt dentro de [from, to).
	// companyID vacío = todas las empresas.
	ListByRange(ctx context.Context, from, to time.Time, companyID string) ([]*entity.MealTicket, error)
	// CountByTaxIDAndRange cuenta tickets del CPF con CreatedAt dentro de
	// [from, to), separados por tipo.
	CountByTaxIDAndRange(ctx context.Context, taxID string, from, to time.Time) (lunch, dinner int, err error)
}
