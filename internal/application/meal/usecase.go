// Package meal registra tickets de comida y dispara su impresión.
package meal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/solnascente/frontdesk-api/internal/application/dto"
	"github.com/solnascente/frontdesk-api/internal/domain"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
	"github.com/solnascente/frontdesk-api/pkg/logger"
)

// UseCase registra el ticket y luego lo imprime. El registro persiste aunque
// la impresora falle: el fallo se loguea y la respuesta lo reporta con
// printed=false, sin rollback.
type UseCase struct {
	mealRepo    repository.MealRepository
	companyRepo repository.CompanyRepository
	printer     TicketPrinter
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	mealRepo repository.MealRepository,
	companyRepo repository.CompanyRepository,
	printer TicketPrinter,
	log *logger.Logger,
) *UseCase {
	return &UseCase{mealRepo: mealRepo, companyRepo: companyRepo, printer: printer, log: log}
}

// Register persiste el ticket de comida y lo manda a imprimir.
func (uc *UseCase) Register(ctx context.Context, in dto.CreateMealRequest) (*dto.MealResponse, error) {
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	m := &entity.Meal{
		ID:        uuid.New().String(),
		CompanyID: company.ID,
		Name:      in.Name,
		TaxID:     in.TaxID,
		Type:      in.Type,
		CreatedAt: time.Now(),
	}
	if err := uc.mealRepo.Create(m); err != nil {
		return nil, err
	}

	printed := true
	ticket := &entity.MealTicket{Meal: *m, CompanyName: company.Name}
	if err := uc.printer.PrintTicket(ctx, ticket); err != nil {
		printed = false
		uc.log.Error().Err(err).
			Str("meal_id", m.ID).
			Str("type", m.Type).
			Msg("impresión del ticket de comida falló; el registro persiste")
	}

	return &dto.MealResponse{
		ID:        m.ID,
		Name:      m.Name,
		CompanyID: m.CompanyID,
		TaxID:     m.TaxID,
		Type:      m.Type,
		CreatedAt: m.CreatedAt,
		Printed:   printed,
	}, nil
}
