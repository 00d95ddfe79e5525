// Package billing contiene el motor de conciliación del informe de cierre y
// los reportes exportables del hotel. Todo el paquete es read-only: nunca
// muta reservas ni tickets de comida.
package billing

import (
	"context"
	"time"

	"github.com/solnascente/frontdesk-api/internal/application/dto"
	"github.com/solnascente/frontdesk-api/internal/domain"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// ClosingReportUseCase concilia, para una ventana de fechas, los días
// ocupados y las comidas consumidas por huésped.
type ClosingReportUseCase struct {
	reportRepo repository.ReportRepository
	mealRepo   repository.MealRepository
}

// NewClosingReportUseCase construye el caso de uso.
func NewClosingReportUseCase(reportRepo repository.ReportRepository, mealRepo repository.MealRepository) *ClosingReportUseCase {
	return &ClosingReportUseCase{reportRepo: reportRepo, mealRepo: mealRepo}
}

// ClosingReport genera las líneas de facturación de la ventana [from, to]
// (fechas inclusivas). companyID vacío = todas las empresas.
//
// Por cada estancia que intersecta la ventana:
//
//	effStart = max(inicio de la estancia, from)
//	effEnd   = min(fin de la estancia o to, to)   (estancia abierta = hasta to)
//	días     = effEnd − effStart + 1 (en días, nunca negativo)
//
// Las comidas se cuentan por el CPF del huésped dentro de [effStart, effEnd].
// Una línea solo se emite con días > 0 o alguna comida > 0.
func (uc *ClosingReportUseCase) ClosingReport(ctx context.Context, from, to time.Time, companyID string) ([]dto.GuestBillingLine, error) {
	from = dateOnly(from)
	to = dateOnly(to)
	if to.Before(from) {
		return nil, domain.ErrValidation
	}

	stays, err := uc.reportRepo.ListStays(ctx, from, to.AddDate(0, 0, 1), companyID)
	if err != nil {
		return nil, err
	}

	lines := make([]dto.GuestBillingLine, 0, len(stays))
	for _, stay := range stays {
		effStart := dateOnly(stay.Start)
		if effStart.Before(from) {
			effStart = from
		}
		effEnd := to
		if stay.End != nil {
			if end := dateOnly(*stay.End); end.Before(effEnd) {
				effEnd = end
			}
		}

		days := inclusiveDays(effStart, effEnd)

		var lunch, dinner int
		if stay.GuestTaxID != "" && !effEnd.Before(effStart) {
			lunch, dinner, err = uc.mealRepo.CountByTaxIDAndRange(ctx, stay.GuestTaxID, effStart, effEnd.AddDate(0, 0, 1))
			if err != nil {
				return nil, err
			}
		}

		// Sin actividad en la ventana: no ensuciar el informe con ceros.
		if days <= 0 && lunch == 0 && dinner == 0 {
			continue
		}

		exit := to
		if stay.End != nil {
			exit = dateOnly(*stay.End)
		}
		lines = append(lines, dto.GuestBillingLine{
			TaxID:       stay.GuestTaxID,
			Name:        stay.GuestName,
			Company:     stay.CompanyName,
			Days:        days,
			LunchCount:  lunch,
			DinnerCount: dinner,
			EntryDate:   dateOnly(stay.Start),
			ExitDate:    exit,
		})
	}
	return lines, nil
}

// dateOnly normaliza un instante a la medianoche UTC de su fecha.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// inclusiveDays cuenta días entre dos fechas normalizadas, ambos extremos
// incluidos, con piso en cero.
func inclusiveDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
