package billing

import (
	"context"
	"time"

	"github.com/solnascente/frontdesk-api/internal/application/dto"
	"github.com/solnascente/frontdesk-api/internal/application/reservation"
	"github.com/solnascente/frontdesk-api/internal/domain"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// ReportsUseCase reportes operativos exportables: ocupación actual, camas
// libres e historial de comidas.
type ReportsUseCase struct {
	resRepo      repository.ReservationRepository
	mealRepo     repository.MealRepository
	availability *reservation.AvailabilityUseCase
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	resRepo repository.ReservationRepository,
	mealRepo repository.MealRepository,
	availability *reservation.AvailabilityUseCase,
) *ReportsUseCase {
	return &ReportsUseCase{resRepo: resRepo, mealRepo: mealRepo, availability: availability}
}

// Occupancy devuelve una línea por reserva viva: quién está en qué cama.
func (uc *ReportsUseCase) Occupancy() ([]dto.OccupancyLine, error) {
	live, err := uc.resRepo.ListLive()
	if err != nil {
		return nil, err
	}
	lines := make([]dto.OccupancyLine, 0, len(live))
	for _, lr := range live {
		lines = append(lines, dto.OccupancyLine{
			RoomNumber:  lr.RoomNumber,
			BedLabel:    lr.BedLabel,
			GuestName:   lr.GuestName,
			CompanyName: lr.CompanyName,
			TaxID:       lr.GuestTaxID,
			Status:      lr.Status,
			CheckIn:     lr.StartDate,
			HasLuggage:  lr.HasLuggage,
		})
	}
	return lines, nil
}

// FreeBeds devuelve las camas libres sin filtro de empresa.
func (uc *ReportsUseCase) FreeBeds() ([]dto.FreeBedLine, error) {
	beds, err := uc.availability.AvailableBeds("")
	if err != nil {
		return nil, err
	}
	lines := make([]dto.FreeBedLine, 0, len(beds))
	for _, b := range beds {
		lines = append(lines, dto.FreeBedLine{
			RoomNumber: b.RoomNumber,
			BedLabel:   b.Label,
			Climate:    b.Climate,
		})
	}
	return lines, nil
}

// MealHistory devuelve los tickets de comida de la ventana [from, to]
// (fechas inclusivas). companyID vacío = todas las empresas.
func (uc *ReportsUseCase) MealHistory(ctx context.Context, from, to time.Time, companyID string) ([]dto.MealHistoryLine, error) {
	from = dateOnly(from)
	to = dateOnly(to)
	if to.Before(from) {
		return nil, domain.ErrValidation
	}
	meals, err := uc.mealRepo.ListByRange(ctx, from, to.AddDate(0, 0, 1), companyID)
	if err != nil {
		return nil, err
	}
	lines := make([]dto.MealHistoryLine, 0, len(meals))
	for _, m := range meals {
		lines = append(lines, dto.MealHistoryLine{
			CreatedAt:   m.CreatedAt,
			Type:        m.Type,
			Name:        m.Name,
			CompanyName: m.CompanyName,
			TaxID:       m.TaxID,
		})
	}
	return lines, nil
}
