// Package reservation contiene el resolver de disponibilidad de camas y el
// ciclo de vida de las reservas (crear, check-in, checkout, traslado,
// cancelación). La regla central es la de cohabitación: huéspedes que
// comparten habitación deben pertenecer a la misma empresa.
package reservation

import (
	"github.com/solnascente/frontdesk-api/internal/application/dto"
	"github.com/solnascente/frontdesk-api/internal/domain"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// AvailabilityUseCase calcula las camas elegibles para una empresa.
type AvailabilityUseCase struct {
	roomRepo repository.RoomRepository
	resRepo  repository.ReservationRepository
}

// NewAvailabilityUseCase construye el caso de uso.
func NewAvailabilityUseCase(roomRepo repository.RoomRepository, resRepo repository.ReservationRepository) *AvailabilityUseCase {
	return &AvailabilityUseCase{roomRepo: roomRepo, resRepo: resRepo}
}

// AvailableBeds devuelve las camas libres. Conjunto base: camas de
// habitaciones sin mantenimiento y sin reserva viva. Con companyID se
// excluyen además las camas cuya habitación aloja una reserva viva de otra
// empresa (una habitación sin ocupantes siempre pasa). No se garantiza orden.
//
// Esta lectura corre sin candados; la creación y el traslado re-validan la
// misma regla dentro de la transacción con la habitación bloqueada.
func (uc *AvailabilityUseCase) AvailableBeds(companyID string) ([]dto.AvailableBedResponse, error) {
	rooms, err := uc.roomRepo.List()
	if err != nil {
		return nil, err
	}
	roomsByID := make(map[string]*entity.Room, len(rooms))
	for _, r := range rooms {
		roomsByID[r.ID] = r
	}

	beds, err := uc.roomRepo.ListBeds()
	if err != nil {
		return nil, err
	}

	live, err := uc.resRepo.ListLive()
	if err != nil {
		return nil, err
	}
	occupiedBeds := make(map[string]bool, len(live))
	roomCompanies := make(map[string][]string)
	for _, lr := range live {
		occupiedBeds[lr.BedID] = true
		roomCompanies[lr.RoomID] = append(roomCompanies[lr.RoomID], lr.CompanyID)
	}

	out := make([]dto.AvailableBedResponse, 0, len(beds))
	for _, bed := range beds {
		room, ok := roomsByID[bed.RoomID]
		if !ok || room.IsMaintenance || occupiedBeds[bed.ID] {
			continue
		}
		if companyID != "" && !companiesCompatible(roomCompanies[room.ID], companyID) {
			continue
		}
		out = append(out, dto.AvailableBedResponse{
			BedID:      bed.ID,
			Label:      bed.Label,
			RoomID:     room.ID,
			RoomNumber: room.Number,
			Climate:    room.Climate,
		})
	}
	return out, nil
}

// companiesCompatible informa si todos los ocupantes pertenecen a companyID.
func companiesCompatible(occupants []string, companyID string) bool {
	for _, c := range occupants {
		if c != companyID {
			return false
		}
	}
	return true
}

// validateBedForCompany verifica, con los repositorios dados (atados o no a
// una transacción), que la cama pueda recibir una reserva de la empresa:
// habitación sin mantenimiento, cama sin reserva viva y cohabitación
// respetada. Devuelve cama y habitación para que el caller arme el detalle
// del historial.
func validateBedForCompany(
	resRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
	room *entity.Room,
	bedID, companyID string,
) (*entity.Bed, error) {
	bed, err := roomRepo.GetBedByID(bedID)
	if err != nil {
		return nil, err
	}
	if bed == nil || bed.RoomID != room.ID {
		return nil, domain.ErrNotFound
	}
	if room.IsMaintenance {
		return nil, domain.ErrConflict
	}
	roommates, err := resRepo.ListLiveByRoom(room.ID)
	if err != nil {
		return nil, err
	}
	for _, rm := range roommates {
		if rm.BedID == bed.ID {
			return nil, domain.ErrConflict // cama ya ocupada
		}
		if rm.CompanyID != companyID {
			return nil, domain.ErrConflict // empresa distinta en la habitación
		}
	}
	return bed, nil
}
