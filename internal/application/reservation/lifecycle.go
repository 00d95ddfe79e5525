package reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/solnascente/frontdesk-api/internal/application/dto"
	"github.com/solnascente/frontdesk-api/internal/domain"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// LifecycleUseCase gestiona el ciclo de vida de una reserva:
//
//	PRE → ACTIVE → FINISHED, con PRE → (borrada) como cancelación.
//
// Cada operación mutante corre dentro de una única transacción, con la fila
// de la habitación bloqueada (SELECT FOR UPDATE) antes de re-validar la regla
// de cohabitación. Así dos reservas concurrentes de empresas distintas no
// pueden aterrizar en la misma habitación.
type LifecycleUseCase struct {
	tx      TxRunner
	resRepo repository.ReservationRepository // lecturas fuera de transacción
}

// NewLifecycleUseCase construye el caso de uso.
func NewLifecycleUseCase(tx TxRunner, resRepo repository.ReservationRepository) *LifecycleUseCase {
	return &LifecycleUseCase{tx: tx, resRepo: resRepo}
}

// Get devuelve una reserva por ID, con su historial.
func (uc *LifecycleUseCase) Get(id string) (*dto.ReservationResponse, error) {
	res, err := uc.resRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}
	return toReservationResponse(res), nil
}

// Create crea la reserva (PRE si IsPre, si no ACTIVE), creando o reutilizando
// huésped y empresa. Devuelve domain.ErrConflict si la cama no está
// disponible para la empresa del huésped (doble reserva concurrente
// incluida: la validación corre con la habitación bloqueada).
func (uc *LifecycleUseCase) Create(ctx context.Context, actor string, in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	var created *entity.Reservation
	err := uc.tx.Run(ctx, func(
		resRepo repository.ReservationRepository,
		guestRepo repository.GuestRepository,
		roomRepo repository.RoomRepository,
		companyRepo repository.CompanyRepository,
	) error {
		bed, err := roomRepo.GetBedByID(in.BedID)
		if err != nil {
			return err
		}
		if bed == nil {
			return domain.ErrNotFound
		}
		room, err := roomRepo.GetForUpdate(bed.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		company, err := findOrCreateCompany(companyRepo, in.Guest.CompanyName, now)
		if err != nil {
			return err
		}
		if _, err := validateBedForCompany(resRepo, roomRepo, room, in.BedID, company.ID); err != nil {
			return err
		}
		guest, err := findOrCreateGuest(resRepo, guestRepo, company.ID, in.Guest, now)
		if err != nil {
			return err
		}

		status := entity.ReservationActive
		if in.IsPre {
			status = entity.ReservationPre
		}
		res := &entity.Reservation{
			ID:        uuid.New().String(),
			GuestID:   guest.ID,
			BedID:     bed.ID,
			Status:    status,
			StartDate: now,
			CreatedAt: now,
			UpdatedAt: now,
		}
		res.AppendLog(now, actor, entity.ActionCreated,
			fmt.Sprintf("Habitación %s - Cama %s", room.Number, bed.Label))
		created = res
		return resRepo.Create(res)
	})
	if err != nil {
		return nil, err
	}
	return toReservationResponse(created), nil
}

// ConfirmCheckIn pasa una pre-reserva a ACTIVE: actualiza los datos del
// huésped, reinicia la fecha de entrada y registra el check-in. Devuelve
// domain.ErrInvalidState si la reserva no está en PRE. Si el huésped cambió
// de empresa en el mostrador, la cohabitación se re-valida en todas las
// habitaciones donde el huésped tenga reservas vivas.
func (uc *LifecycleUseCase) ConfirmCheckIn(ctx context.Context, actor, id string, in dto.ConfirmCheckInRequest) (*dto.ReservationResponse, error) {
	var updated *entity.Reservation
	err := uc.tx.Run(ctx, func(
		resRepo repository.ReservationRepository,
		guestRepo repository.GuestRepository,
		roomRepo repository.RoomRepository,
		companyRepo repository.CompanyRepository,
	) error {
		res, err := resRepo.GetByID(id)
		if err != nil {
			return err
		}
		if res == nil {
			return domain.ErrNotFound
		}
		if res.Status != entity.ReservationPre {
			return domain.ErrInvalidState
		}

		bed, err := roomRepo.GetBedByID(res.BedID)
		if err != nil {
			return err
		}
		// bloquea la habitación actual; la re-validación de cohabitación por
		// cambio de empresa cubre además las otras habitaciones del huésped
		if _, err := roomRepo.GetForUpdate(bed.RoomID); err != nil {
			return err
		}
		guest, err := guestRepo.GetByID(res.GuestID)
		if err != nil {
			return err
		}
		if guest == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		company, err := findOrCreateCompany(companyRepo, in.Guest.CompanyName, now)
		if err != nil {
			return err
		}
		if company.ID != guest.CompanyID {
			if err := validateGuestCompanyChange(resRepo, guest.ID, company.ID); err != nil {
				return err
			}
			guest.CompanyID = company.ID
		}
		guest.Name = in.Guest.Name
		guest.Phone = in.Guest.Phone
		guest.TaxID = in.Guest.TaxID
		guest.Address = in.Guest.Address
		guest.UpdatedAt = now
		if err := guestRepo.Update(guest); err != nil {
			return err
		}

		res.Status = entity.ReservationActive
		res.StartDate = now
		res.UpdatedAt = now
		res.AppendLog(now, actor, entity.ActionCheckIn, "")
		updated = res
		return resRepo.Update(res)
	})
	if err != nil {
		return nil, err
	}
	return toReservationResponse(updated), nil
}

// Checkout finaliza una reserva viva: estado FINISHED y fecha de salida.
// La cama queda libre cuando ya no quedan reservas vivas sobre ella.
func (uc *LifecycleUseCase) Checkout(ctx context.Context, actor, id string) (*dto.ReservationResponse, error) {
	var updated *entity.Reservation
	err := uc.tx.Run(ctx, func(
		resRepo repository.ReservationRepository,
		_ repository.GuestRepository,
		_ repository.RoomRepository,
		_ repository.CompanyRepository,
	) error {
		res, err := resRepo.GetByID(id)
		if err != nil {
			return err
		}
		if res == nil {
			return domain.ErrNotFound
		}
		if !res.IsLive() {
			return domain.ErrInvalidState
		}
		now := time.Now()
		res.Status = entity.ReservationFinished
		res.EndDate = &now
		res.UpdatedAt = now
		res.AppendLog(now, actor, entity.ActionCheckout, "")
		updated = res
		return resRepo.Update(res)
	})
	if err != nil {
		return nil, err
	}
	return toReservationResponse(updated), nil
}

// Cancel borra una pre-reserva por completo, historial incluido. Es la única
// operación que elimina una reserva; desde ACTIVE o FINISHED devuelve
// domain.ErrInvalidState sin tocar el registro.
func (uc *LifecycleUseCase) Cancel(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(
		resRepo repository.ReservationRepository,
		_ repository.GuestRepository,
		_ repository.RoomRepository,
		_ repository.CompanyRepository,
	) error {
		res, err := resRepo.GetByID(id)
		if err != nil {
			return err
		}
		if res == nil {
			return domain.ErrNotFound
		}
		if res.Status != entity.ReservationPre {
			return domain.ErrInvalidState
		}
		return resRepo.Delete(id)
	})
}

// ChangeRoom traslada la reserva a otra cama, re-validando la disponibilidad
// para la empresa del huésped con la habitación destino bloqueada.
func (uc *LifecycleUseCase) ChangeRoom(ctx context.Context, actor, id, newBedID string) (*dto.ReservationResponse, error) {
	var updated *entity.Reservation
	err := uc.tx.Run(ctx, func(
		resRepo repository.ReservationRepository,
		guestRepo repository.GuestRepository,
		roomRepo repository.RoomRepository,
		_ repository.CompanyRepository,
	) error {
		res, err := resRepo.GetByID(id)
		if err != nil {
			return err
		}
		if res == nil {
			return domain.ErrNotFound
		}
		if !res.IsLive() {
			return domain.ErrInvalidState
		}

		oldBed, err := roomRepo.GetBedByID(res.BedID)
		if err != nil {
			return err
		}
		oldRoom, err := roomRepo.GetByID(oldBed.RoomID)
		if err != nil {
			return err
		}
		newBed, err := roomRepo.GetBedByID(newBedID)
		if err != nil {
			return err
		}
		if newBed == nil {
			return domain.ErrNotFound
		}
		newRoom, err := roomRepo.GetForUpdate(newBed.RoomID)
		if err != nil {
			return err
		}
		guest, err := guestRepo.GetByID(res.GuestID)
		if err != nil {
			return err
		}
		if _, err := validateBedForCompany(resRepo, roomRepo, newRoom, newBedID, guest.CompanyID); err != nil {
			return err
		}

		now := time.Now()
		res.BedID = newBed.ID
		res.UpdatedAt = now
		res.AppendLog(now, actor, entity.ActionRoomChange,
			fmt.Sprintf("De %s - %s a %s - %s", oldRoom.Number, oldBed.Label, newRoom.Number, newBed.Label))
		updated = res
		return resRepo.Update(res)
	})
	if err != nil {
		return nil, err
	}
	return toReservationResponse(updated), nil
}

// ToggleLuggage alterna la bandera de equipaje guardado y lo deja registrado
// en el historial.
func (uc *LifecycleUseCase) ToggleLuggage(ctx context.Context, actor, id string) (*dto.ReservationResponse, error) {
	var updated *entity.Reservation
	err := uc.tx.Run(ctx, func(
		resRepo repository.ReservationRepository,
		_ repository.GuestRepository,
		_ repository.RoomRepository,
		_ repository.CompanyRepository,
	) error {
		res, err := resRepo.GetByID(id)
		if err != nil {
			return err
		}
		if res == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		res.HasLuggage = !res.HasLuggage
		res.UpdatedAt = now
		action := entity.ActionLuggageOut
		if res.HasLuggage {
			action = entity.ActionLuggageIn
		}
		res.AppendLog(now, actor, action, "")
		updated = res
		return resRepo.Update(res)
	})
	if err != nil {
		return nil, err
	}
	return toReservationResponse(updated), nil
}

// findOrCreateCompany busca la empresa por nombre (sin distinguir may/min al
// normalizar espacios) y la crea si no existe.
func findOrCreateCompany(companyRepo repository.CompanyRepository, name string, now time.Time) (*entity.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrValidation
	}
	company, err := companyRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if company != nil {
		return company, nil
	}
	company = &entity.Company{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := companyRepo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

// findOrCreateGuest reutiliza el huésped por CPF si existe (actualizando sus
// datos) o lo crea. Si el huésped encontrado tiene una estadía viva por otra
// empresa, no se reasigna su empresa: se crea una ficha nueva y la estadía
// existente conserva la suya, para no mezclar empresas en aquella habitación.
func findOrCreateGuest(resRepo repository.ReservationRepository, guestRepo repository.GuestRepository, companyID string, in dto.GuestData, now time.Time) (*entity.Guest, error) {
	if in.TaxID != "" {
		guest, err := guestRepo.GetByTaxID(in.TaxID)
		if err != nil {
			return nil, err
		}
		if guest != nil {
			reusable := true
			if guest.CompanyID != companyID {
				busy, err := guestHasLiveReservation(resRepo, guest.ID)
				if err != nil {
					return nil, err
				}
				reusable = !busy
			}
			if reusable {
				guest.CompanyID = companyID
				guest.Name = in.Name
				guest.Phone = in.Phone
				guest.Address = in.Address
				guest.UpdatedAt = now
				if err := guestRepo.Update(guest); err != nil {
					return nil, err
				}
				return guest, nil
			}
		}
	}
	guest := &entity.Guest{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Phone:     in.Phone,
		TaxID:     in.TaxID,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := guestRepo.Create(guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// guestHasLiveReservation indica si el huésped tiene alguna reserva PRE o
// ACTIVE en cualquier habitación.
func guestHasLiveReservation(resRepo repository.ReservationRepository, guestID string) (bool, error) {
	live, err := resRepo.ListLive()
	if err != nil {
		return false, err
	}
	for _, lr := range live {
		if lr.GuestID == guestID {
			return true, nil
		}
	}
	return false, nil
}

// validateGuestCompanyChange comprueba que reasignar al huésped a companyID
// no mezcla empresas en ninguna habitación donde tenga reservas vivas: todos
// los demás ocupantes vivos de esas habitaciones deben ser de companyID.
func validateGuestCompanyChange(resRepo repository.ReservationRepository, guestID, companyID string) error {
	live, err := resRepo.ListLive()
	if err != nil {
		return err
	}
	rooms := make(map[string]bool)
	for _, lr := range live {
		if lr.GuestID == guestID {
			rooms[lr.RoomID] = true
		}
	}
	for _, lr := range live {
		if rooms[lr.RoomID] && lr.GuestID != guestID && lr.CompanyID != companyID {
			return domain.ErrConflict
		}
	}
	return nil
}

func toReservationResponse(r *entity.Reservation) *dto.ReservationResponse {
	if r == nil {
		return nil
	}
	return &dto.ReservationResponse{
		ID:         r.ID,
		GuestID:    r.GuestID,
		BedID:      r.BedID,
		Status:     r.Status,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		HasLuggage: r.HasLuggage,
		History:    r.History,
	}
}
