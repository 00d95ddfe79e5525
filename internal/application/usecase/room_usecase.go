package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/solnascente/frontdesk-api/internal/application/dto"
	"github.com/solnascente/frontdesk-api/internal/domain"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// RoomUseCase administra habitaciones y camas.
type RoomUseCase struct {
	roomRepo repository.RoomRepository
	resRepo  repository.ReservationRepository
}

// NewRoomUseCase construye el caso de uso.
func NewRoomUseCase(roomRepo repository.RoomRepository, resRepo repository.ReservationRepository) *RoomUseCase {
	return &RoomUseCase{roomRepo: roomRepo, resRepo: resRepo}
}

// Create crea una habitación con sus camas iniciales. Devuelve
// domain.ErrDuplicate si el número ya existe o hay etiquetas repetidas.
func (uc *RoomUseCase) Create(in dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	number := strings.TrimSpace(in.Number)
	if number == "" {
		return nil, domain.ErrValidation
	}
	existing, err := uc.roomRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	seen := make(map[string]bool, len(in.BedLabels))
	for _, label := range in.BedLabels {
		if seen[label] {
			return nil, domain.ErrDuplicate
		}
		seen[label] = true
	}

	now := time.Now()
	room := &entity.Room{
		ID:        uuid.New().String(),
		Number:    number,
		Climate:   in.Climate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.roomRepo.Create(room); err != nil {
		return nil, err
	}
	beds := make([]dto.BedResponse, 0, len(in.BedLabels))
	for _, label := range in.BedLabels {
		bed := &entity.Bed{
			ID:        uuid.New().String(),
			RoomID:    room.ID,
			Label:     label,
			CreatedAt: now,
		}
		if err := uc.roomRepo.CreateBed(bed); err != nil {
			return nil, err
		}
		beds = append(beds, dto.BedResponse{ID: bed.ID, Label: bed.Label})
	}
	resp := toRoomResponse(room)
	resp.Beds = beds
	return resp, nil
}

// GetByID obtiene una habitación con sus camas.
func (uc *RoomUseCase) GetByID(id string) (*dto.RoomResponse, error) {
	room, err := uc.roomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	beds, err := uc.roomRepo.ListBedsByRoom(id)
	if err != nil {
		return nil, err
	}
	resp := toRoomResponse(room)
	for _, b := range beds {
		resp.Beds = append(resp.Beds, dto.BedResponse{ID: b.ID, Label: b.Label})
	}
	return resp, nil
}

// List lista todas las habitaciones con sus camas.
func (uc *RoomUseCase) List() (*dto.RoomListResponse, error) {
	rooms, err := uc.roomRepo.List()
	if err != nil {
		return nil, err
	}
	beds, err := uc.roomRepo.ListBeds()
	if err != nil {
		return nil, err
	}
	bedsByRoom := make(map[string][]dto.BedResponse)
	for _, b := range beds {
		bedsByRoom[b.RoomID] = append(bedsByRoom[b.RoomID], dto.BedResponse{ID: b.ID, Label: b.Label})
	}
	items := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp := toRoomResponse(r)
		resp.Beds = bedsByRoom[r.ID]
		items = append(items, *resp)
	}
	return &dto.RoomListResponse{Items: items}, nil
}

// AddBed agrega una cama a una habitación existente. La etiqueta debe ser
// única dentro de la habitación.
func (uc *RoomUseCase) AddBed(roomID string, in dto.AddBedRequest) (*dto.BedResponse, error) {
	room, err := uc.roomRepo.GetByID(roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	beds, err := uc.roomRepo.ListBedsByRoom(roomID)
	if err != nil {
		return nil, err
	}
	for _, b := range beds {
		if b.Label == in.Label {
			return nil, domain.ErrDuplicate
		}
	}
	bed := &entity.Bed{
		ID:        uuid.New().String(),
		RoomID:    roomID,
		Label:     in.Label,
		CreatedAt: time.Now(),
	}
	if err := uc.roomRepo.CreateBed(bed); err != nil {
		return nil, err
	}
	return &dto.BedResponse{ID: bed.ID, Label: bed.Label}, nil
}

// ToggleMaintenance alterna la bandera de mantenimiento. Poner en
// mantenimiento una habitación con alguna reserva viva devuelve
// domain.ErrInvalidState: el personal no puede bloquear una habitación
// ocupada.
func (uc *RoomUseCase) ToggleMaintenance(id string) (*dto.RoomResponse, error) {
	room, err := uc.roomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	if !room.IsMaintenance {
		live, err := uc.resRepo.ListLiveByRoom(id)
		if err != nil {
			return nil, err
		}
		if len(live) > 0 {
			return nil, domain.ErrInvalidState
		}
	}
	room.IsMaintenance = !room.IsMaintenance
	room.UpdatedAt = time.Now()
	if err := uc.roomRepo.Update(room); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

func toRoomResponse(r *entity.Room) *dto.RoomResponse {
	return &dto.RoomResponse{
		ID:            r.ID,
		Number:        r.Number,
		Climate:       r.Climate,
		IsMaintenance: r.IsMaintenance,
		CreatedAt:     r.CreatedAt,
	}
}
