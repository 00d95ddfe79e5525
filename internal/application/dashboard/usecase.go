// Package dashboard arma la vista de habitaciones del panel principal a
// partir del estado de reservas a nivel de cama.
package dashboard

import (
	"sort"
	"strconv"

	"github.com/solnascente/frontdesk-api/internal/application/dto"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// Códigos de estado por habitación. La precedencia es fija y operativa:
// mantenimiento gana siempre, incluso sobre una ocupación viva.
const (
	StatusMaintenance = "MAINTENANCE"
	StatusOccupied    = "OCCUPIED"
	StatusPre         = "PRE"
	StatusFree        = "FREE"
)

// displayClasses clase CSS del frontend por código de estado.
var displayClasses = map[string]string{
	StatusMaintenance: "room-maintenance",
	StatusOccupied:    "room-occupied",
	StatusPre:         "room-pre",
	StatusFree:        "room-free",
}

// UseCase calcula el estado agregado de cada habitación. Lecturas puras:
// nunca muta reservas ni habitaciones.
type UseCase struct {
	roomRepo repository.RoomRepository
	resRepo  repository.ReservationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(roomRepo repository.RoomRepository, resRepo repository.ReservationRepository) *UseCase {
	return &UseCase{roomRepo: roomRepo, resRepo: resRepo}
}

// Overview devuelve todas las habitaciones en orden numérico ascendente de
// número, cada una con sus camas y la reserva viva de cada cama (o ninguna).
func (uc *UseCase) Overview() (*dto.DashboardResponse, error) {
	rooms, err := uc.roomRepo.List()
	if err != nil {
		return nil, err
	}
	beds, err := uc.roomRepo.ListBeds()
	if err != nil {
		return nil, err
	}
	live, err := uc.resRepo.ListLive()
	if err != nil {
		return nil, err
	}

	bedsByRoom := make(map[string][]*entity.Bed)
	for _, b := range beds {
		bedsByRoom[b.RoomID] = append(bedsByRoom[b.RoomID], b)
	}
	liveByBed := make(map[string]*entity.LiveReservation, len(live))
	for _, lr := range live {
		liveByBed[lr.BedID] = lr
	}

	out := make([]dto.DashboardRoom, 0, len(rooms))
	for _, room := range rooms {
		roomBeds := bedsByRoom[room.ID]
		dtoBeds := make([]dto.DashboardBed, 0, len(roomBeds))
		anyActive, anyPre := false, false
		for _, b := range roomBeds {
			db := dto.DashboardBed{BedID: b.ID, Label: b.Label}
			if lr, ok := liveByBed[b.ID]; ok {
				switch lr.Status {
				case entity.ReservationActive:
					anyActive = true
				case entity.ReservationPre:
					anyPre = true
				}
				db.Reservation = &dto.DashboardReservation{
					ID:          lr.ID,
					Status:      lr.Status,
					GuestName:   lr.GuestName,
					CompanyName: lr.CompanyName,
					StartDate:   lr.StartDate,
					HasLuggage:  lr.HasLuggage,
				}
			}
			dtoBeds = append(dtoBeds, db)
		}
		status := resolveStatus(room.IsMaintenance, anyActive, anyPre)
		out = append(out, dto.DashboardRoom{
			RoomID:        room.ID,
			Number:        room.Number,
			Climate:       room.Climate,
			IsMaintenance: room.IsMaintenance,
			StatusCode:    status,
			DisplayClass:  displayClasses[status],
			Beds:          dtoBeds,
		})
	}

	sortRoomsNumeric(out)
	return &dto.DashboardResponse{Rooms: out}, nil
}

// FilterByStatus filtra una vista ya calculada por código de estado, sin
// recomputar nada.
func FilterByStatus(view *dto.DashboardResponse, statusCode string) *dto.DashboardResponse {
	if statusCode == "" {
		return view
	}
	rooms := make([]dto.DashboardRoom, 0, len(view.Rooms))
	for _, r := range view.Rooms {
		if r.StatusCode == statusCode {
			rooms = append(rooms, r)
		}
	}
	return &dto.DashboardResponse{Rooms: rooms}
}

// resolveStatus aplica la precedencia mantenimiento > ocupado > pre > libre.
func resolveStatus(maintenance, anyActive, anyPre bool) string {
	switch {
	case maintenance:
		return StatusMaintenance
	case anyActive:
		return StatusOccupied
	case anyPre:
		return StatusPre
	default:
		return StatusFree
	}
}

// sortRoomsNumeric ordena por el valor numérico del número de habitación.
// Números no numéricos quedan al final, ordenados como string.
func sortRoomsNumeric(rooms []dto.DashboardRoom) {
	sort.SliceStable(rooms, func(i, j int) bool {
		ni, erri := strconv.Atoi(rooms[i].Number)
		nj, errj := strconv.Atoi(rooms[j].Number)
		switch {
		case erri == nil && errj == nil:
			return ni < nj
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return rooms[i].Number < rooms[j].Number
		}
	})
}
