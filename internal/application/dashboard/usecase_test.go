package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solnascente/frontdesk-api/internal/application/dashboard"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: el panel solo lee List, ListBeds y ListLive.
// ──────────────────────────────────────────────────────────────────────────────

type fakeRoomRepo struct {
	rooms []*entity.Room
	beds  []*entity.Bed
}

func (f *fakeRoomRepo) Create(*entity.Room) error                    { return nil }
func (f *fakeRoomRepo) GetByID(string) (*entity.Room, error)         { return nil, nil }
func (f *fakeRoomRepo) GetByNumber(string) (*entity.Room, error)     { return nil, nil }
func (f *fakeRoomRepo) GetForUpdate(string) (*entity.Room, error)    { return nil, nil }
func (f *fakeRoomRepo) List() ([]*entity.Room, error)                { return f.rooms, nil }
func (f *fakeRoomRepo) Update(*entity.Room) error                    { return nil }
func (f *fakeRoomRepo) CreateBed(*entity.Bed) error                  { return nil }
func (f *fakeRoomRepo) GetBedByID(string) (*entity.Bed, error)       { return nil, nil }
func (f *fakeRoomRepo) ListBeds() ([]*entity.Bed, error)             { return f.beds, nil }
func (f *fakeRoomRepo) ListBedsByRoom(string) ([]*entity.Bed, error) { return nil, nil }

type fakeResRepo struct {
	live []*entity.LiveReservation
}

func (f *fakeResRepo) Create(*entity.Reservation) error                         { return nil }
func (f *fakeResRepo) GetByID(string) (*entity.Reservation, error)              { return nil, nil }
func (f *fakeResRepo) Update(*entity.Reservation) error                         { return nil }
func (f *fakeResRepo) Delete(string) error                                      { return nil }
func (f *fakeResRepo) ListLive() ([]*entity.LiveReservation, error)             { return f.live, nil }
func (f *fakeResRepo) ListLiveByRoom(string) ([]*entity.LiveReservation, error) { return nil, nil }

func room(id, number string, maintenance bool) *entity.Room {
	return &entity.Room{ID: id, Number: number, Climate: entity.ClimateFAN, IsMaintenance: maintenance}
}

func bed(id, roomID, label string) *entity.Bed {
	return &entity.Bed{ID: id, RoomID: roomID, Label: label}
}

func liveOn(bedID, roomID, status, guestName, companyName string) *entity.LiveReservation {
	return &entity.LiveReservation{
		Reservation: entity.Reservation{ID: "res-" + bedID, BedID: bedID, Status: status},
		GuestName:   guestName,
		CompanyName: companyName,
		RoomID:      roomID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestOverview_PrecedenciaDeEstados(t *testing.T) {
	rooms := &fakeRoomRepo{
		rooms: []*entity.Room{
			room("r1", "1", false), // ACTIVE + PRE → OCCUPIED
			room("r2", "2", false), // solo PRE → PRE
			room("r3", "3", false), // sin reservas → FREE
			room("r4", "4", true),  // mantenimiento con ACTIVE → MAINTENANCE
		},
		beds: []*entity.Bed{
			bed("b1a", "r1", "A"), bed("b1b", "r1", "B"),
			bed("b2a", "r2", "A"),
			bed("b3a", "r3", "A"),
			bed("b4a", "r4", "A"),
		},
	}
	res := &fakeResRepo{live: []*entity.LiveReservation{
		liveOn("b1a", "r1", entity.ReservationActive, "Carlos", "Acme"),
		liveOn("b1b", "r1", entity.ReservationPre, "Ana", "Acme"),
		liveOn("b2a", "r2", entity.ReservationPre, "Jorge", "Translog"),
		liveOn("b4a", "r4", entity.ReservationActive, "Lucía", "Acme"),
	}}

	out, err := dashboard.NewUseCase(rooms, res).Overview()
	require.NoError(t, err)
	require.Len(t, out.Rooms, 4)

	byNumber := make(map[string]string)
	for _, r := range out.Rooms {
		byNumber[r.Number] = r.StatusCode
	}
	assert.Equal(t, dashboard.StatusOccupied, byNumber["1"], "ACTIVE gana sobre PRE")
	assert.Equal(t, dashboard.StatusPre, byNumber["2"])
	assert.Equal(t, dashboard.StatusFree, byNumber["3"])
	assert.Equal(t, dashboard.StatusMaintenance, byNumber["4"],
		"mantenimiento gana incluso sobre una ocupación viva")
}

func TestOverview_CamasConSuReserva(t *testing.T) {
	rooms := &fakeRoomRepo{
		rooms: []*entity.Room{room("r1", "1", false)},
		beds:  []*entity.Bed{bed("b1a", "r1", "A"), bed("b1b", "r1", "B")},
	}
	res := &fakeResRepo{live: []*entity.LiveReservation{
		liveOn("b1a", "r1", entity.ReservationActive, "Carlos Lima", "Acme"),
	}}

	out, err := dashboard.NewUseCase(rooms, res).Overview()
	require.NoError(t, err)
	require.Len(t, out.Rooms, 1)
	require.Len(t, out.Rooms[0].Beds, 2)

	occupied := out.Rooms[0].Beds[0]
	free := out.Rooms[0].Beds[1]
	require.NotNil(t, occupied.Reservation)
	assert.Equal(t, "Carlos Lima", occupied.Reservation.GuestName)
	assert.Equal(t, "Acme", occupied.Reservation.CompanyName)
	assert.Nil(t, free.Reservation, "cama libre sin tarjeta de reserva")
}

func TestOverview_OrdenNumericoDeHabitaciones(t *testing.T) {
	rooms := &fakeRoomRepo{
		rooms: []*entity.Room{
			room("r10", "10", false),
			room("r2", "2", false),
			room("rx", "Anexo", false),
			room("r1", "1", false),
		},
	}
	out, err := dashboard.NewUseCase(rooms, &fakeResRepo{}).Overview()
	require.NoError(t, err)

	var numbers []string
	for _, r := range out.Rooms {
		numbers = append(numbers, r.Number)
	}
	assert.Equal(t, []string{"1", "2", "10", "Anexo"}, numbers,
		"orden numérico, no lexicográfico; no numéricos al final")
}

func TestOverview_ClaseDeDisplayPorEstado(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []*entity.Room{room("r1", "1", true)}}
	out, err := dashboard.NewUseCase(rooms, &fakeResRepo{}).Overview()
	require.NoError(t, err)
	assert.Equal(t, "room-maintenance", out.Rooms[0].DisplayClass)
}

func TestFilterByStatus(t *testing.T) {
	rooms := &fakeRoomRepo{
		rooms: []*entity.Room{room("r1", "1", true), room("r2", "2", false)},
	}
	out, err := dashboard.NewUseCase(rooms, &fakeResRepo{}).Overview()
	require.NoError(t, err)

	filtered := dashboard.FilterByStatus(out, dashboard.StatusMaintenance)
	require.Len(t, filtered.Rooms, 1)
	assert.Equal(t, "1", filtered.Rooms[0].Number)

	assert.Same(t, out, dashboard.FilterByStatus(out, ""), "sin filtro devuelve la misma vista")
}
