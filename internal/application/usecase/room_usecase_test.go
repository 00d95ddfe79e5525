package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solnascente/frontdesk-api/internal/application/dto"
	"github.com/solnascente/frontdesk-api/internal/application/usecase"
	"github.com/solnascente/frontdesk-api/internal/domain"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memRoomRepo struct {
	rooms map[string]*entity.Room
	beds  map[string]*entity.Bed
}

func newMemRoomRepo() *memRoomRepo {
	return &memRoomRepo{rooms: make(map[string]*entity.Room), beds: make(map[string]*entity.Bed)}
}

func (r *memRoomRepo) Create(room *entity.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *memRoomRepo) GetByID(id string) (*entity.Room, error) { return r.rooms[id], nil }

func (r *memRoomRepo) GetByNumber(number string) (*entity.Room, error) {
	for _, room := range r.rooms {
		if room.Number == number {
			return room, nil
		}
	}
	return nil, nil
}

func (r *memRoomRepo) GetForUpdate(id string) (*entity.Room, error) { return r.rooms[id], nil }

func (r *memRoomRepo) List() ([]*entity.Room, error) {
	out := make([]*entity.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	return out, nil
}

func (r *memRoomRepo) Update(room *entity.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *memRoomRepo) CreateBed(bed *entity.Bed) error {
	r.beds[bed.ID] = bed
	return nil
}

func (r *memRoomRepo) GetBedByID(id string) (*entity.Bed, error) { return r.beds[id], nil }

func (r *memRoomRepo) ListBeds() ([]*entity.Bed, error) {
	out := make([]*entity.Bed, 0, len(r.beds))
	for _, b := range r.beds {
		out = append(out, b)
	}
	return out, nil
}

func (r *memRoomRepo) ListBedsByRoom(roomID string) ([]*entity.Bed, error) {
	var out []*entity.Bed
	for _, b := range r.beds {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

// stubResRepo devuelve reservas vivas fijas para ListLiveByRoom.
type stubResRepo struct {
	liveByRoom map[string][]*entity.LiveReservation
}

func (f *stubResRepo) Create(*entity.Reservation) error            { return nil }
func (f *stubResRepo) GetByID(string) (*entity.Reservation, error) { return nil, nil }
func (f *stubResRepo) Update(*entity.Reservation) error            { return nil }
func (f *stubResRepo) Delete(string) error                         { return nil }
func (f *stubResRepo) ListLive() ([]*entity.LiveReservation, error) {
	return nil, nil
}
func (f *stubResRepo) ListLiveByRoom(roomID string) ([]*entity.LiveReservation, error) {
	return f.liveByRoom[roomID], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRoomCreate_ConCamasIniciales(t *testing.T) {
	repo := newMemRoomRepo()
	uc := usecase.NewRoomUseCase(repo, &stubResRepo{})

	out, err := uc.Create(dto.CreateRoomRequest{
		Number: "10", Climate: entity.ClimateFAN, BedLabels: []string{"A", "B"},
	})
	require.NoError(t, err)

	assert.Equal(t, "10", out.Number)
	assert.Len(t, out.Beds, 2)
	assert.Len(t, repo.beds, 2)
}

func TestRoomCreate_NumeroDuplicado(t *testing.T) {
	repo := newMemRoomRepo()
	uc := usecase.NewRoomUseCase(repo, &stubResRepo{})

	_, err := uc.Create(dto.CreateRoomRequest{Number: "10", Climate: entity.ClimateFAN, BedLabels: []string{"A"}})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateRoomRequest{Number: "10", Climate: entity.ClimateAC, BedLabels: []string{"A"}})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRoomCreate_EtiquetasRepetidas(t *testing.T) {
	uc := usecase.NewRoomUseCase(newMemRoomRepo(), &stubResRepo{})

	_, err := uc.Create(dto.CreateRoomRequest{
		Number: "10", Climate: entity.ClimateFAN, BedLabels: []string{"A", "A"},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAddBed_EtiquetaUnicaPorHabitacion(t *testing.T) {
	repo := newMemRoomRepo()
	uc := usecase.NewRoomUseCase(repo, &stubResRepo{})
	room, err := uc.Create(dto.CreateRoomRequest{Number: "10", Climate: entity.ClimateFAN, BedLabels: []string{"A"}})
	require.NoError(t, err)

	out, err := uc.AddBed(room.ID, dto.AddBedRequest{Label: "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", out.Label)

	_, err = uc.AddBed(room.ID, dto.AddBedRequest{Label: "A"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestToggleMaintenance_BloqueadoConReservasVivas(t *testing.T) {
	repo := newMemRoomRepo()
	uc := usecase.NewRoomUseCase(repo, &stubResRepo{})
	room, err := uc.Create(dto.CreateRoomRequest{Number: "10", Climate: entity.ClimateFAN, BedLabels: []string{"A"}})
	require.NoError(t, err)

	occupied := usecase.NewRoomUseCase(repo, &stubResRepo{
		liveByRoom: map[string][]*entity.LiveReservation{
			room.ID: {{Reservation: entity.Reservation{Status: entity.ReservationActive}}},
		},
	})
	_, err = occupied.ToggleMaintenance(room.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState,
		"no se puede poner en mantenimiento una habitación ocupada")
	assert.False(t, repo.rooms[room.ID].IsMaintenance)
}

func TestToggleMaintenance_AlternaIdaYVuelta(t *testing.T) {
	repo := newMemRoomRepo()
	uc := usecase.NewRoomUseCase(repo, &stubResRepo{})
	room, err := uc.Create(dto.CreateRoomRequest{Number: "10", Climate: entity.ClimateFAN, BedLabels: []string{"A"}})
	require.NoError(t, err)

	out, err := uc.ToggleMaintenance(room.ID)
	require.NoError(t, err)
	assert.True(t, out.IsMaintenance)

	// Apagar el mantenimiento no consulta reservas: siempre se permite.
	out, err = uc.ToggleMaintenance(room.ID)
	require.NoError(t, err)
	assert.False(t, out.IsMaintenance)
}

func TestToggleMaintenance_HabitacionInexistente(t *testing.T) {
	uc := usecase.NewRoomUseCase(newMemRoomRepo(), &stubResRepo{})
	_, err := uc.ToggleMaintenance("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
