package reservation_test

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/solnascente/frontdesk-api/internal/domain"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un único memStore compartido por todos los repositorios,
// igual que una base de datos compartida por sus tablas.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	companies map[string]*entity.Company
	rooms     map[string]*entity.Room
	beds      map[string]*entity.Bed
	guests    map[string]*entity.Guest
	res       map[string]*entity.Reservation
}

func newMemStore() *memStore {
	return &memStore{
		companies: make(map[string]*entity.Company),
		rooms:     make(map[string]*entity.Room),
		beds:      make(map[string]*entity.Bed),
		guests:    make(map[string]*entity.Guest),
		res:       make(map[string]*entity.Reservation),
	}
}

// ── Seeds ─────────────────────────────────────────────────────────────────────

func (s *memStore) addCompany(name string) *entity.Company {
	c := &entity.Company{ID: uuid.New().String(), Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.companies[c.ID] = c
	return c
}

func (s *memStore) addRoom(number, climate string, bedLabels ...string) (*entity.Room, []*entity.Bed) {
	r := &entity.Room{ID: uuid.New().String(), Number: number, Climate: climate, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.rooms[r.ID] = r
	beds := make([]*entity.Bed, 0, len(bedLabels))
	for _, label := range bedLabels {
		b := &entity.Bed{ID: uuid.New().String(), RoomID: r.ID, Label: label, CreatedAt: time.Now()}
		s.beds[b.ID] = b
		beds = append(beds, b)
	}
	return r, beds
}

func (s *memStore) addGuest(companyID, name, taxID string) *entity.Guest {
	g := &entity.Guest{ID: uuid.New().String(), CompanyID: companyID, Name: name, TaxID: taxID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.guests[g.ID] = g
	return g
}

func (s *memStore) addReservation(guestID, bedID, status string) *entity.Reservation {
	now := time.Now()
	r := &entity.Reservation{
		ID: uuid.New().String(), GuestID: guestID, BedID: bedID,
		Status: status, StartDate: now, CreatedAt: now, UpdatedAt: now,
	}
	s.res[r.ID] = r
	return r
}

// toLive arma el join reserva + huésped + empresa + cama + habitación.
func (s *memStore) toLive(r *entity.Reservation) *entity.LiveReservation {
	guest := s.guests[r.GuestID]
	company := s.companies[guest.CompanyID]
	bed := s.beds[r.BedID]
	room := s.rooms[bed.RoomID]
	return &entity.LiveReservation{
		Reservation: *r,
		GuestName:   guest.Name,
		GuestTaxID:  guest.TaxID,
		CompanyID:   company.ID,
		CompanyName: company.Name,
		RoomID:      room.ID,
		RoomNumber:  room.Number,
		BedLabel:    bed.Label,
	}
}

// ── CompanyRepository ─────────────────────────────────────────────────────────

type memCompanyRepo struct{ s *memStore }

func (r *memCompanyRepo) Create(c *entity.Company) error {
	for _, existing := range r.s.companies {
		if strings.EqualFold(existing.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	r.s.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.s.companies[id], nil
}

func (r *memCompanyRepo) GetByName(name string) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCompanyRepo) Update(c *entity.Company) error {
	r.s.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) Delete(id string) error {
	delete(r.s.companies, id)
	return nil
}

// ── RoomRepository ────────────────────────────────────────────────────────────

type memRoomRepo struct{ s *memStore }

func (r *memRoomRepo) Create(room *entity.Room) error {
	r.s.rooms[room.ID] = room
	return nil
}

func (r *memRoomRepo) GetByID(id string) (*entity.Room, error) {
	return r.s.rooms[id], nil
}

func (r *memRoomRepo) GetByNumber(number string) (*entity.Room, error) {
	for _, room := range r.s.rooms {
		if room.Number == number {
			return room, nil
		}
	}
	return nil, nil
}

// GetForUpdate en memoria no bloquea nada; basta con devolver la fila.
func (r *memRoomRepo) GetForUpdate(id string) (*entity.Room, error) {
	return r.s.rooms[id], nil
}

func (r *memRoomRepo) List() ([]*entity.Room, error) {
	out := make([]*entity.Room, 0, len(r.s.rooms))
	for _, room := range r.s.rooms {
		out = append(out, room)
	}
	return out, nil
}

func (r *memRoomRepo) Update(room *entity.Room) error {
	r.s.rooms[room.ID] = room
	return nil
}

func (r *memRoomRepo) CreateBed(bed *entity.Bed) error {
	r.s.beds[bed.ID] = bed
	return nil
}

func (r *memRoomRepo) GetBedByID(id string) (*entity.Bed, error) {
	return r.s.beds[id], nil
}

func (r *memRoomRepo) ListBeds() ([]*entity.Bed, error) {
	out := make([]*entity.Bed, 0, len(r.s.beds))
	for _, b := range r.s.beds {
		out = append(out, b)
	}
	return out, nil
}

func (r *memRoomRepo) ListBedsByRoom(roomID string) ([]*entity.Bed, error) {
	var out []*entity.Bed
	for _, b := range r.s.beds {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

// ── GuestRepository ───────────────────────────────────────────────────────────

type memGuestRepo struct{ s *memStore }

func (r *memGuestRepo) Create(g *entity.Guest) error {
	r.s.guests[g.ID] = g
	return nil
}

func (r *memGuestRepo) GetByID(id string) (*entity.Guest, error) {
	return r.s.guests[id], nil
}

// GetByTaxID devuelve la ficha más reciente con ese CPF, como el repo real.
func (r *memGuestRepo) GetByTaxID(taxID string) (*entity.Guest, error) {
	var latest *entity.Guest
	for _, g := range r.s.guests {
		if g.TaxID == taxID && (latest == nil || g.UpdatedAt.After(latest.UpdatedAt)) {
			latest = g
		}
	}
	return latest, nil
}

func (r *memGuestRepo) Update(g *entity.Guest) error {
	r.s.guests[g.ID] = g
	return nil
}

// ── ReservationRepository ─────────────────────────────────────────────────────

type memResRepo struct{ s *memStore }

func (r *memResRepo) Create(res *entity.Reservation) error {
	r.s.res[res.ID] = res
	return nil
}

func (r *memResRepo) GetByID(id string) (*entity.Reservation, error) {
	return r.s.res[id], nil
}

func (r *memResRepo) Update(res *entity.Reservation) error {
	r.s.res[res.ID] = res
	return nil
}

func (r *memResRepo) Delete(id string) error {
	delete(r.s.res, id)
	return nil
}

func (r *memResRepo) ListLive() ([]*entity.LiveReservation, error) {
	var out []*entity.LiveReservation
	for _, res := range r.s.res {
		if res.IsLive() {
			out = append(out, r.s.toLive(res))
		}
	}
	return out, nil
}

func (r *memResRepo) ListLiveByRoom(roomID string) ([]*entity.LiveReservation, error) {
	var out []*entity.LiveReservation
	for _, res := range r.s.res {
		if !res.IsLive() {
			continue
		}
		if bed := r.s.beds[res.BedID]; bed != nil && bed.RoomID == roomID {
			out = append(out, r.s.toLive(res))
		}
	}
	return out, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// memTxRunner ejecuta fn directamente contra el store, sin transacción real.
type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(ctx context.Context, fn func(
	resRepo repository.ReservationRepository,
	guestRepo repository.GuestRepository,
	roomRepo repository.RoomRepository,
	companyRepo repository.CompanyRepository,
) error) error {
	return fn(&memResRepo{t.s}, &memGuestRepo{t.s}, &memRoomRepo{t.s}, &memCompanyRepo{t.s})
}
