package entity

import "time"

// Estados de una reserva. Una reserva "viva" (PRE o ACTIVE) ocupa la cama.
const (
	ReservationPre      = "PRE"      // pre-reserva
	ReservationActive   = "ACTIVE"   // hospedado
	ReservationFinished = "FINISHED" // finalizada
)

// Acciones registradas en el historial de una reserva.
const (
	ActionCreated     = "Reserva Creada"
	ActionCheckIn     = "Check-in Confirmado"
	ActionCheckout    = "Checkout"
	ActionRoomChange  = "Cambio de Habitación"
	ActionLuggageIn   = "Guardó Equipaje"
	ActionLuggageOut  = "Retiró Equipaje"
	ActorSystem       = "Sistema"
	historyTimeLayout = "02/01/2006 15:04"
)

// HistoryEntry es una entrada del historial de auditoría de la reserva.
// El historial es append-only: nunca se modifica ni se borra una entrada
// (el borrado de la reserva completa al cancelar es la única excepción).
type HistoryEntry struct {
	Timestamp string `json:"timestamp"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
}

// Reservation representa la reserva de una cama por un huésped.
// History se persiste como blob JSONB dentro de la fila de la reserva.
type Reservation struct {
	ID         string
	GuestID    string
	BedID      string
	Status     string // ReservationPre | ReservationActive | ReservationFinished
	StartDate  time.Time
	EndDate    *time.Time
	HasLuggage bool
	History    []HistoryEntry
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsLive informa si la reserva ocupa la cama (PRE o ACTIVE).
func (r *Reservation) IsLive() bool {
	return r.Status == ReservationPre || r.Status == ReservationActive
}

// AppendLog agrega una entrada al historial. Si actor está vacío se atribuye
// a "Sistema". No persiste; el caller debe guardar la reserva.
func (r *Reservation) AppendLog(now time.Time, actor, action, detail string) {
	if actor == "" {
		actor = ActorSystem
	}
	r.History = append(r.History, HistoryEntry{
		Timestamp: now.Format(historyTimeLayout),
		Actor:     actor,
		Action:    action,
		Detail:    detail,
	})
}

// LiveReservation es la vista de lectura de una reserva viva junto con su
// huésped y empresa (join hecho por el repositorio). La usan el resolver de
// disponibilidad y el dashboard.
type LiveReservation struct {
	Reservation
	GuestName   string
	GuestTaxID  string
	CompanyID   string
	CompanyName string
	RoomID      string
	RoomNumber  string
	BedLabel    string
}

// Stay es la vista de lectura de una reserva para el informe de cierre:
// huésped, empresa y el intervalo ocupado (EndDate nil = reserva abierta).
type Stay struct {
	GuestName   string
	GuestTaxID  string
	CompanyID   string
	CompanyName string
	Start       time.Time
	End         *time.Time
}
