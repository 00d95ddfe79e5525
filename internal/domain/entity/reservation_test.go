package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/solnascente/frontdesk-api/internal/domain/entity"
)

func TestAppendLog_FormatoYOrden(t *testing.T) {
	r := &entity.Reservation{}
	now := time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC)

	r.AppendLog(now, "María", entity.ActionCreated, "Habitación 10 - Cama A")
	r.AppendLog(now.Add(time.Hour), "María", entity.ActionCheckIn, "")

	assert.Len(t, r.History, 2)
	assert.Equal(t, "05/01/2024 14:30", r.History[0].Timestamp)
	assert.Equal(t, "María", r.History[0].Actor)
	assert.Equal(t, entity.ActionCreated, r.History[0].Action)
	assert.Equal(t, "Habitación 10 - Cama A", r.History[0].Detail)
	assert.Equal(t, entity.ActionCheckIn, r.History[1].Action, "las entradas conservan el orden de llegada")
}

func TestAppendLog_ActorVacioSeAtribuyeASistema(t *testing.T) {
	r := &entity.Reservation{}
	r.AppendLog(time.Now(), "", entity.ActionCheckout, "")
	assert.Equal(t, entity.ActorSystem, r.History[0].Actor)
}

func TestIsLive(t *testing.T) {
	assert.True(t, (&entity.Reservation{Status: entity.ReservationPre}).IsLive())
	assert.True(t, (&entity.Reservation{Status: entity.ReservationActive}).IsLive())
	assert.False(t, (&entity.Reservation{Status: entity.ReservationFinished}).IsLive())
}
