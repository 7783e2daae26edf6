package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        42,
		Claimant:  domain.Claimant{Community: "Mira", Villa: "17"},
		Court:     "Mira 2",
		Date:      time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		StartHour: 10,
		CreatedAt: time.Date(2025, 6, 10, 8, 30, 0, 0, time.UTC),
	}
}

func TestNewEventSnapshotsReservation(t *testing.T) {
	event := newEvent(TypeReservationCreated, testReservation())

	_, err := uuid.Parse(event.ID)
	require.NoError(t, err, "eventId должен быть валидным UUID")

	assert.Equal(t, TypeReservationCreated, event.Type)
	assert.False(t, event.OccurredAt.IsZero())
	assert.Equal(t, time.UTC, event.OccurredAt.Location())

	assert.Equal(t, int64(42), event.Reservation.ID)
	assert.Equal(t, "Mira", event.Reservation.Community)
	assert.Equal(t, "17", event.Reservation.Villa)
	assert.Equal(t, "Mira 2", event.Reservation.Court)
	assert.Equal(t, "2025-06-11", event.Reservation.Date)
	assert.Equal(t, 10, event.Reservation.StartHour)
}

func TestNewEventIDsAreUnique(t *testing.T) {
	res := testReservation()

	first := newEvent(TypeReservationCreated, res)
	second := newEvent(TypeReservationDeleted, res)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestEventJSONShape(t *testing.T) {
	event := newEvent(TypeReservationDeleted, testReservation())

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "eventId")
	assert.Contains(t, decoded, "type")
	assert.Contains(t, decoded, "occurredAt")
	assert.Contains(t, decoded, "reservation")
	assert.Equal(t, TypeReservationDeleted, decoded["type"])

	payload, ok := decoded["reservation"].(map[string]any)
	require.True(t, ok, "reservation должен быть объектом")
	assert.Equal(t, "2025-06-11", payload["date"])
	assert.Equal(t, float64(10), payload["startHour"])
	assert.Equal(t, "Mira 2", payload["court"])
}
