package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// Типы событий жизненного цикла бронирования
const (
	TypeReservationCreated = "reservation.created"
	TypeReservationDeleted = "reservation.deleted"
)

// Event конверт события для брокера
type Event struct {
	ID          string             `json:"eventId"`
	Type        string             `json:"type"`
	OccurredAt  time.Time          `json:"occurredAt"`
	Reservation ReservationPayload `json:"reservation"`
}

// ReservationPayload снимок бронирования внутри события
type ReservationPayload struct {
	ID        int64  `json:"id"`
	Community string `json:"community"`
	Villa     string `json:"villa"`
	Court     string `json:"court"`
	Date      string `json:"date"`
	StartHour int    `json:"startHour"`
}

// newEvent собирает конверт события по снимку бронирования
func newEvent(eventType string, res *domain.Reservation) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Reservation: ReservationPayload{
			ID:        res.ID,
			Community: res.Claimant.Community,
			Villa:     res.Claimant.Villa,
			Court:     res.Court,
			Date:      res.Date.Format(domain.DateFormat),
			StartHour: res.StartHour,
		},
	}
}
