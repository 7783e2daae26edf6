package domain

import (
	"fmt"
	"time"
)

// Reservation represents a claim on one court for one hour-long slot.
// A slot is fully identified by (court, date, start hour); at most one
// reservation may exist per slot.
type Reservation struct {
	ID        int64
	Claimant  Claimant
	Court     string
	Date      time.Time // calendar date, time part zero
	StartHour int       // 24h clock hour the slot begins at
	CreatedAt time.Time
}

// IsActive returns true if the reservation still counts against the
// claimant's quotas: any future date, or today with a start hour at or
// after the current hour. This boundary ignores minutes, so a
// reservation for the hour in progress keeps counting until the hour
// rolls over even though the slot itself can no longer be booked.
func (r *Reservation) IsActive(now time.Time) bool {
	today := DateOnly(now)
	date := DateOnly(r.Date)

	if date.After(today) {
		return true
	}
	if date.Equal(today) {
		return r.StartHour >= now.Hour()
	}
	return false
}

// SlotLabel returns a human-readable slot description for the activity log
func (r *Reservation) SlotLabel() string {
	return fmt.Sprintf("%s on %s at %02d:00", r.Court, r.Date.Format(DateFormat), r.StartHour)
}
