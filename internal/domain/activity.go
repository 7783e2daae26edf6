package domain

import "time"

// ActivityEventType represents the kind of reservation lifecycle event
type ActivityEventType string

const (
	EventCreated ActivityEventType = "created"
	EventDeleted ActivityEventType = "deleted"
)

// ActivityEntry is one append-only audit record. Entries carry a full
// snapshot of the slot so they stay readable after the reservation row
// itself is gone.
type ActivityEntry struct {
	ID         int64
	EventType  ActivityEventType
	Claimant   Claimant
	Court      string
	Date       time.Time // calendar date of the reserved slot
	StartHour  int
	OccurredAt time.Time
}
