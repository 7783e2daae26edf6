package domain

import "time"

// SlotStatus represents the state of one court/date/hour cell
type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusBooked    SlotStatus = "booked"
	StatusElapsed   SlotStatus = "elapsed"
)

// SlotElapsed reports whether the slot's start moment lies in the past:
// any earlier date, any earlier hour today, or the current hour once
// its first minute has begun. At minute zero of an hour that hour's
// slot is still bookable.
//
// Note the asymmetry with Reservation.IsActive: the booking cutoff is
// minute-sensitive while the quota boundary is hour-only, so during the
// hour in progress a slot is elapsed for new bookings while an existing
// reservation on it still counts as active.
func SlotElapsed(date time.Time, startHour int, now time.Time) bool {
	today := DateOnly(now)
	slotDate := DateOnly(date)

	if slotDate.Before(today) {
		return true
	}
	if slotDate.After(today) {
		return false
	}

	if startHour < now.Hour() {
		return true
	}
	if startHour == now.Hour() && now.Minute() > 0 {
		return true
	}
	return false
}

// SlotStatusAt resolves the state of a slot given whether it is booked
func SlotStatusAt(date time.Time, startHour int, booked bool, now time.Time) SlotStatus {
	if SlotElapsed(date, startHour, now) {
		return StatusElapsed
	}
	if booked {
		return StatusBooked
	}
	return StatusAvailable
}

// DateOnly reduces t to its calendar date, normalized to midnight UTC.
// Times from different zones (the booking clock, DATE columns scanned
// back from PostgreSQL) reduce to comparable instants, so Before, After
// and Equal act as pure calendar-date comparisons.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate returns true if both times fall on the same calendar day
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
