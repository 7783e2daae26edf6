package domain

import (
	"fmt"
	"time"
)

// Rules represents the fixed booking configuration: the court set, the
// bookable hours, the rolling booking window and the quota ceilings.
// Loaded once at startup; there is no per-court or per-claimant variation.
type Rules struct {
	Courts             []string
	FirstHour          int // first bookable start hour, inclusive
	LastHour           int // last bookable start hour, inclusive
	WindowDays         int // bookable dates run from today to today+WindowDays
	MaxActiveBookings  int // ceiling on outstanding reservations per claimant
	MaxPerDayBookings  int // ceiling on outstanding reservations per claimant per date
	ActivityWindowDays int // how far back the activity feed reaches
}

// DefaultRules returns the community defaults
func DefaultRules() Rules {
	courts := make([]string, len(DefaultCourts))
	copy(courts, DefaultCourts)

	return Rules{
		Courts:             courts,
		FirstHour:          DefaultFirstHour,
		LastHour:           DefaultLastHour,
		WindowDays:         DefaultWindowDays,
		MaxActiveBookings:  DefaultMaxActiveBookings,
		MaxPerDayBookings:  DefaultMaxPerDayBookings,
		ActivityWindowDays: DefaultActivityWindowDays,
	}
}

// Validate checks that the rule set is internally consistent
func (r Rules) Validate() error {
	if len(r.Courts) == 0 {
		return fmt.Errorf("rules: court list is empty")
	}
	seen := make(map[string]struct{}, len(r.Courts))
	for _, court := range r.Courts {
		if court == "" {
			return fmt.Errorf("rules: court name is empty")
		}
		if _, ok := seen[court]; ok {
			return fmt.Errorf("rules: duplicate court %q", court)
		}
		seen[court] = struct{}{}
	}

	if r.FirstHour < 0 || r.FirstHour > 23 {
		return fmt.Errorf("rules: first hour %d out of range", r.FirstHour)
	}
	if r.LastHour < r.FirstHour || r.LastHour > 23 {
		return fmt.Errorf("rules: last hour %d out of range", r.LastHour)
	}
	if r.WindowDays <= 0 {
		return fmt.Errorf("rules: window days must be positive")
	}
	if r.MaxActiveBookings <= 0 {
		return fmt.Errorf("rules: max active bookings must be positive")
	}
	if r.MaxPerDayBookings <= 0 {
		return fmt.Errorf("rules: max per-day bookings must be positive")
	}
	if r.ActivityWindowDays <= 0 {
		return fmt.Errorf("rules: activity window days must be positive")
	}
	return nil
}

// CourtExists returns true if the named court is part of the rule set
func (r Rules) CourtExists(name string) bool {
	for _, court := range r.Courts {
		if court == name {
			return true
		}
	}
	return false
}

// HourInRange returns true if h is a bookable start hour
func (r Rules) HourInRange(h int) bool {
	return h >= r.FirstHour && h <= r.LastHour
}

// Hours returns all bookable start hours in ascending order
func (r Rules) Hours() []int {
	hours := make([]int, 0, r.LastHour-r.FirstHour+1)
	for h := r.FirstHour; h <= r.LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// BeyondWindow returns true if date lies past the far edge of the
// rolling booking window. Dates before today are not a window violation;
// they fail the elapsed check instead.
func (r Rules) BeyondWindow(date, today time.Time) bool {
	edge := DateOnly(today).AddDate(0, 0, r.WindowDays)
	return DateOnly(date).After(edge)
}

// WindowDates returns every bookable date from today through the far
// edge of the window, in order
func (r Rules) WindowDates(today time.Time) []time.Time {
	dates := make([]time.Time, 0, r.WindowDays+1)
	start := DateOnly(today)
	for i := 0; i <= r.WindowDays; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}
