package domain

// HourCount is the number of reservations starting at one hour,
// aggregated across all courts and dates currently stored
type HourCount struct {
	StartHour int
	Count     int64
}

// WeekdayCount is the number of reservations falling on one ISO
// weekday (1 = Monday ... 7 = Sunday)
type WeekdayCount struct {
	Weekday int
	Count   int64
}
