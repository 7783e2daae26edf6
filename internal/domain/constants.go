package domain

// Default booking rules for the Mira community courts
const (
	DefaultFirstHour          = 7
	DefaultLastHour           = 21
	DefaultWindowDays         = 14 // today plus the next 14 days
	DefaultMaxActiveBookings  = 6
	DefaultMaxPerDayBookings  = 2
	DefaultActivityWindowDays = 14
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultCourts список кортов сообщества
var DefaultCourts = []string{
	"Mira 2",
	"Mira 4",
	"Mira 5A",
	"Mira 5B",
	"Mira Oasis 1",
	"Mira Oasis 2",
	"Mira Oasis 3A",
	"Mira Oasis 3B",
	"Mira Oasis 3C",
}
