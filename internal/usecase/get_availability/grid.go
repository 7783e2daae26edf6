package get_availability

import (
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// buildGrid раскладывает бронирования даты по сетке корт x час.
// Истекшие часы показываются как elapsed даже при наличии записи:
// состояние booked имеет смысл только для слотов, которые еще можно
// было бы занять.
func buildGrid(rules domain.Rules, date, now time.Time, reservations []*domain.Reservation) map[string]map[int]domain.SlotStatus {
	type slotKey struct {
		court string
		hour  int
	}

	booked := make(map[slotKey]bool, len(reservations))
	for _, res := range reservations {
		booked[slotKey{court: res.Court, hour: res.StartHour}] = true
	}

	grid := make(map[string]map[int]domain.SlotStatus, len(rules.Courts))
	for _, court := range rules.Courts {
		row := make(map[int]domain.SlotStatus, rules.LastHour-rules.FirstHour+1)
		for _, hour := range rules.Hours() {
			row[hour] = domain.SlotStatusAt(date, hour, booked[slotKey{court: court, hour: hour}], now)
		}
		grid[court] = row
	}

	return grid
}
