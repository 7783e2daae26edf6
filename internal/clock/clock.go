package clock

import "time"

// Location часовой пояс бронирований: Gulf Standard Time (UTC+4, Дубай).
// Пояс фиксированный, без переходов на летнее время. "Сегодня" и
// "текущий час" во всех проверках считаются в нём, а не в поясе сервера.
var Location = time.FixedZone("GST", 4*60*60)

// Clock источник текущего времени в часовом поясе бронирований
type Clock struct{}

// New создает часы сообщества
func New() *Clock {
	return &Clock{}
}

// Now возвращает текущее время, приведенное к GST
func (c *Clock) Now() time.Time {
	return time.Now().In(Location)
}
