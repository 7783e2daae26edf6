package get_availability

import (
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// Request модель запроса сетки доступности
type Request struct {
	Date time.Time // дата, на которую строится сетка
}

// Response модель ответа с сеткой доступности корт x час
type Response struct {
	Date   time.Time                            // запрошенная дата
	Courts []string                             // корты в порядке конфигурации
	Hours  []int                                // часы бронирования по возрастанию
	Grid   map[string]map[int]domain.SlotStatus // состояние каждой ячейки
}
