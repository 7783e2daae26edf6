package book_slot

import (
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// Request модель запроса на бронирование слота
type Request struct {
	Claimant  domain.Claimant // кто бронирует (из заголовков идентификации)
	Court     string          // название корта
	Date      time.Time       // дата слота (без времени)
	StartHour int             // час начала слота
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64     // ID созданного бронирования
	Community string    // сообщество заявителя
	Villa     string    // вилла заявителя
	Court     string    // корт
	Date      time.Time // дата слота
	StartHour int       // час начала
	CreatedAt time.Time // время создания записи
}
