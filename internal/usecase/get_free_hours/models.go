package get_free_hours

import "time"

// Request модель запроса свободных часов корта
type Request struct {
	Court string    // название корта
	Date  time.Time // дата, на которую ищутся свободные часы
}

// Response модель ответа со свободными часами
type Response struct {
	Court     string    // корт
	Date      time.Time // дата
	FreeHours []int     // часы, которые еще можно забронировать, по возрастанию
}
