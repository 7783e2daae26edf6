package book_slot

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не входит в набор сообщества
	ErrCourtNotFound = errors.New("book_slot: court not found")

	// ErrHourOutOfRange возвращается, когда час начала вне диапазона бронирования
	ErrHourOutOfRange = errors.New("book_slot: start hour out of range")

	// ErrDateOutOfWindow возвращается, когда дата дальше горизонта бронирования
	ErrDateOutOfWindow = errors.New("book_slot: date outside booking window")

	// ErrSlotExpired возвращается, когда время слота уже прошло
	ErrSlotExpired = errors.New("book_slot: slot time has passed")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят
	ErrSlotAlreadyBooked = errors.New("book_slot: slot already booked")

	// ErrActiveQuotaExceeded возвращается при превышении общей квоты
	// неистекших бронирований заявителя
	ErrActiveQuotaExceeded = errors.New("book_slot: active bookings quota exceeded")

	// ErrDailyQuotaExceeded возвращается при превышении квоты бронирований
	// заявителя на одну дату
	ErrDailyQuotaExceeded = errors.New("book_slot: daily bookings quota exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
