package get_free_hours

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не входит в набор сообщества
	ErrCourtNotFound = errors.New("get_free_hours: court not found")

	// ErrDateOutOfWindow возвращается, когда дата дальше горизонта бронирования
	ErrDateOutOfWindow = errors.New("get_free_hours: date outside booking window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_free_hours: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_hours: internal error")
)
