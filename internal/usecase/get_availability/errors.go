package get_availability

import "errors"

var (
	// ErrDateOutOfWindow возвращается, когда дата дальше горизонта бронирования
	ErrDateOutOfWindow = errors.New("get_availability: date outside booking window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
