package reservations

import "errors"

var (
	// ErrReservationNotFound бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service: internal error")
)
