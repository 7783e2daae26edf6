package reports

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service: internal error")
)
