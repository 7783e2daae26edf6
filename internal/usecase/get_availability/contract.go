package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// TimeProvider интерфейс для получения текущего времени сообщества
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
