package reclaim_expired

import (
	"context"
	"time"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	DeleteElapsed(ctx context.Context, today time.Time, nowHour int) (int64, error)
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
