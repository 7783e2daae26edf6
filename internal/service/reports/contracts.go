package reports

import (
	"context"
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListActiveClaimants(ctx context.Context, today time.Time, nowHour int) ([]domain.Claimant, error)
	CountByHour(ctx context.Context) ([]domain.HourCount, error)
	CountByWeekday(ctx context.Context) ([]domain.WeekdayCount, error)
}

// ActivityRepository интерфейс журнала активности
type ActivityRepository interface {
	GetSince(ctx context.Context, since time.Time) ([]*domain.ActivityEntry, error)
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
