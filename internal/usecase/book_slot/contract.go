package book_slot

import (
	"context"
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	Exists(ctx context.Context, court string, date time.Time, startHour int) (bool, error)
	CountActive(ctx context.Context, claimant domain.Claimant, today time.Time, nowHour int) (int, error)
	CountActiveOnDate(ctx context.Context, claimant domain.Claimant, date, today time.Time, nowHour int) (int, error)
}

// ActivityRepository интерфейс журнала активности
type ActivityRepository interface {
	Append(ctx context.Context, entry *domain.ActivityEntry) (*domain.ActivityEntry, error)
}

// EventPublisher интерфейс публикации событий в брокер
type EventPublisher interface {
	ReservationCreated(ctx context.Context, res *domain.Reservation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
