package reservations

import (
	"context"
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByClaimant(ctx context.Context, claimant domain.Claimant) ([]*domain.Reservation, error)
	DeleteByClaimant(ctx context.Context, id int64, claimant domain.Claimant) error
}

// ActivityRepository интерфейс журнала активности
type ActivityRepository interface {
	Append(ctx context.Context, entry *domain.ActivityEntry) (*domain.ActivityEntry, error)
}

// EventPublisher интерфейс публикации событий в брокер
type EventPublisher interface {
	ReservationDeleted(ctx context.Context, res *domain.Reservation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
