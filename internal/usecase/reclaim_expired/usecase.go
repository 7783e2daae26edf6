package reclaim_expired

import (
	"context"
	"fmt"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// UseCase use case уборки истекших бронирований.
// Запускается при старте сервиса и по запросу через maintenance endpoint.
type UseCase struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepository ReservationRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepository,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute удаляет бронирования, чей слот полностью прошел. Операция
// идемпотентна: условие удаления вычисляется от текущего момента,
// повторный запуск без новых истекших записей удаляет ноль строк.
// Журнал активности не трогаем - уборка не является отменой.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	today := domain.DateOnly(now)

	deleted, err := uc.reservationRepo.DeleteElapsed(ctx, today, now.Hour())
	if err != nil {
		uc.logger.Error("ReclaimExpired: failed to delete elapsed reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to delete elapsed reservations: %v", ErrInternal, err)
	}

	uc.logger.Info("ReclaimExpired: deleted %d elapsed reservations as of %s %02d:00",
		deleted, today.Format(domain.DateFormat), now.Hour())

	return &Response{
		Deleted: deleted,
		AsOf:    now,
	}, nil
}
