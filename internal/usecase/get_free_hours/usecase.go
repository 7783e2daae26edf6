package get_free_hours

import (
	"context"
	"fmt"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// UseCase use case для получения свободных часов одного корта
type UseCase struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
	rules           domain.Rules
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepository ReservationRepository,
	timeProvider TimeProvider,
	logger Logger,
	rules domain.Rules,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepository,
		timeProvider:    timeProvider,
		logger:          logger,
		rules:           rules,
	}
}

// Execute возвращает часы корта, которые еще можно забронировать на дату:
// не занятые и не истекшие на момент запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeHours: court=%s, date=%s", req.Court, req.Date.Format(domain.DateFormat))

	// 1. Текущее время сообщества
	now := uc.timeProvider.Now()
	today := domain.DateOnly(now)

	// 2. Валидация входных данных
	if err := validateRequest(req, today, uc.rules); err != nil {
		uc.logger.Warn("GetFreeHours: validation failed: %v", err)
		return nil, err
	}

	// 3. Бронирования корта на дату
	reservations, err := uc.reservationRepo.GetByCourtAndDate(ctx, req.Court, req.Date)
	if err != nil {
		uc.logger.Error("GetFreeHours: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	booked := make(map[int]bool, len(reservations))
	for _, res := range reservations {
		booked[res.StartHour] = true
	}

	// 4. Свободен час, который не занят и не истек
	freeHours := make([]int, 0, len(uc.rules.Hours()))
	for _, hour := range uc.rules.Hours() {
		if booked[hour] {
			continue
		}
		if domain.SlotElapsed(req.Date, hour, now) {
			continue
		}
		freeHours = append(freeHours, hour)
	}

	uc.logger.Info("GetFreeHours: court=%s, date=%s, %d free hours",
		req.Court, req.Date.Format(domain.DateFormat), len(freeHours))

	return &Response{
		Court:     req.Court,
		Date:      domain.DateOnly(req.Date),
		FreeHours: freeHours,
	}, nil
}
