package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// UseCase use case для получения сетки доступности на дату
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

// Execute строит сетку состояния всех кортов и часов на дату.
// Сетка вычисляется из бронирований и текущего времени на момент
// запроса; она устаревает сразу после чтения, истину хранит БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Текущее время сообщества
	now := uc.timeProvider.Now()
	today := domain.DateOnly(now)

	// 2. Валидация входных данных
	if err := validateRequest(req, today, uc.rules); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 3. Бронирования на дату по всем кортам
	reservations, err := uc.reservationRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Раскладываем по сетке корт x час
	grid := buildGrid(uc.rules, req.Date, now, reservations)

	uc.logger.Info("GetAvailability: date=%s, %d reservations on %d courts",
		req.Date.Format(domain.DateFormat), len(reservations), len(uc.rules.Courts))

	courts := make([]string, len(uc.rules.Courts))
	copy(courts, uc.rules.Courts)

	return &Response{
		Date:   domain.DateOnly(req.Date),
		Courts: courts,
		Hours:  uc.rules.Hours(),
		Grid:   grid,
	}, nil
}
