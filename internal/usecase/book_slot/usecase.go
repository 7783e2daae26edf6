package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
	reservationRepo "github.com/m04kA/Mira-CourtBooking/internal/infra/storage/reservation"
)

// UseCase use case бронирования слота
type UseCase struct {
	reservationRepo ReservationRepository
	activityRepo    ActivityRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	events          EventPublisher
	logger          Logger
	rules           domain.Rules
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepository ReservationRepository,
	activityRepository ActivityRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	events EventPublisher,
	logger Logger,
	rules domain.Rules,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepository,
		activityRepo:    activityRepository,
		txManager:       txManager,
		timeProvider:    timeProvider,
		events:          events,
		logger:          logger,
		rules:           rules,
	}
}

// Execute выполняет бронирование слота.
// Проверки идут в фиксированном порядке внутри сериализуемой транзакции:
// истекший слот, общая квота, дневная квота, занятость слота. Первый
// сработавший отказ и возвращается. Гонку двух запросов на один слот
// окончательно решает уникальный индекс БД: проигравший INSERT получает
// ErrSlotAlreadyBooked.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: claimant=%s, court=%s, date=%s, hour=%d",
		req.Claimant, req.Court, req.Date.Format(domain.DateFormat), req.StartHour)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.rules); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время сообщества - одно на весь запрос
	now := uc.timeProvider.Now()
	today := domain.DateOnly(now)

	// 3. Дата в пределах горизонта бронирования
	if err := validateWindow(req.Date, today, uc.rules); err != nil {
		uc.logger.Warn("BookSlot: window validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 4. Решение о бронировании в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Слот не истек
		if domain.SlotElapsed(req.Date, req.StartHour, now) {
			uc.logger.Warn("BookSlot: slot %s %s %02d:00 already elapsed",
				req.Court, req.Date.Format(domain.DateFormat), req.StartHour)
			return ErrSlotExpired
		}

		// 4.2. Общая квота неистекших бронирований
		activeCount, err := uc.reservationRepo.CountActive(txCtx, req.Claimant, today, now.Hour())
		if err != nil {
			uc.logger.Error("BookSlot: failed to count active reservations: %v", err)
			return fmt.Errorf("%w: failed to count active reservations: %v", ErrInternal, err)
		}
		if activeCount >= uc.rules.MaxActiveBookings {
			uc.logger.Warn("BookSlot: claimant=%s has %d/%d active reservations",
				req.Claimant, activeCount, uc.rules.MaxActiveBookings)
			return ErrActiveQuotaExceeded
		}

		// 4.3. Дневная квота на запрошенную дату
		dayCount, err := uc.reservationRepo.CountActiveOnDate(txCtx, req.Claimant, req.Date, today, now.Hour())
		if err != nil {
			uc.logger.Error("BookSlot: failed to count reservations on date: %v", err)
			return fmt.Errorf("%w: failed to count reservations on date: %v", ErrInternal, err)
		}
		if dayCount >= uc.rules.MaxPerDayBookings {
			uc.logger.Warn("BookSlot: claimant=%s has %d/%d reservations on %s",
				req.Claimant, dayCount, uc.rules.MaxPerDayBookings, req.Date.Format(domain.DateFormat))
			return ErrDailyQuotaExceeded
		}

		// 4.4. Слот свободен (повторная проверка перед записью)
		taken, err := uc.reservationRepo.Exists(txCtx, req.Court, req.Date, req.StartHour)
		if err != nil {
			uc.logger.Error("BookSlot: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("BookSlot: slot %s %s %02d:00 already booked",
				req.Court, req.Date.Format(domain.DateFormat), req.StartHour)
			return ErrSlotAlreadyBooked
		}

		// 4.5. Создаем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			Claimant:  req.Claimant,
			Court:     req.Court,
			Date:      domain.DateOnly(req.Date),
			StartHour: req.StartHour,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("BookSlot: slot %s %s %02d:00 taken by concurrent request",
					req.Court, req.Date.Format(domain.DateFormat), req.StartHour)
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("BookSlot: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 4.6. Фиксируем событие в журнале той же транзакцией
		_, err = uc.activityRepo.Append(txCtx, &domain.ActivityEntry{
			EventType:  domain.EventCreated,
			Claimant:   created.Claimant,
			Court:      created.Court,
			Date:       created.Date,
			StartHour:  created.StartHour,
			OccurredAt: now,
		})
		if err != nil {
			uc.logger.Error("BookSlot: failed to append activity entry: %v", err)
			return fmt.Errorf("%w: failed to append activity entry: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSlot: successfully booked reservation id=%d", result.ID)

	// 5. Публикуем событие после коммита, ошибка не влияет на результат
	if err := uc.events.ReservationCreated(ctx, result); err != nil {
		uc.logger.Warn("BookSlot: failed to publish reservation.created event: %v", err)
	}

	return &Response{
		ID:        result.ID,
		Community: result.Claimant.Community,
		Villa:     result.Claimant.Villa,
		Court:     result.Court,
		Date:      result.Date,
		StartHour: result.StartHour,
		CreatedAt: result.CreatedAt,
	}, nil
}
