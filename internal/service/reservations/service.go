package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
	reservationRepo "github.com/m04kA/Mira-CourtBooking/internal/infra/storage/reservation"
	"github.com/m04kA/Mira-CourtBooking/internal/service/reservations/models"
)

// Service сервис управления бронированиями заявителя
type Service struct {
	reservationRepo ReservationRepository
	activityRepo    ActivityRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	events          EventPublisher
	logger          Logger
}

// NewService создает новый сервис бронирований
func NewService(
	reservationRepository ReservationRepository,
	activityRepository ActivityRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	events EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepository,
		activityRepo:    activityRepository,
		txManager:       txManager,
		timeProvider:    timeProvider,
		events:          events,
		logger:          logger,
	}
}

// ListByClaimant возвращает все бронирования заявителя с признаком активности
func (s *Service) ListByClaimant(ctx context.Context, claimant domain.Claimant) (*models.ReservationListResponse, error) {
	if !claimant.Valid() {
		s.logger.Warn("ListByClaimant: empty claimant identity")
		return nil, fmt.Errorf("%w: community and villa are required", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByClaimant(ctx, claimant)
	if err != nil {
		s.logger.Error("ListByClaimant: failed to load reservations for %s: %v", claimant, err)
		return nil, fmt.Errorf("%w: ListByClaimant - failed to load reservations: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	return models.FromDomainReservationList(reservations, now), nil
}

// Cancel удаляет бронирование заявителя.
// Запись журнала и удаление строки выполняются в одной транзакции.
// Чужое бронирование неотличимо в ответе от несуществующего.
func (s *Service) Cancel(ctx context.Context, reservationID int64, claimant domain.Claimant) error {
	if !claimant.Valid() {
		s.logger.Warn("Cancel: empty claimant identity")
		return fmt.Errorf("%w: community and villa are required", ErrInvalidInput)
	}

	if reservationID <= 0 {
		s.logger.Warn("Cancel: invalid reservation id = %d", reservationID)
		return fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	now := s.timeProvider.Now()

	var cancelled *domain.Reservation

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - failed to load reservation: %v", ErrInternal, err)
		}

		if !res.Claimant.Equal(claimant) {
			s.logger.Warn("Cancel: reservation id = %d belongs to another claimant", reservationID)
			return ErrReservationNotFound
		}

		entry := &domain.ActivityEntry{
			EventType:  domain.EventDeleted,
			Claimant:   res.Claimant,
			Court:      res.Court,
			Date:       res.Date,
			StartHour:  res.StartHour,
			OccurredAt: now,
		}

		if _, err := s.activityRepo.Append(txCtx, entry); err != nil {
			return fmt.Errorf("%w: Cancel - failed to append activity entry: %v", ErrInternal, err)
		}

		if err := s.reservationRepo.DeleteByClaimant(txCtx, reservationID, claimant); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - failed to delete reservation: %v", ErrInternal, err)
		}

		cancelled = res

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id = %d not found for %s", reservationID, claimant)
			return err
		}
		s.logger.Error("Cancel: transaction failed for reservation id = %d: %v", reservationID, err)
		return err
	}

	s.logger.Info("Cancel: reservation id = %d released %s", reservationID, cancelled.SlotLabel())

	if err := s.events.ReservationDeleted(ctx, cancelled); err != nil {
		s.logger.Warn("Cancel: failed to publish reservation.deleted event: %v", err)
	}

	return nil
}
