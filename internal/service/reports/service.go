package reports

import (
	"context"
	"fmt"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
	"github.com/m04kA/Mira-CourtBooking/internal/service/reports/models"
)

// Service сервис отчетов по занятости кортов
type Service struct {
	reservationRepo ReservationRepository
	activityRepo    ActivityRepository
	timeProvider    TimeProvider
	logger          Logger
	rules           domain.Rules
}

// NewService создает новый сервис отчетов
func NewService(
	reservationRepository ReservationRepository,
	activityRepository ActivityRepository,
	timeProvider TimeProvider,
	logger Logger,
	rules domain.Rules,
) *Service {
	return &Service{
		reservationRepo: reservationRepository,
		activityRepo:    activityRepository,
		timeProvider:    timeProvider,
		logger:          logger,
		rules:           rules,
	}
}

// ActiveClaimants возвращает виллы, у которых есть хотя бы одно неистекшее бронирование
func (s *Service) ActiveClaimants(ctx context.Context) (*models.ActiveClaimantsResponse, error) {
	now := s.timeProvider.Now()
	today := domain.DateOnly(now)

	claimants, err := s.reservationRepo.ListActiveClaimants(ctx, today, now.Hour())
	if err != nil {
		s.logger.Error("ActiveClaimants: failed to list claimants: %v", err)
		return nil, fmt.Errorf("%w: ActiveClaimants - failed to list claimants: %v", ErrInternal, err)
	}

	return models.FromDomainClaimants(claimants), nil
}

// Usage возвращает распределение всех бронирований по часам начала и дням недели
func (s *Service) Usage(ctx context.Context) (*models.UsageReportResponse, error) {
	byHour, err := s.reservationRepo.CountByHour(ctx)
	if err != nil {
		s.logger.Error("Usage: failed to count by hour: %v", err)
		return nil, fmt.Errorf("%w: Usage - failed to count by hour: %v", ErrInternal, err)
	}

	byWeekday, err := s.reservationRepo.CountByWeekday(ctx)
	if err != nil {
		s.logger.Error("Usage: failed to count by weekday: %v", err)
		return nil, fmt.Errorf("%w: Usage - failed to count by weekday: %v", ErrInternal, err)
	}

	return models.FromDomainUsage(byHour, byWeekday), nil
}

// RecentActivity возвращает журнал за последние days дней.
// Нулевое или отрицательное значение, как и превышение потолка,
// приводится к окну из правил сообщества.
func (s *Service) RecentActivity(ctx context.Context, days int) (*models.ActivityListResponse, error) {
	if days <= 0 || days > s.rules.ActivityWindowDays {
		days = s.rules.ActivityWindowDays
	}

	now := s.timeProvider.Now()
	since := now.AddDate(0, 0, -days)

	entries, err := s.activityRepo.GetSince(ctx, since)
	if err != nil {
		s.logger.Error("RecentActivity: failed to load activity log: %v", err)
		return nil, fmt.Errorf("%w: RecentActivity - failed to load activity log: %v", ErrInternal, err)
	}

	return models.FromDomainActivityList(entries, days), nil
}
