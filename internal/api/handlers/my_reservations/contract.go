package my_reservations

import (
	"context"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
	"github.com/m04kA/Mira-CourtBooking/internal/service/reservations/models"
)

type ReservationService interface {
	ListByClaimant(ctx context.Context, claimant domain.Claimant) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
