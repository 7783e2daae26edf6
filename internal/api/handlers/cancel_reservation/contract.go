package cancel_reservation

import (
	"context"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

type ReservationService interface {
	Cancel(ctx context.Context, reservationID int64, claimant domain.Claimant) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
