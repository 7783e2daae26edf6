package reclaim_expired

import (
	"context"

	reclaimExpired "github.com/m04kA/Mira-CourtBooking/internal/usecase/reclaim_expired"
)

type ReclaimExpiredUseCase interface {
	Execute(ctx context.Context) (*reclaimExpired.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
