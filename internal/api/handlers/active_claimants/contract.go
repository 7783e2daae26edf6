package active_claimants

import (
	"context"

	"github.com/m04kA/Mira-CourtBooking/internal/service/reports/models"
)

type ReportService interface {
	ActiveClaimants(ctx context.Context) (*models.ActiveClaimantsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
