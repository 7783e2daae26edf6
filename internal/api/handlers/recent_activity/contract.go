package recent_activity

import (
	"context"

	"github.com/m04kA/Mira-CourtBooking/internal/service/reports/models"
)

type ReportService interface {
	RecentActivity(ctx context.Context, days int) (*models.ActivityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
