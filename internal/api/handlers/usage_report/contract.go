package usage_report

import (
	"context"

	"github.com/m04kA/Mira-CourtBooking/internal/service/reports/models"
)

type ReportService interface {
	Usage(ctx context.Context) (*models.UsageReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
