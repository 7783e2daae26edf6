package get_free_hours

import (
	"context"

	getFreeHours "github.com/m04kA/Mira-CourtBooking/internal/usecase/get_free_hours"
)

type GetFreeHoursUseCase interface {
	Execute(ctx context.Context, req *getFreeHours.Request) (*getFreeHours.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
