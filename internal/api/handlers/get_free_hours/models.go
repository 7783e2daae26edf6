package get_free_hours

import (
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
	getFreeHours "github.com/m04kA/Mira-CourtBooking/internal/usecase/get_free_hours"
)

// FreeHoursResponse HTTP response model
type FreeHoursResponse struct {
	Court     string `json:"court"`
	Date      string `json:"date"`
	FreeHours []int  `json:"freeHours"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(court, dateStr string) (*getFreeHours.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getFreeHours.Request{
		Court: court,
		Date:  date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeHours.Response) *FreeHoursResponse {
	return &FreeHoursResponse{
		Court:     resp.Court,
		Date:      resp.Date.Format(domain.DateFormat),
		FreeHours: resp.FreeHours,
	}
}
