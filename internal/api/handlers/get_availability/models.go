package get_availability

import (
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
	getAvailability "github.com/m04kA/Mira-CourtBooking/internal/usecase/get_availability"
)

// SlotStatusResponse статус одного часового слота
type SlotStatusResponse struct {
	StartHour int    `json:"startHour"`
	Status    string `json:"status"`
}

// CourtAvailability расписание одного корта на день
type CourtAvailability struct {
	Court string               `json:"court"`
	Slots []SlotStatusResponse `json:"slots"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date   string              `json:"date"`
	Hours  []int               `json:"hours"`
	Courts []CourtAvailability `json:"courts"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	courts := make([]CourtAvailability, 0, len(resp.Courts))
	for _, court := range resp.Courts {
		slots := make([]SlotStatusResponse, 0, len(resp.Hours))
		for _, hour := range resp.Hours {
			slots = append(slots, SlotStatusResponse{
				StartHour: hour,
				Status:    string(resp.Grid[court][hour]),
			})
		}

		courts = append(courts, CourtAvailability{
			Court: court,
			Slots: slots,
		})
	}

	return &AvailabilityResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		Hours:  resp.Hours,
		Courts: courts,
	}
}
