package reclaim_expired

import (
	"time"

	reclaimExpired "github.com/m04kA/Mira-CourtBooking/internal/usecase/reclaim_expired"
)

// ReclaimResponse HTTP response model
type ReclaimResponse struct {
	Deleted int64  `json:"deleted"`
	AsOf    string `json:"asOf"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reclaimExpired.Response) *ReclaimResponse {
	return &ReclaimResponse{
		Deleted: resp.Deleted,
		AsOf:    resp.AsOf.Format(time.RFC3339),
	}
}
