package book_slot

import (
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
	bookSlot "github.com/m04kA/Mira-CourtBooking/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	Court     string `json:"court" validate:"required"`
	Date      string `json:"date" validate:"required"` // "2025-10-15"
	StartHour int    `json:"startHour"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64  `json:"id"`
	Community string `json:"community"`
	Villa     string `json:"villa"`
	Court     string `json:"court"`
	Date      string `json:"date"`
	StartHour int    `json:"startHour"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest(claimant domain.Claimant) (*bookSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &bookSlot.Request{
		Claimant:  claimant,
		Court:     r.Court,
		Date:      date,
		StartHour: r.StartHour,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		Community: resp.Community,
		Villa:     resp.Villa,
		Court:     resp.Court,
		Date:      resp.Date.Format(domain.DateFormat),
		StartHour: resp.StartHour,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
