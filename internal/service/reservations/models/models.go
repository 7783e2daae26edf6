package models

import (
	"time"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// ReservationResponse бронирование в ответе API
type ReservationResponse struct {
	ID        int64     `json:"id"`
	Community string    `json:"community"`
	Villa     string    `json:"villa"`
	Court     string    `json:"court"`
	Date      string    `json:"date"`
	StartHour int       `json:"startHour"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse список бронирований заявителя
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует доменную модель в DTO ответа
func FromDomainReservation(res *domain.Reservation, now time.Time) ReservationResponse {
	return ReservationResponse{
		ID:        res.ID,
		Community: res.Claimant.Community,
		Villa:     res.Claimant.Villa,
		Court:     res.Court,
		Date:      res.Date.Format(domain.DateFormat),
		StartHour: res.StartHour,
		Active:    res.IsActive(now),
		CreatedAt: res.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список доменных моделей в DTO ответа
func FromDomainReservationList(reservations []*domain.Reservation, now time.Time) *ReservationListResponse {
	items := make([]ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		items = append(items, FromDomainReservation(res, now))
	}

	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}
