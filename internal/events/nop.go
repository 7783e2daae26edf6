package events

import (
	"context"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// NopPublisher заглушка для окружений без брокера ([events].enabled = false)
type NopPublisher struct{}

func (NopPublisher) ReservationCreated(ctx context.Context, res *domain.Reservation) error {
	return nil
}

func (NopPublisher) ReservationDeleted(ctx context.Context, res *domain.Reservation) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
