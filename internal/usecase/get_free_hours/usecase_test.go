package get_free_hours

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

var gst = time.FixedZone("GST", 4*60*60)

type mockReservationRepository struct {
	getByCourtAndDateFunc func(ctx context.Context, court string, date time.Time) ([]*domain.Reservation, error)
}

func (m *mockReservationRepository) GetByCourtAndDate(ctx context.Context, court string, date time.Time) ([]*domain.Reservation, error) {
	if m.getByCourtAndDateFunc != nil {
		return m.getByCourtAndDateFunc(ctx, court, date)
	}
	return nil, nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newUseCaseWithBookings(now time.Time, bookedHours ...int) *UseCase {
	repo := &mockReservationRepository{
		getByCourtAndDateFunc: func(ctx context.Context, court string, date time.Time) ([]*domain.Reservation, error) {
			reservations := make([]*domain.Reservation, 0, len(bookedHours))
			for _, hour := range bookedHours {
				reservations = append(reservations, &domain.Reservation{
					Court:     court,
					Date:      date,
					StartHour: hour,
				})
			}
			return reservations, nil
		},
	}

	return NewUseCase(repo, &fixedClock{now: now}, nopLogger{}, domain.DefaultRules())
}

func TestExecute_FutureDateSkipsBookedHours(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	uc := newUseCaseWithBookings(now, 10, 15)

	resp, err := uc.Execute(context.Background(), &Request{
		Court: "Mira 2",
		Date:  time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "Mira 2", resp.Court)
	assert.Len(t, resp.FreeHours, 13)
	assert.NotContains(t, resp.FreeHours, 10)
	assert.NotContains(t, resp.FreeHours, 15)
	assert.Contains(t, resp.FreeHours, 7)
	assert.Contains(t, resp.FreeHours, 21)
}

func TestExecute_TodaySkipsElapsedHours(t *testing.T) {
	// В 14:30 свободны только часы с 15:00, занятые исключаются
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	uc := newUseCaseWithBookings(now, 16)

	resp, err := uc.Execute(context.Background(), &Request{
		Court: "Mira 2",
		Date:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, []int{15, 17, 18, 19, 20, 21}, resp.FreeHours)
}

func TestExecute_TodayAtMinuteZeroKeepsCurrentHour(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, gst)
	uc := newUseCaseWithBookings(now)

	resp, err := uc.Execute(context.Background(), &Request{
		Court: "Mira 2",
		Date:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, []int{14, 15, 16, 17, 18, 19, 20, 21}, resp.FreeHours)
}

func TestExecute_PastDateHasNoFreeHours(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	uc := newUseCaseWithBookings(now)

	resp, err := uc.Execute(context.Background(), &Request{
		Court: "Mira 2",
		Date:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.FreeHours)
}

func TestExecute_UnknownCourt(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	uc := newUseCaseWithBookings(now)

	_, err := uc.Execute(context.Background(), &Request{
		Court: "Mira 99",
		Date:  time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_DateBeyondWindow(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	uc := newUseCaseWithBookings(now)

	_, err := uc.Execute(context.Background(), &Request{
		Court: "Mira 2",
		Date:  time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrDateOutOfWindow)
}

func TestExecute_RepositoryError(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)

	repo := &mockReservationRepository{
		getByCourtAndDateFunc: func(ctx context.Context, court string, date time.Time) ([]*domain.Reservation, error) {
			return nil, errors.New("connection reset")
		},
	}

	uc := NewUseCase(repo, &fixedClock{now: now}, nopLogger{}, domain.DefaultRules())

	_, err := uc.Execute(context.Background(), &Request{
		Court: "Mira 2",
		Date:  time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrInternal)
}
