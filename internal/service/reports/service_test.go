package reports

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
	listActiveClaimantsFunc func(ctx context.Context, today time.Time, nowHour int) ([]domain.Claimant, error)
	countByHourFunc         func(ctx context.Context) ([]domain.HourCount, error)
	countByWeekdayFunc      func(ctx context.Context) ([]domain.WeekdayCount, error)
}

func (m *mockReservationRepository) ListActiveClaimants(ctx context.Context, today time.Time, nowHour int) ([]domain.Claimant, error) {
	if m.listActiveClaimantsFunc != nil {
		return m.listActiveClaimantsFunc(ctx, today, nowHour)
	}
	return nil, nil
}

func (m *mockReservationRepository) CountByHour(ctx context.Context) ([]domain.HourCount, error) {
	if m.countByHourFunc != nil {
		return m.countByHourFunc(ctx)
	}
	return nil, nil
}

func (m *mockReservationRepository) CountByWeekday(ctx context.Context) ([]domain.WeekdayCount, error) {
	if m.countByWeekdayFunc != nil {
		return m.countByWeekdayFunc(ctx)
	}
	return nil, nil
}

type mockActivityRepository struct {
	getSinceFunc func(ctx context.Context, since time.Time) ([]*domain.ActivityEntry, error)
}

func (m *mockActivityRepository) GetSince(ctx context.Context, since time.Time) ([]*domain.ActivityEntry, error) {
	if m.getSinceFunc != nil {
		return m.getSinceFunc(ctx, since)
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

type serviceEnv struct {
	service  *Service
	repo     *mockReservationRepository
	activity *mockActivityRepository
}

func newTestService(now time.Time) *serviceEnv {
	repo := &mockReservationRepository{}
	activity := &mockActivityRepository{}

	svc := NewService(repo, activity, &fixedClock{now: now}, nopLogger{}, domain.DefaultRules())

	return &serviceEnv{service: svc, repo: repo, activity: activity}
}

func TestActiveClaimants_PassesCutoff(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	var gotToday time.Time
	var gotHour int
	env.repo.listActiveClaimantsFunc = func(ctx context.Context, today time.Time, nowHour int) ([]domain.Claimant, error) {
		gotToday = today
		gotHour = nowHour
		return []domain.Claimant{
			domain.NewClaimant("Mira", "42"),
			domain.NewClaimant("Mira Oasis", "117"),
		}, nil
	}

	resp, err := env.service.ActiveClaimants(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "Mira", resp.Claimants[0].Community)
	assert.Equal(t, "117", resp.Claimants[1].Villa)

	assert.True(t, gotToday.Equal(domain.DateOnly(now)))
	assert.Equal(t, 14, gotHour)
}

func TestActiveClaimants_RepositoryError(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	env.repo.listActiveClaimantsFunc = func(ctx context.Context, today time.Time, nowHour int) ([]domain.Claimant, error) {
		return nil, errors.New("connection reset")
	}

	_, err := env.service.ActiveClaimants(context.Background())

	require.ErrorIs(t, err, ErrInternal)
}

func TestUsage_MapsWeekdayNames(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	env.repo.countByHourFunc = func(ctx context.Context) ([]domain.HourCount, error) {
		return []domain.HourCount{
			{StartHour: 7, Count: 12},
			{StartHour: 18, Count: 40},
		}, nil
	}
	env.repo.countByWeekdayFunc = func(ctx context.Context) ([]domain.WeekdayCount, error) {
		return []domain.WeekdayCount{
			{Weekday: 1, Count: 15},
			{Weekday: 6, Count: 31},
			{Weekday: 7, Count: 28},
		}, nil
	}

	resp, err := env.service.Usage(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.ByHour, 2)
	assert.Equal(t, 18, resp.ByHour[1].StartHour)
	assert.Equal(t, int64(40), resp.ByHour[1].Count)

	require.Len(t, resp.ByWeekday, 3)
	assert.Equal(t, "Monday", resp.ByWeekday[0].Weekday)
	assert.Equal(t, "Saturday", resp.ByWeekday[1].Weekday)
	assert.Equal(t, "Sunday", resp.ByWeekday[2].Weekday)
}

func TestUsage_RepositoryError(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	env.repo.countByHourFunc = func(ctx context.Context) ([]domain.HourCount, error) {
		return nil, errors.New("connection reset")
	}

	_, err := env.service.Usage(context.Background())

	require.ErrorIs(t, err, ErrInternal)
}

func TestRecentActivity_WindowClamping(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)

	tests := []struct {
		name     string
		days     int
		wantDays int
	}{
		{"zero falls back to default", 0, 14},
		{"negative falls back to default", -3, 14},
		{"above ceiling clamped", 30, 14},
		{"inside window kept", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestService(now)

			var gotSince time.Time
			env.activity.getSinceFunc = func(ctx context.Context, since time.Time) ([]*domain.ActivityEntry, error) {
				gotSince = since
				return nil, nil
			}

			resp, err := env.service.RecentActivity(context.Background(), tt.days)

			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, resp.Days)
			assert.True(t, gotSince.Equal(now.AddDate(0, 0, -tt.wantDays)))
		})
	}
}

func TestRecentActivity_MapsEntries(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	occurred := time.Date(2025, 6, 9, 19, 5, 0, 0, time.UTC)
	env.activity.getSinceFunc = func(ctx context.Context, since time.Time) ([]*domain.ActivityEntry, error) {
		return []*domain.ActivityEntry{
			{
				ID:         3,
				EventType:  domain.EventDeleted,
				Claimant:   domain.NewClaimant("Mira", "42"),
				Court:      "Mira 5A",
				Date:       time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
				StartHour:  18,
				OccurredAt: occurred,
			},
		}, nil
	}

	resp, err := env.service.RecentActivity(context.Background(), 7)

	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	entry := resp.Entries[0]
	assert.Equal(t, "deleted", entry.EventType)
	assert.Equal(t, "Mira 5A", entry.Court)
	assert.Equal(t, "2025-06-12", entry.Date)
	assert.Equal(t, 18, entry.StartHour)
	assert.True(t, entry.OccurredAt.Equal(occurred))
}

func TestRecentActivity_RepositoryError(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	env.activity.getSinceFunc = func(ctx context.Context, since time.Time) ([]*domain.ActivityEntry, error) {
		return nil, errors.New("connection reset")
	}

	_, err := env.service.RecentActivity(context.Background(), 7)

	require.ErrorIs(t, err, ErrInternal)
}
