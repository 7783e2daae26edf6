package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
	reservationRepo "github.com/m04kA/Mira-CourtBooking/internal/infra/storage/reservation"
)

var gst = time.FixedZone("GST", 4*60*60)

type mockReservationRepository struct {
	getByIDFunc          func(ctx context.Context, id int64) (*domain.Reservation, error)
	getByClaimantFunc    func(ctx context.Context, claimant domain.Claimant) ([]*domain.Reservation, error)
	deleteByClaimantFunc func(ctx context.Context, id int64, claimant domain.Claimant) error

	deleteCalls int
}

func (m *mockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (m *mockReservationRepository) GetByClaimant(ctx context.Context, claimant domain.Claimant) ([]*domain.Reservation, error) {
	if m.getByClaimantFunc != nil {
		return m.getByClaimantFunc(ctx, claimant)
	}
	return nil, nil
}

func (m *mockReservationRepository) DeleteByClaimant(ctx context.Context, id int64, claimant domain.Claimant) error {
	m.deleteCalls++
	if m.deleteByClaimantFunc != nil {
		return m.deleteByClaimantFunc(ctx, id, claimant)
	}
	return nil
}

type mockActivityRepository struct {
	appendFunc func(ctx context.Context, entry *domain.ActivityEntry) (*domain.ActivityEntry, error)

	entries []*domain.ActivityEntry
}

func (m *mockActivityRepository) Append(ctx context.Context, entry *domain.ActivityEntry) (*domain.ActivityEntry, error) {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, entry)
	}
	m.entries = append(m.entries, entry)
	stored := *entry
	stored.ID = int64(len(m.entries))
	return &stored, nil
}

type mockEventPublisher struct {
	reservationDeletedFunc func(ctx context.Context, res *domain.Reservation) error

	published []*domain.Reservation
}

func (m *mockEventPublisher) ReservationDeleted(ctx context.Context, res *domain.Reservation) error {
	if m.reservationDeletedFunc != nil {
		return m.reservationDeletedFunc(ctx, res)
	}
	m.published = append(m.published, res)
	return nil
}

type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
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
	events   *mockEventPublisher
	tx       *passthroughTxManager
}

func newTestService(now time.Time) *serviceEnv {
	repo := &mockReservationRepository{}
	activity := &mockActivityRepository{}
	events := &mockEventPublisher{}
	tx := &passthroughTxManager{}

	svc := NewService(repo, activity, tx, &fixedClock{now: now}, events, nopLogger{})

	return &serviceEnv{service: svc, repo: repo, activity: activity, events: events, tx: tx}
}

func TestListByClaimant_SplitsActiveAndElapsed(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	claimant := domain.NewClaimant("Mira", "42")
	env.repo.getByClaimantFunc = func(ctx context.Context, c domain.Claimant) ([]*domain.Reservation, error) {
		return []*domain.Reservation{
			{
				ID:        1,
				Claimant:  claimant,
				Court:     "Mira 2",
				Date:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
				StartHour: 9, // уже прошел
			},
			{
				ID:        2,
				Claimant:  claimant,
				Court:     "Mira 4",
				Date:      time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
				StartHour: 18,
			},
		}, nil
	}

	resp, err := env.service.ListByClaimant(context.Background(), claimant)

	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.False(t, resp.Reservations[0].Active)
	assert.True(t, resp.Reservations[1].Active)
	assert.Equal(t, "2025-06-10", resp.Reservations[0].Date)
	assert.Equal(t, "Mira", resp.Reservations[0].Community)
	assert.Equal(t, "42", resp.Reservations[0].Villa)
}

func TestListByClaimant_EmptyList(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	resp, err := env.service.ListByClaimant(context.Background(), domain.NewClaimant("Mira", "42"))

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Reservations)
}

func TestListByClaimant_InvalidClaimant(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	_, err := env.service.ListByClaimant(context.Background(), domain.Claimant{})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByClaimant_RepositoryError(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	env.repo.getByClaimantFunc = func(ctx context.Context, c domain.Claimant) ([]*domain.Reservation, error) {
		return nil, errors.New("connection reset")
	}

	_, err := env.service.ListByClaimant(context.Background(), domain.NewClaimant("Mira", "42"))

	require.ErrorIs(t, err, ErrInternal)
}

func TestCancel_Success(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	claimant := domain.NewClaimant("Mira", "42")
	stored := &domain.Reservation{
		ID:        7,
		Claimant:  claimant,
		Court:     "Mira Oasis 1",
		Date:      time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		StartHour: 18,
	}
	env.repo.getByIDFunc = func(ctx context.Context, id int64) (*domain.Reservation, error) {
		return stored, nil
	}

	err := env.service.Cancel(context.Background(), 7, claimant)

	require.NoError(t, err)
	assert.Equal(t, 1, env.tx.calls)
	assert.Equal(t, 1, env.repo.deleteCalls)

	// Запись журнала со снимком удаленного слота
	require.Len(t, env.activity.entries, 1)
	entry := env.activity.entries[0]
	assert.Equal(t, domain.EventDeleted, entry.EventType)
	assert.Equal(t, "Mira Oasis 1", entry.Court)
	assert.Equal(t, 18, entry.StartHour)
	assert.True(t, entry.OccurredAt.Equal(now))

	// Событие опубликовано после коммита
	require.Len(t, env.events.published, 1)
	assert.Equal(t, int64(7), env.events.published[0].ID)
}

func TestCancel_OtherClaimantLooksLikeNotFound(t *testing.T) {
	// Чужое бронирование в ответе неотличимо от несуществующего
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	env.repo.getByIDFunc = func(ctx context.Context, id int64) (*domain.Reservation, error) {
		return &domain.Reservation{
			ID:       7,
			Claimant: domain.NewClaimant("Mira", "42"),
			Court:    "Mira 2",
			Date:     time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		}, nil
	}

	err := env.service.Cancel(context.Background(), 7, domain.NewClaimant("Mira", "99"))

	require.ErrorIs(t, err, ErrReservationNotFound)
	assert.Equal(t, 0, env.repo.deleteCalls)
	assert.Empty(t, env.activity.entries)
	assert.Empty(t, env.events.published)
}

func TestCancel_NotFound(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	err := env.service.Cancel(context.Background(), 404, domain.NewClaimant("Mira", "42"))

	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_RowDeletedConcurrently(t *testing.T) {
	// Строка исчезла между чтением и удалением: запись журнала
	// откатывается вместе с транзакцией
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	claimant := domain.NewClaimant("Mira", "42")
	env.repo.getByIDFunc = func(ctx context.Context, id int64) (*domain.Reservation, error) {
		return &domain.Reservation{ID: 7, Claimant: claimant, Court: "Mira 2"}, nil
	}
	env.repo.deleteByClaimantFunc = func(ctx context.Context, id int64, c domain.Claimant) error {
		return reservationRepo.ErrReservationNotFound
	}

	err := env.service.Cancel(context.Background(), 7, claimant)

	require.ErrorIs(t, err, ErrReservationNotFound)
	assert.Empty(t, env.events.published)
}

func TestCancel_InvalidInput(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	err := env.service.Cancel(context.Background(), 0, domain.NewClaimant("Mira", "42"))
	require.ErrorIs(t, err, ErrInvalidInput)

	err = env.service.Cancel(context.Background(), 7, domain.Claimant{})
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, 0, env.tx.calls)
}

func TestCancel_PublishFailureDoesNotFailCancel(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, gst)
	env := newTestService(now)

	claimant := domain.NewClaimant("Mira", "42")
	env.repo.getByIDFunc = func(ctx context.Context, id int64) (*domain.Reservation, error) {
		return &domain.Reservation{ID: 7, Claimant: claimant, Court: "Mira 2"}, nil
	}
	env.events.reservationDeletedFunc = func(ctx context.Context, res *domain.Reservation) error {
		return errors.New("broker unreachable")
	}

	err := env.service.Cancel(context.Background(), 7, claimant)

	require.NoError(t, err)
}
