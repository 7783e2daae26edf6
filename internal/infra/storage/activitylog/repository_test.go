package activitylog

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// Интеграционные тесты журнала, требуют живую БД с миграциями.
// Запуск по тому же TEST_DATABASE_DSN, что и тесты репозитория бронирований.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN не задан, пропускаем интеграционные тесты")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	_, err = db.Exec("TRUNCATE activity_log RESTART IDENTITY")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return NewRepository(db)
}

func entryAt(claimant domain.Claimant, eventType domain.ActivityEventType, occurredAt time.Time) *domain.ActivityEntry {
	return &domain.ActivityEntry{
		EventType:  eventType,
		Claimant:   claimant,
		Court:      "Mira 2",
		Date:       time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		StartHour:  10,
		OccurredAt: occurredAt,
	}
}

func TestActivityLogAppendAndGetSince(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	claimant := domain.Claimant{Community: "Mira", Villa: "42"}
	base := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	old, err := repo.Append(ctx, entryAt(claimant, domain.EventCreated, base.AddDate(0, 0, -20)))
	require.NoError(t, err)
	assert.Positive(t, old.ID)

	created, err := repo.Append(ctx, entryAt(claimant, domain.EventCreated, base))
	require.NoError(t, err)

	deleted, err := repo.Append(ctx, entryAt(claimant, domain.EventDeleted, base.Add(2*time.Hour)))
	require.NoError(t, err)

	entries, err := repo.GetSince(ctx, base.AddDate(0, 0, -14))
	require.NoError(t, err)
	require.Len(t, entries, 2, "запись старше окна не должна попасть в выборку")

	// Новые записи первыми
	assert.Equal(t, deleted.ID, entries[0].ID)
	assert.Equal(t, domain.EventDeleted, entries[0].EventType)
	assert.Equal(t, created.ID, entries[1].ID)
	assert.Equal(t, domain.EventCreated, entries[1].EventType)

	got := entries[1]
	assert.Equal(t, claimant, got.Claimant)
	assert.Equal(t, "Mira 2", got.Court)
	assert.True(t, got.Date.Equal(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 10, got.StartHour)
	assert.True(t, got.OccurredAt.Equal(base), "occurred_at: got %v, want %v", got.OccurredAt, base)
}

func TestActivityLogGetSinceEmpty(t *testing.T) {
	repo := newTestRepository(t)

	entries, err := repo.GetSince(context.Background(), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
