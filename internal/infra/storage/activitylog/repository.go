package activitylog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
	"github.com/m04kA/Mira-CourtBooking/pkg/dbmetrics"
	"github.com/m04kA/Mira-CourtBooking/pkg/psqlbuilder"
)

// Repository репозиторий журнала активности. Журнал append-only:
// записи создаются при бронировании и явной отмене и никогда не
// обновляются и не удаляются.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал.
// Если в контексте передана активная транзакция, использует её -
// запись о создании бронирования фиксируется вместе с самим бронированием.
func (r *Repository) Append(ctx context.Context, entry *domain.ActivityEntry) (*domain.ActivityEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("activity_log").
		Columns(
			"event_type",
			"community",
			"villa",
			"court",
			"date",
			"start_hour",
			"occurred_at",
		).
		Values(
			string(entry.EventType),
			entry.Claimant.Community,
			entry.Claimant.Villa,
			entry.Court,
			entry.Date.Format(domain.DateFormat),
			entry.StartHour,
			entry.OccurredAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return entry, nil
}

// GetSince возвращает записи журнала не старше since, новые первыми
func (r *Repository) GetSince(ctx context.Context, since time.Time) ([]*domain.ActivityEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"event_type",
		"community",
		"villa",
		"court",
		"date",
		"start_hour",
		"occurred_at",
	).
		From("activity_log").
		Where(squirrel.GtOrEq{"occurred_at": since}).
		OrderBy("occurred_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSince - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSince - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.ActivityEntry, 0)
	for rows.Next() {
		var entry domain.ActivityEntry
		var eventType string
		var occurredAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&eventType,
			&entry.Claimant.Community,
			&entry.Claimant.Villa,
			&entry.Court,
			&entry.Date,
			&entry.StartHour,
			&occurredAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetSince - scan row: %v", ErrScanRow, err)
		}

		entry.EventType = domain.ActivityEventType(eventType)
		entry.OccurredAt = occurredAt.Time

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSince - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
