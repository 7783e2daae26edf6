package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
	"github.com/m04kA/Mira-CourtBooking/pkg/dbmetrics"
	"github.com/m04kA/Mira-CourtBooking/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL unique_violation
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями кортов.
// Взаимное исключение по слоту (court, date, start_hour) обеспечивает
// уникальный индекс в БД: из двух конкурентных INSERT проигравший
// получает unique_violation, который мы отдаем как ErrSlotTaken.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Возвращает ErrSlotTaken, если слот уже занят.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"community",
			"villa",
			"court",
			"date",
			"start_hour",
		).
		Values(
			res.Claimant.Community,
			res.Claimant.Villa,
			res.Court,
			fmtDate(res.Date),
			res.StartHour,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := reservationColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.Claimant.Community,
		&res.Claimant.Villa,
		&res.Court,
		&res.Date,
		&res.StartHour,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time

	return &res, nil
}

// GetByClaimant получает все бронирования заявителя, ближайшие первыми
func (r *Repository) GetByClaimant(ctx context.Context, claimant domain.Claimant) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := reservationColumns().
		Where(claimantPredicate(claimant)).
		OrderBy("date ASC, start_hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByClaimant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClaimant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByDate получает все бронирования на указанную дату по всем кортам
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := reservationColumns().
		Where(squirrel.Eq{"date": fmtDate(date)}).
		OrderBy("court ASC, start_hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByCourtAndDate получает бронирования одного корта на указанную дату
func (r *Repository) GetByCourtAndDate(ctx context.Context, court string, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := reservationColumns().
		Where(squirrel.Eq{"court": court, "date": fmtDate(date)}).
		OrderBy("start_hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Exists проверяет, занят ли слот
func (r *Repository) Exists(ctx context.Context, court string, date time.Time, startHour int) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("reservations").
		Where(squirrel.Eq{
			"court":      court,
			"date":       fmtDate(date),
			"start_hour": startHour,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan result: %v", ErrScanRow, err)
	}

	return true, nil
}

// CountActive считает неистекшие бронирования заявителя: будущие даты
// плюс сегодняшние со start_hour >= текущего часа. Граница по часу
// включительная, минуты не участвуют.
func (r *Repository) CountActive(ctx context.Context, claimant domain.Claimant, today time.Time, nowHour int) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(claimantPredicate(claimant)).
		Where(activePredicate(today, nowHour)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountActiveOnDate считает неистекшие бронирования заявителя на одну дату.
// Для сегодняшней даты прошедшие часы не учитываются.
func (r *Repository) CountActiveOnDate(ctx context.Context, claimant domain.Claimant, date, today time.Time, nowHour int) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(claimantPredicate(claimant)).
		Where(squirrel.Eq{"date": fmtDate(date)})

	if domain.SameDate(date, today) {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_hour": nowHour})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveOnDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveOnDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// DeleteByClaimant удаляет бронирование по ID, только если оно
// принадлежит заявителю. Принадлежность зашита в предикат DELETE,
// поэтому чужой ID неотличим от несуществующего.
func (r *Repository) DeleteByClaimant(ctx context.Context, id int64, claimant domain.Claimant) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		Where(claimantPredicate(claimant)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByClaimant - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByClaimant - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByClaimant - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// DeleteElapsed удаляет бронирования, чей слот полностью прошел:
// прошлые даты и сегодняшние часы строго раньше текущего. Предикат -
// точное дополнение activePredicate, поэтому повторный запуск без
// новых записей удаляет ноль строк.
func (r *Repository) DeleteElapsed(ctx context.Context, today time.Time, nowHour int) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Or{
			squirrel.Lt{"date": fmtDate(today)},
			squirrel.And{
				squirrel.Eq{"date": fmtDate(today)},
				squirrel.Lt{"start_hour": nowHour},
			},
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteElapsed - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteElapsed - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteElapsed - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// ListActiveClaimants возвращает заявителей, у которых есть хотя бы
// одно неистекшее бронирование
func (r *Repository) ListActiveClaimants(ctx context.Context, today time.Time, nowHour int) ([]domain.Claimant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT community", "villa").
		From("reservations").
		Where(activePredicate(today, nowHour)).
		OrderBy("community ASC, villa ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveClaimants - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveClaimants - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	claimants := make([]domain.Claimant, 0)
	for rows.Next() {
		var c domain.Claimant
		if err := rows.Scan(&c.Community, &c.Villa); err != nil {
			return nil, fmt.Errorf("%w: ListActiveClaimants - scan claimant: %v", ErrScanRow, err)
		}
		claimants = append(claimants, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveClaimants - rows error: %v", ErrScanRow, err)
	}

	return claimants, nil
}

// CountByHour считает бронирования по часу начала для отчета загрузки
func (r *Repository) CountByHour(ctx context.Context) ([]domain.HourCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_hour", "COUNT(*)").
		From("reservations").
		GroupBy("start_hour").
		OrderBy("start_hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByHour - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByHour - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]domain.HourCount, 0)
	for rows.Next() {
		var hc domain.HourCount
		if err := rows.Scan(&hc.StartHour, &hc.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByHour - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, hc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByHour - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// CountByWeekday считает бронирования по дню недели (ISO: 1=понедельник)
func (r *Repository) CountByWeekday(ctx context.Context) ([]domain.WeekdayCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("EXTRACT(ISODOW FROM date)::int AS weekday", "COUNT(*)").
		From("reservations").
		GroupBy("weekday").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]domain.WeekdayCount, 0)
	for rows.Next() {
		var wc domain.WeekdayCount
		if err := rows.Scan(&wc.Weekday, &wc.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByWeekday - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, wc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByWeekday - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.Claimant.Community,
			&res.Claimant.Villa,
			&res.Court,
			&res.Date,
			&res.StartHour,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// reservationColumns общий SELECT по колонкам бронирования
func reservationColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"community",
		"villa",
		"court",
		"date",
		"start_hour",
		"created_at",
	).From("reservations")
}

// claimantPredicate условие принадлежности строки заявителю
func claimantPredicate(claimant domain.Claimant) squirrel.Sqlizer {
	return squirrel.Eq{
		"community": claimant.Community,
		"villa":     claimant.Villa,
	}
}

// activePredicate условие "бронирование еще не истекло":
// date > today OR (date = today AND start_hour >= nowHour)
func activePredicate(today time.Time, nowHour int) squirrel.Sqlizer {
	return squirrel.Or{
		squirrel.Gt{"date": fmtDate(today)},
		squirrel.And{
			squirrel.Eq{"date": fmtDate(today)},
			squirrel.GtOrEq{"start_hour": nowHour},
		},
	}
}

// fmtDate приводит дату к строке YYYY-MM-DD для сравнения с DATE колонкой.
// Строка не зависит от часового пояса аргумента.
func fmtDate(t time.Time) string {
	return t.Format(domain.DateFormat)
}

// isUniqueViolation проверяет, что ошибка - нарушение уникального индекса
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}
