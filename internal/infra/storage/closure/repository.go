package closure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	"github.com/m04kA/ORS-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/ORS-RoomBookingService/pkg/psqlbuilder"
	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с административными закрытиями комнат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория закрытий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое закрытие комнаты
func (r *Repository) Create(ctx context.Context, closure *domain.Closure) (*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("closures").
		Columns(
			"room_id",
			"closure_date",
			"is_all_day",
			"start_time",
			"end_time",
			"reason",
			"created_by",
		).
		Values(
			closure.RoomID,
			closure.Date,
			closure.IsAllDay,
			todToNullString(closure.StartTime),
			todToNullString(closure.EndTime),
			closure.Reason,
			closure.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&closure.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	closure.CreatedAt = createdAt.Time
	closure.UpdatedAt = updatedAt.Time

	return closure, nil
}

// GetByID получает закрытие по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectClosures().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	closure, err := scanClosure(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrClosureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan closure: %v", ErrScanRow, err)
	}

	return closure, nil
}

// GetByRoomAndDateRange получает закрытия комнаты за период [startDate, endDate]
func (r *Repository) GetByRoomAndDateRange(ctx context.Context, roomID int64, startDate, endDate time.Time) ([]*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectClosures().
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.GtOrEq{"closure_date": startDate}).
		Where(squirrel.LtOrEq{"closure_date": endDate}).
		OrderBy("closure_date ASC, start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDateRange - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var closures []*domain.Closure
	for rows.Next() {
		closure, err := scanClosure(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan closure: %v", ErrScanRow, err)
		}
		closures = append(closures, closure)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate closures: %v", ErrScanRow, err)
	}

	return closures, nil
}

// GetActiveByRoomAndDate получает закрытия комнаты на день
func (r *Repository) GetActiveByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Closure, error) {
	return r.GetByRoomAndDateRange(ctx, roomID, date, date)
}

// Delete удаляет закрытие
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("closures").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrClosureNotFound
	}

	return nil
}

func selectClosures() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"room_id",
		"closure_date",
		"is_all_day",
		"start_time",
		"end_time",
		"reason",
		"created_by",
		"created_at",
		"updated_at",
	).From("closures")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClosure(row rowScanner) (*domain.Closure, error) {
	var closure domain.Closure
	var startTime, endTime sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&closure.ID,
		&closure.RoomID,
		&closure.Date,
		&closure.IsAllDay,
		&startTime,
		&endTime,
		&closure.Reason,
		&closure.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	closure.StartTime, err = nullStringToTod(startTime)
	if err != nil {
		return nil, err
	}
	closure.EndTime, err = nullStringToTod(endTime)
	if err != nil {
		return nil, err
	}

	closure.CreatedAt = createdAt.Time
	closure.UpdatedAt = updatedAt.Time

	return &closure, nil
}

// todToNullString конвертирует опциональное время в nullable колонку
func todToNullString(t *types.TimeOfDay) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.String(), Valid: true}
}

func nullStringToTod(s sql.NullString) (*types.TimeOfDay, error) {
	if !s.Valid {
		return nil, nil
	}
	v := s.String
	// "HH:MM:SS" из TIME колонок
	if len(v) > 5 {
		v = v[:5]
	}
	parsed, err := types.ParseTimeOfDay(v)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
