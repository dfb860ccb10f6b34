package slot

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfService/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"schedule_id",
	"turf_id",
	"sport_id",
	"day",
	"start_date",
	"end_date",
	"start_time",
	"end_time",
	"price",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий расписаний и слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// SaveSchedule сохраняет расписание и все его слоты
// Вызывается внутри транзакции: строка расписания и слоты пишутся атомарно
func (r *Repository) SaveSchedule(ctx context.Context, schedule *domain.SlotSchedule) (*domain.SlotSchedule, error) {
	if len(schedule.Slots) == 0 {
		return nil, ErrEmptySchedule
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}

	startDate := schedule.StartDate.Format(domain.DateFormat)
	endDate := schedule.EndDate.Format(domain.DateFormat)

	// 1. Строка расписания
	query, args, err := psqlbuilder.Insert("slot_schedules").
		Columns(
			"id",
			"turf_id",
			"sport_id",
			"day",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"slot_duration_minutes",
			"price",
		).
		Values(
			schedule.ID,
			schedule.TurfID,
			schedule.SportID,
			string(schedule.Day),
			startDate,
			endDate,
			schedule.StartTime,
			schedule.EndTime,
			schedule.SlotDurationMinutes,
			schedule.Price,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SaveSchedule - build schedule insert: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: SaveSchedule - insert schedule: %v", ErrExecQuery, err)
	}
	schedule.CreatedAt = createdAt.Time

	// 2. Слоты одним запросом
	insert := psqlbuilder.Insert("slots").
		Columns(
			"id",
			"schedule_id",
			"turf_id",
			"sport_id",
			"day",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"price",
			"is_active",
		)

	for _, s := range schedule.Slots {
		insert = insert.Values(
			uuid.New(),
			schedule.ID,
			schedule.TurfID,
			schedule.SportID,
			string(schedule.Day),
			startDate,
			endDate,
			s.StartTime,
			s.EndTime,
			schedule.Price,
			true,
		)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: SaveSchedule - build slots insert: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: SaveSchedule - insert slots: %v", ErrExecQuery, err)
	}

	return schedule, nil
}

// GetByTurfSportDay получает слоты площадки и вида спорта на день недели
func (r *Repository) GetByTurfSportDay(ctx context.Context, turfID, sportID uuid.UUID, day domain.Weekday) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{
			"turf_id":  turfID,
			"sport_id": sportID,
			"day":      string(day),
		}).
		OrderBy("start_date ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfSportDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfSportDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByTurfSportDay - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByTurfSportDay - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// UpdateStatus включает или выключает слот
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*domain.Slot, error) {
	return r.update(ctx, "UpdateStatus", id, "is_active", isActive)
}

// UpdatePrice меняет цену слота
func (r *Repository) UpdatePrice(ctx context.Context, id uuid.UUID, price float64) (*domain.Slot, error) {
	return r.update(ctx, "UpdatePrice", id, "price", price)
}

func (r *Repository) update(ctx context.Context, op string, id uuid.UUID, column string, value interface{}) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set(column, value).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(slotColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	return slot, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var slot domain.Slot
	var day string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.ScheduleID,
		&slot.TurfID,
		&slot.SportID,
		&day,
		&slot.StartDate,
		&slot.EndDate,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Price,
		&slot.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.Day = domain.Weekday(day)
	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}
