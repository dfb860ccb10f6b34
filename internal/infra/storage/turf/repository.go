package turf

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfService/pkg/psqlbuilder"
)

var turfColumns = []string{
	"id",
	"owner_id",
	"name",
	"address",
	"map_link",
	"city",
	"state",
	"pincode",
	"opening_time",
	"closing_time",
	"slot_duration_minutes",
	"buffer_minutes",
	"image_url",
	"amenities",
	"created_at",
	"updated_at",
}

// Repository репозиторий площадок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает площадку; ID генерируется, если не задан
func (r *Repository) Create(ctx context.Context, turf *domain.Turf) (*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if turf.ID == uuid.Nil {
		turf.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("turfs").
		Columns(
			"id",
			"owner_id",
			"name",
			"address",
			"map_link",
			"city",
			"state",
			"pincode",
			"opening_time",
			"closing_time",
			"slot_duration_minutes",
			"buffer_minutes",
			"image_url",
			"amenities",
		).
		Values(
			turf.ID,
			turf.OwnerID,
			turf.Name,
			turf.Address,
			turf.MapLink,
			turf.City,
			turf.State,
			turf.Pincode,
			turf.OpeningTime,
			turf.ClosingTime,
			turf.SlotDurationMinutes,
			turf.BufferMinutes,
			turf.ImageURL,
			pq.Array(turf.Amenities),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	turf.CreatedAt = createdAt.Time
	turf.UpdatedAt = updatedAt.Time

	return turf, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(turfColumns...).
		From("turfs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	turf, err := scanTurf(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTurfNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan turf: %v", ErrScanRow, err)
	}

	return turf, nil
}

// GetByOwner получает все площадки владельца, новые первыми
func (r *Repository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(turfColumns...).
		From("turfs").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	turfs := make([]*domain.Turf, 0)
	for rows.Next() {
		turf, err := scanTurf(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByOwner - scan row: %v", ErrScanRow, err)
		}
		turfs = append(turfs, turf)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - rows error: %v", ErrScanRow, err)
	}

	return turfs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTurf(row rowScanner) (*domain.Turf, error) {
	var turf domain.Turf
	var createdAt, updatedAt sql.NullTime
	var amenities pq.StringArray

	err := row.Scan(
		&turf.ID,
		&turf.OwnerID,
		&turf.Name,
		&turf.Address,
		&turf.MapLink,
		&turf.City,
		&turf.State,
		&turf.Pincode,
		&turf.OpeningTime,
		&turf.ClosingTime,
		&turf.SlotDurationMinutes,
		&turf.BufferMinutes,
		&turf.ImageURL,
		&amenities,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	turf.Amenities = []string(amenities)
	turf.CreatedAt = createdAt.Time
	turf.UpdatedAt = updatedAt.Time

	return &turf, nil
}
