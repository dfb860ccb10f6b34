package sport

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const pgUniqueViolation = "23505"

var sportColumns = []string{
	"id",
	"turf_id",
	"name",
	"description",
	"is_active",
	"created_by",
	"created_at",
	"updated_at",
}

// Repository репозиторий видов спорта и цен
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория видов спорта
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет вид спорта на площадку
func (r *Repository) Create(ctx context.Context, sport *domain.Sport) (*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if sport.ID == uuid.Nil {
		sport.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("sports").
		Columns("id", "turf_id", "name", "description", "is_active", "created_by").
		Values(sport.ID, sport.TurfID, sport.Name, sport.Description, sport.IsActive, sport.CreatedBy).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSport
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sport.CreatedAt = createdAt.Time
	sport.UpdatedAt = updatedAt.Time

	return sport, nil
}

// GetByID получает вид спорта по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sportColumns...).
		From("sports").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	sport, err := scanSport(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan sport: %v", ErrScanRow, err)
	}

	return sport, nil
}

// GetByTurf получает все виды спорта площадки в порядке добавления
func (r *Repository) GetByTurf(ctx context.Context, turfID uuid.UUID) ([]*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sportColumns...).
		From("sports").
		Where(squirrel.Eq{"turf_id": turfID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurf - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurf - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sports := make([]*domain.Sport, 0)
	for rows.Next() {
		sport, err := scanSport(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByTurf - scan row: %v", ErrScanRow, err)
		}
		sports = append(sports, sport)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByTurf - rows error: %v", ErrScanRow, err)
	}

	return sports, nil
}

// CreatePricing сохраняет базовую цену за час для вида спорта
func (r *Repository) CreatePricing(ctx context.Context, pricing *domain.Pricing) (*domain.Pricing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if pricing.ID == uuid.Nil {
		pricing.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("pricing").
		Columns("id", "turf_id", "sport_id", "price_per_hour", "currency", "is_active", "created_by").
		Values(
			pricing.ID,
			pricing.TurfID,
			pricing.SportID,
			pricing.PricePerHour,
			pricing.Currency,
			pricing.IsActive,
			pricing.CreatedBy,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreatePricing - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreatePricing - execute insert: %v", ErrExecQuery, err)
	}

	pricing.CreatedAt = createdAt.Time
	pricing.UpdatedAt = updatedAt.Time

	return pricing, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSport(row rowScanner) (*domain.Sport, error) {
	var sport domain.Sport
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&sport.ID,
		&sport.TurfID,
		&sport.Name,
		&sport.Description,
		&sport.IsActive,
		&sport.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	sport.CreatedAt = createdAt.Time
	sport.UpdatedAt = updatedAt.Time

	return &sport, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
