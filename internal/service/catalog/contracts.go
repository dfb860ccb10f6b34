package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// TurfRepository интерфейс репозитория площадок
type TurfRepository interface {
	Create(ctx context.Context, turf *domain.Turf) (*domain.Turf, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Turf, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Turf, error)
}

// SportRepository интерфейс репозитория видов спорта и цен
type SportRepository interface {
	Create(ctx context.Context, sport *domain.Sport) (*domain.Sport, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sport, error)
	GetByTurf(ctx context.Context, turfID uuid.UUID) ([]*domain.Sport, error)
	CreatePricing(ctx context.Context, pricing *domain.Pricing) (*domain.Pricing, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
