package slots

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByTurfSportDay(ctx context.Context, turfID, sportID uuid.UUID, day domain.Weekday) ([]*domain.Slot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*domain.Slot, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, price float64) (*domain.Slot, error)
}

// TurfRepository интерфейс репозитория площадок
type TurfRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Turf, error)
}

// SportRepository интерфейс репозитория видов спорта
type SportRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sport, error)
}

// SlotsCache кэш списков слотов на день
type SlotsCache interface {
	Get(ctx context.Context, turfID, sportID uuid.UUID, day domain.Weekday) ([]*domain.Slot, bool)
	Set(ctx context.Context, turfID, sportID uuid.UUID, day domain.Weekday, slots []*domain.Slot) error
	Invalidate(ctx context.Context, turfID, sportID uuid.UUID, day domain.Weekday) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
