package save_slot_plan

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// TurfRepository интерфейс репозитория площадок
type TurfRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Turf, error)
}

// SportRepository интерфейс репозитория видов спорта
type SportRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sport, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	SaveSchedule(ctx context.Context, schedule *domain.SlotSchedule) (*domain.SlotSchedule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotsCache кэш списков слотов, который нужно сбросить после сохранения
type SlotsCache interface {
	Invalidate(ctx context.Context, turfID, sportID uuid.UUID, day domain.Weekday) error
}

// LegacyMirror зеркалирование расписаний в старый backend (опционально)
type LegacyMirror interface {
	PushScheduleWithGracefulDegradation(ctx context.Context, schedule *domain.SlotSchedule) error
}

// MetricsRecorder счетчики сохранения (опционально)
type MetricsRecorder interface {
	IncSchedulesSaved(result string)
	AddSlotsSaved(day string, count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
