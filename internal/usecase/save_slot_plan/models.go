package save_slot_plan

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// Статусы сохранения интервала
const (
	StatusSaved   = "saved"
	StatusSkipped = "skipped" // интервал не дал ни одного слота
	StatusFailed  = "failed"
)

// Статусы сохранения дня
const (
	DayStatusSaved   = "saved"
	DayStatusPartial = "partial"
	DayStatusFailed  = "failed"
	DayStatusSkipped = "skipped"
)

// Request модель запроса на сохранение плана
type Request struct {
	OwnerID uuid.UUID // из заголовка X-Owner-ID
	Config  domain.SlotPlanConfig
}

// Response результат сохранения по дням
// Ошибка одного интервала не отменяет остальные, уже сохраненное не откатывается
type Response struct {
	TurfID         uuid.UUID
	SportID        uuid.UUID
	Days           []DayResult
	SavedSchedules int
	SkippedRanges  int
	FailedRanges   int
	SavedSlots     int
}

// DayResult результат сохранения одного дня
type DayResult struct {
	Day    domain.Weekday
	Status string
	Ranges []RangeResult
}

// RangeResult результат сохранения одного интервала
type RangeResult struct {
	StartTime  types.TimeString
	EndTime    types.TimeString
	Status     string
	ScheduleID *uuid.UUID
	SlotsCount int
	Mirrored   bool
	Error      string
}

// HasFailures возвращает true, если хотя бы один интервал не сохранился
func (r *Response) HasFailures() bool {
	return r.FailedRanges > 0
}
