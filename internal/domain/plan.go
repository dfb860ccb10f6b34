package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// TimeRange непрерывный интервал внутри одного дня, в котором генерируются слоты
// Переход через полночь не поддерживается
type TimeRange struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// IsWellFormed возвращает true, если обе границы заданы и start < end
func (r TimeRange) IsWellFormed() bool {
	return r.StartTime.Validate() == nil && r.EndTime.Validate() == nil && r.StartTime.IsBefore(r.EndTime)
}

// DayPlan конфигурация генерации слотов на один день недели
// У каждого дня своя длительность слота и цена, буфер общий для всего плана
type DayPlan struct {
	Day                 Weekday
	SlotDurationMinutes int
	Price               float64
	TimeRanges          []TimeRange
}

// SlotPlanConfig запрос на генерацию слотов (создается на каждую отправку формы, не хранится)
type SlotPlanConfig struct {
	TurfID        uuid.UUID
	SportID       uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	BufferMinutes int
	Days          []DayPlan
}

// DayPlan возвращает план для дня, если он есть в конфигурации
func (c *SlotPlanConfig) DayPlan(day Weekday) (*DayPlan, bool) {
	for i := range c.Days {
		if c.Days[i].Day == day {
			return &c.Days[i], true
		}
	}
	return nil, false
}

// GeneratedSlot атомарный бронируемый интервал
type GeneratedSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// PlannedRange результат генерации для одного интервала
type PlannedRange struct {
	Range  TimeRange
	Starts []types.TimeString
	Slots  []GeneratedSlot
}

// DayPreview результат генерации для одного дня
type DayPreview struct {
	Plan   DayPlan
	Ranges []PlannedRange
}

// SlotsCount возвращает общее количество слотов дня
func (p *DayPreview) SlotsCount() int {
	count := 0
	for _, r := range p.Ranges {
		count += len(r.Slots)
	}
	return count
}

// SlotSchedule расписание, отправляемое на сохранение: одно на пару (день, интервал)
type SlotSchedule struct {
	ID                  uuid.UUID
	TurfID              uuid.UUID
	SportID             uuid.UUID
	Day                 Weekday
	StartDate           time.Time
	EndDate             time.Time
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	Price               float64
	Slots               []GeneratedSlot
	CreatedAt           time.Time
}
