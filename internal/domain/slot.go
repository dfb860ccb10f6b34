package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// Slot сохраненный бронируемый слот
type Slot struct {
	ID         uuid.UUID
	ScheduleID uuid.UUID
	TurfID     uuid.UUID
	SportID    uuid.UUID
	Day        Weekday
	StartDate  time.Time
	EndDate    time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Price      float64
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DurationMinutes возвращает фактическую длительность слота
// Последний слот интервала может быть длиннее настроенной длительности
func (s *Slot) DurationMinutes() int {
	minutes, err := s.StartTime.MinutesUntil(s.EndTime)
	if err != nil {
		return 0
	}
	return minutes
}

// IsValidOn возвращает true, если дата попадает в период действия слота и совпадает по дню недели
func (s *Slot) IsValidOn(date time.Time) bool {
	d := dateOnly(date)
	return WeekdayOf(d) == s.Day && !d.Before(dateOnly(s.StartDate)) && !d.After(dateOnly(s.EndDate))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
