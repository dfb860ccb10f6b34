package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlot_DurationMinutes(t *testing.T) {
	s := Slot{StartTime: "10:10", EndTime: "11:00"}
	assert.Equal(t, 50, s.DurationMinutes())

	broken := Slot{StartTime: "", EndTime: "11:00"}
	assert.Equal(t, 0, broken.DurationMinutes())
}

func TestSlot_IsValidOn(t *testing.T) {
	s := Slot{
		Day:       Monday,
		StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, s.IsValidOn(time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)))
	assert.False(t, s.IsValidOn(time.Date(2026, 10, 20, 18, 0, 0, 0, time.UTC)), "tuesday")
	assert.False(t, s.IsValidOn(time.Date(2026, 11, 2, 18, 0, 0, 0, time.UTC)), "after end date")
}

func TestTimeRange_IsWellFormed(t *testing.T) {
	assert.True(t, TimeRange{StartTime: "09:00", EndTime: "10:00"}.IsWellFormed())
	assert.False(t, TimeRange{StartTime: "10:00", EndTime: "09:00"}.IsWellFormed())
	assert.False(t, TimeRange{StartTime: "10:00", EndTime: "10:00"}.IsWellFormed())
	assert.False(t, TimeRange{StartTime: "", EndTime: "10:00"}.IsWellFormed())
}

func TestSlotPlanConfig_DayPlan(t *testing.T) {
	cfg := SlotPlanConfig{Days: []DayPlan{{Day: Monday}, {Day: Friday, Price: 700}}}

	plan, ok := cfg.DayPlan(Friday)
	assert.True(t, ok)
	assert.Equal(t, 700.0, plan.Price)

	_, ok = cfg.DayPlan(Sunday)
	assert.False(t, ok)
}
