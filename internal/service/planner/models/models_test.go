package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

func TestPlanForm_ToDomain(t *testing.T) {
	form := PlanForm{
		TurfID:        "11111111-1111-1111-1111-111111111111",
		SportID:       "not-a-uuid",
		StartDate:     "2026-11-01",
		EndDate:       "01/12/2026",
		BufferMinutes: 10,
		Days: []DayPlanForm{{
			Day:                 "monday",
			SlotDurationMinutes: 60,
			Price:               500,
			TimeRanges: []TimeRangeForm{
				{StartTime: "9:00", EndTime: "11:00"},
				{StartTime: "18:00", EndTime: ""},
			},
		}, {
			Day: "Someday",
		}},
	}

	cfg := form.ToDomain()

	assert.Equal(t, uuid.MustParse("11111111-1111-1111-1111-111111111111"), cfg.TurfID)
	assert.Equal(t, uuid.Nil, cfg.SportID)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), cfg.StartDate)
	assert.True(t, cfg.EndDate.IsZero())
	assert.Equal(t, 10, cfg.BufferMinutes)

	require.Len(t, cfg.Days, 2)
	assert.Equal(t, domain.Monday, cfg.Days[0].Day)
	assert.Equal(t, types.TimeString("09:00"), cfg.Days[0].TimeRanges[0].StartTime)
	assert.True(t, cfg.Days[0].TimeRanges[1].EndTime.IsZero())
	assert.Equal(t, domain.Weekday("Someday"), cfg.Days[1].Day)
	assert.False(t, cfg.Days[1].Day.IsValid())
}

func TestFromDomainConfig_RoundTrip(t *testing.T) {
	form := &PlanForm{
		TurfID:        "11111111-1111-1111-1111-111111111111",
		SportID:       "22222222-2222-2222-2222-222222222222",
		StartDate:     "2026-11-01",
		EndDate:       "2026-11-30",
		BufferMinutes: 5,
		Days: []DayPlanForm{{
			Day:                 "Friday",
			SlotDurationMinutes: 45,
			Price:               650,
			TimeRanges:          []TimeRangeForm{{StartTime: "17:00", EndTime: "22:00"}},
		}},
	}

	assert.Equal(t, form, FromDomainConfig(form.ToDomain()))
}

func TestFromDayPreview(t *testing.T) {
	preview := domain.DayPreview{
		Plan: domain.DayPlan{Day: domain.Tuesday, SlotDurationMinutes: 60, Price: 400},
		Ranges: []domain.PlannedRange{{
			Range:  domain.TimeRange{StartTime: "09:00", EndTime: "11:20"},
			Starts: []types.TimeString{"09:00", "10:10"},
			Slots: []domain.GeneratedSlot{
				{StartTime: "09:00", EndTime: "10:10"},
				{StartTime: "10:10", EndTime: "11:20"},
			},
		}},
	}

	view := FromDayPreview(preview)

	assert.Equal(t, "Tuesday", view.Day)
	assert.Equal(t, 2, view.SlotsCount)
	require.Len(t, view.Ranges, 1)
	assert.Equal(t, []string{"09:00", "10:10"}, view.Ranges[0].Starts)
	assert.Equal(t, SlotView{StartTime: "10:10", EndTime: "11:20"}, view.Ranges[0].Slots[1])
}
