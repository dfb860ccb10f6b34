package save_slot_plan

import (
	saveSlotPlan "github.com/m04kA/SMC-TurfService/internal/usecase/save_slot_plan"
)

// RangeResultResponse результат сохранения одного интервала
type RangeResultResponse struct {
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Status     string  `json:"status"`
	ScheduleID *string `json:"scheduleId,omitempty"`
	SlotsCount int     `json:"slotsCount"`
	Mirrored   bool    `json:"mirrored"`
	Error      string  `json:"error,omitempty"`
}

// DayResultResponse результат сохранения одного дня
type DayResultResponse struct {
	Day    string                `json:"day"`
	Status string                `json:"status"`
	Ranges []RangeResultResponse `json:"ranges"`
}

// SavePlanResponse HTTP response model
type SavePlanResponse struct {
	TurfID         string              `json:"turfId"`
	SportID        string              `json:"sportId"`
	SavedSchedules int                 `json:"savedSchedules"`
	SkippedRanges  int                 `json:"skippedRanges"`
	FailedRanges   int                 `json:"failedRanges"`
	SavedSlots     int                 `json:"savedSlots"`
	Days           []DayResultResponse `json:"days"`
}

// FromUseCaseResponse конвертирует отчет use case в HTTP response
func FromUseCaseResponse(resp *saveSlotPlan.Response) *SavePlanResponse {
	days := make([]DayResultResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		ranges := make([]RangeResultResponse, 0, len(d.Ranges))
		for _, rr := range d.Ranges {
			item := RangeResultResponse{
				StartTime:  rr.StartTime.String(),
				EndTime:    rr.EndTime.String(),
				Status:     rr.Status,
				SlotsCount: rr.SlotsCount,
				Mirrored:   rr.Mirrored,
				Error:      rr.Error,
			}
			if rr.ScheduleID != nil {
				id := rr.ScheduleID.String()
				item.ScheduleID = &id
			}
			ranges = append(ranges, item)
		}

		days = append(days, DayResultResponse{
			Day:    d.Day.String(),
			Status: d.Status,
			Ranges: ranges,
		})
	}

	return &SavePlanResponse{
		TurfID:         resp.TurfID.String(),
		SportID:        resp.SportID.String(),
		SavedSchedules: resp.SavedSchedules,
		SkippedRanges:  resp.SkippedRanges,
		FailedRanges:   resp.FailedRanges,
		SavedSlots:     resp.SavedSlots,
		Days:           days,
	}
}
