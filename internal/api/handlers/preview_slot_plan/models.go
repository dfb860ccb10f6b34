package preview_slot_plan

import (
	planModels "github.com/m04kA/SMC-TurfService/internal/service/planner/models"
	previewSlotPlan "github.com/m04kA/SMC-TurfService/internal/usecase/preview_slot_plan"
)

// PreviewResponse HTTP response model
type PreviewResponse struct {
	Days       []planModels.DayView      `json:"days"`
	Schedules  []planModels.ScheduleView `json:"schedules"`
	TotalSlots int                       `json:"totalSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *previewSlotPlan.Response) *PreviewResponse {
	schedules := make([]planModels.ScheduleView, 0, len(resp.Schedules))
	for _, s := range resp.Schedules {
		schedules = append(schedules, planModels.FromSchedule(s))
	}

	return &PreviewResponse{
		Days:       planModels.FromDayPreviews(resp.Days),
		Schedules:  schedules,
		TotalSlots: resp.TotalSlots,
	}
}
