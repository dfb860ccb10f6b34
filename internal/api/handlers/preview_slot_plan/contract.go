package preview_slot_plan

import (
	"context"

	previewSlotPlan "github.com/m04kA/SMC-TurfService/internal/usecase/preview_slot_plan"
)

type PreviewSlotPlanUseCase interface {
	Execute(ctx context.Context, req *previewSlotPlan.Request) (*previewSlotPlan.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
