package save_slot_plan

import (
	"context"

	saveSlotPlan "github.com/m04kA/SMC-TurfService/internal/usecase/save_slot_plan"
)

type SaveSlotPlanUseCase interface {
	Execute(ctx context.Context, req *saveSlotPlan.Request) (*saveSlotPlan.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
