package copy_day_plan

import (
	"context"

	copyDayPlan "github.com/m04kA/SMC-TurfService/internal/usecase/copy_day_plan"
)

type CopyDayPlanUseCase interface {
	Execute(ctx context.Context, req *copyDayPlan.Request) (*copyDayPlan.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
