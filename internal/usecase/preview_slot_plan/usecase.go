package preview_slot_plan

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/service/planner"
)

// UseCase use case для превью слотов без сохранения
type UseCase struct {
	maxRangesPerDay int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(maxRangesPerDay int, logger Logger) *UseCase {
	return &UseCase{
		maxRangesPerDay: maxRangesPerDay,
		logger:          logger,
	}
}

// Execute пересчитывает слоты всех дней формы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PreviewSlotPlan: turf=%s, sport=%s, days=%d, buffer=%d",
		req.Config.TurfID, req.Config.SportID, len(req.Config.Days), req.Config.BufferMinutes)

	// 1. Ограничения объема
	if err := validateLimits(req.Config, uc.maxRangesPerDay); err != nil {
		uc.logger.Warn("PreviewSlotPlan: validation failed: %v", err)
		return nil, err
	}

	// 2. Генерация
	days := planner.PlanConfig(req.Config)
	total := 0
	for i := range days {
		total += days[i].SlotsCount()
	}

	uc.logger.Info("PreviewSlotPlan: generated %d slots for %d days", total, len(days))

	return &Response{
		Days:       days,
		Schedules:  planner.BuildSchedules(req.Config),
		TotalSlots: total,
	}, nil
}
