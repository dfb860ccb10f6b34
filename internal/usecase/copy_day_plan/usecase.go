package copy_day_plan

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/internal/service/planner"
)

// UseCase use case копирования настроек одного дня в другой
type UseCase struct {
	maxRangesPerDay int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// maxRangesPerDay <= 0 отключает ограничение на число интервалов в дне
func NewUseCase(maxRangesPerDay int, logger Logger) *UseCase {
	return &UseCase{maxRangesPerDay: maxRangesPerDay, logger: logger}
}

// Execute копирует длительность, цену и интервалы дня-источника в целевой день
// Интервалы целевого дня заменяются полностью. Если целевого дня нет в конфигурации, он добавляется.
// Входная конфигурация не изменяется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Проверяем размер конфигурации и определяем день-источник
	if err := validateLimits(req.Config, uc.maxRangesPerDay); err != nil {
		uc.logger.Warn("CopyDayPlan: target=%s: %v", req.TargetDay, err)
		return nil, err
	}

	sourceDay, err := resolveSourceDay(req)
	if err != nil {
		uc.logger.Warn("CopyDayPlan: target=%s: %v", req.TargetDay, err)
		return nil, err
	}

	uc.logger.Info("CopyDayPlan: copying %s -> %s", sourceDay, req.TargetDay)

	// 2. Находим источник
	source, ok := req.Config.DayPlan(sourceDay)
	if !ok {
		uc.logger.Warn("CopyDayPlan: source day %s is not configured", sourceDay)
		return nil, ErrSourceDayNotFound
	}

	// 3. Копируем и пересчитываем целевой день
	target := domain.DayPlan{Day: req.TargetDay}
	if existing, ok := req.Config.DayPlan(req.TargetDay); ok {
		target = *existing
	}
	preview := planner.CopyDayPlan(*source, target, req.Config.BufferMinutes)

	// 4. Собираем новую конфигурацию
	updated := replaceDay(req.Config, preview.Plan)

	uc.logger.Info("CopyDayPlan: %s now has %d ranges, %d slots",
		req.TargetDay, len(preview.Ranges), preview.SlotsCount())

	return &Response{
		Config:    updated,
		SourceDay: sourceDay,
		Preview:   preview,
	}, nil
}

// replaceDay возвращает копию конфигурации, где план дня заменен (или добавлен)
func replaceDay(cfg domain.SlotPlanConfig, plan domain.DayPlan) domain.SlotPlanConfig {
	days := make([]domain.DayPlan, 0, len(cfg.Days)+1)
	replaced := false

	for _, d := range cfg.Days {
		if d.Day == plan.Day {
			days = append(days, plan)
			replaced = true
			continue
		}
		ranges := make([]domain.TimeRange, len(d.TimeRanges))
		copy(ranges, d.TimeRanges)
		d.TimeRanges = ranges
		days = append(days, d)
	}

	if !replaced {
		days = append(days, plan)
	}

	cfg.Days = days
	return cfg
}
