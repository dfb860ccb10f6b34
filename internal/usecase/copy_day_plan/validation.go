package copy_day_plan

import (
	"fmt"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// resolveSourceDay возвращает день-источник: явно указанный или предыдущий день недели
func resolveSourceDay(req *Request) (domain.Weekday, error) {
	if !req.TargetDay.IsValid() {
		return "", fmt.Errorf("%w: unknown target day %q", ErrInvalidInput, req.TargetDay)
	}

	if req.SourceDay == nil {
		previous, ok := req.TargetDay.Previous()
		if !ok {
			return "", ErrNoPreviousDay
		}
		return previous, nil
	}

	source := *req.SourceDay
	if !source.IsValid() {
		return "", fmt.Errorf("%w: unknown source day %q", ErrInvalidInput, source)
	}
	if source == req.TargetDay {
		return "", fmt.Errorf("%w: source and target day must differ", ErrInvalidInput)
	}

	return source, nil
}

// validateLimits ограничивает размер входной конфигурации
func validateLimits(cfg domain.SlotPlanConfig, maxRangesPerDay int) error {
	if len(cfg.Days) > len(domain.Week) {
		return fmt.Errorf("%w: at most %d days allowed", ErrInvalidInput, len(domain.Week))
	}
	for _, d := range cfg.Days {
		if maxRangesPerDay > 0 && len(d.TimeRanges) > maxRangesPerDay {
			return fmt.Errorf("%w: day %s has %d time ranges, at most %d allowed",
				ErrInvalidInput, d.Day, len(d.TimeRanges), maxRangesPerDay)
		}
	}
	return nil
}
