package preview_slot_plan

import (
	"fmt"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// validateLimits ограничивает объем вычислений; содержимое формы не проверяется
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
