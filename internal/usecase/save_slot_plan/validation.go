package save_slot_plan

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// validateRequest проверяет конфигурацию целиком перед сохранением
func validateRequest(req *Request, maxRangesPerDay int) error {
	if req.OwnerID == uuid.Nil {
		return fmt.Errorf("%w: ownerID is required", ErrInvalidInput)
	}

	cfg := req.Config

	if cfg.TurfID == uuid.Nil {
		return fmt.Errorf("%w: turfId is required", ErrInvalidInput)
	}
	if cfg.SportID == uuid.Nil {
		return fmt.Errorf("%w: sportId is required", ErrInvalidInput)
	}

	if cfg.StartDate.IsZero() || cfg.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required (YYYY-MM-DD)", ErrInvalidInput)
	}
	if cfg.EndDate.Before(cfg.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	if cfg.BufferMinutes < domain.MinBufferMinutes || cfg.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}

	if len(cfg.Days) == 0 {
		return fmt.Errorf("%w: at least one day is required", ErrInvalidInput)
	}

	seen := make(map[domain.Weekday]bool, len(cfg.Days))
	for _, d := range cfg.Days {
		if err := validateDay(d, maxRangesPerDay); err != nil {
			return err
		}
		if seen[d.Day] {
			return fmt.Errorf("%w: day %s is configured twice", ErrInvalidInput, d.Day)
		}
		seen[d.Day] = true
	}

	return nil
}

func validateDay(d domain.DayPlan, maxRangesPerDay int) error {
	if !d.Day.IsValid() {
		return fmt.Errorf("%w: unknown day %q", ErrInvalidInput, d.Day)
	}

	if d.SlotDurationMinutes < domain.MinSlotDurationMinutes || d.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: %s: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, d.Day, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if d.Price < 0 {
		return fmt.Errorf("%w: %s: price must not be negative", ErrInvalidInput, d.Day)
	}

	if len(d.TimeRanges) == 0 {
		return fmt.Errorf("%w: %s: at least one time range is required", ErrInvalidInput, d.Day)
	}
	if maxRangesPerDay > 0 && len(d.TimeRanges) > maxRangesPerDay {
		return fmt.Errorf("%w: %s: at most %d time ranges allowed", ErrInvalidInput, d.Day, maxRangesPerDay)
	}

	for i, r := range d.TimeRanges {
		if !r.IsWellFormed() {
			return fmt.Errorf("%w: %s: time range #%d (%q-%q) must have startTime before endTime in HH:MM",
				ErrInvalidInput, d.Day, i+1, r.StartTime, r.EndTime)
		}
	}

	return nil
}
