package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// Defaults значения, которыми заполняется новая форма
type Defaults struct {
	BufferMinutes       int
	SlotDurationMinutes int
	Price               float64
}

// DefaultValues значения формы по умолчанию (буфер 10 минут, слот 60 минут, цена 500)
func DefaultValues() Defaults {
	return Defaults{
		BufferMinutes:       domain.DefaultBufferMinutes,
		SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
		Price:               domain.DefaultDayPrice,
	}
}

// NewPlan создает пустую форму: все семь дней с длительностью и ценой по умолчанию и без интервалов
// Нулевые поля defaults заменяются значениями DefaultValues
func NewPlan(turfID, sportID uuid.UUID, startDate, endDate time.Time, defaults Defaults) domain.SlotPlanConfig {
	d := defaults.withFallback()

	days := make([]domain.DayPlan, 0, len(domain.Week))
	for _, day := range domain.Week {
		days = append(days, domain.DayPlan{
			Day:                 day,
			SlotDurationMinutes: d.SlotDurationMinutes,
			Price:               d.Price,
			TimeRanges:          make([]domain.TimeRange, 0),
		})
	}

	return domain.SlotPlanConfig{
		TurfID:        turfID,
		SportID:       sportID,
		StartDate:     startDate,
		EndDate:       endDate,
		BufferMinutes: d.BufferMinutes,
		Days:          days,
	}
}

func (d Defaults) withFallback() Defaults {
	fallback := DefaultValues()
	if d.SlotDurationMinutes <= 0 {
		d.SlotDurationMinutes = fallback.SlotDurationMinutes
	}
	if d.BufferMinutes < 0 {
		d.BufferMinutes = fallback.BufferMinutes
	}
	if d.Price <= 0 {
		d.Price = fallback.Price
	}
	return d
}
