// Package planner превращает настройки дня (интервалы, длительность слота, буфер)
// в список бронируемых слотов. Все функции чистые: без состояния и без ошибок,
// некорректный ввод дает пустой результат, чтобы превью можно было пересчитывать
// на неполных данных формы.
package planner

import (
	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// GenerateSlotStarts генерирует времена начала слотов внутри интервала
// Слоты идут с шагом slotDuration + buffer, пока слот целиком помещается в интервал.
// Остаток в конце интервала отбрасывается, усеченный слот не создается.
func GenerateSlotStarts(r domain.TimeRange, slotDurationMinutes, bufferMinutes int) []types.TimeString {
	starts := make([]types.TimeString, 0)

	if slotDurationMinutes <= 0 || bufferMinutes < 0 {
		return starts
	}

	rangeStart, err := r.StartTime.Minutes()
	if err != nil {
		return starts
	}
	rangeEnd, err := r.EndTime.Minutes()
	if err != nil || rangeStart >= rangeEnd {
		return starts
	}

	// сравнение с остатком интервала, а не cursor+duration: сумма может переполнить int
	cursor := rangeStart
	for slotDurationMinutes <= rangeEnd-cursor {
		// cursor < rangeEnd < 24:00, поэтому ошибки быть не может
		start, err := types.FromMinutes(cursor)
		if err != nil {
			break
		}
		starts = append(starts, start)

		if bufferMinutes > rangeEnd-cursor-slotDurationMinutes {
			break
		}
		cursor += slotDurationMinutes + bufferMinutes
	}

	return starts
}

// ExpandToSlotPayload превращает список начал в слоты для сохранения
// Каждый слот заканчивается там, где начинается следующий, а последний - на границе интервала
// (а не через slotDuration), поэтому его фактическая длительность может отличаться.
func ExpandToSlotPayload(starts []types.TimeString, r domain.TimeRange) []domain.GeneratedSlot {
	slots := make([]domain.GeneratedSlot, 0, len(starts))

	rangeEnd := r.EndTime
	if normalized, err := types.NewTimeStringFromString(string(r.EndTime)); err == nil {
		rangeEnd = normalized
	}

	for i, start := range starts {
		end := rangeEnd
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		slots = append(slots, domain.GeneratedSlot{StartTime: start, EndTime: end})
	}

	return slots
}

// PlanRange генерирует слоты одного интервала
func PlanRange(r domain.TimeRange, slotDurationMinutes, bufferMinutes int) domain.PlannedRange {
	starts := GenerateSlotStarts(r, slotDurationMinutes, bufferMinutes)
	return domain.PlannedRange{
		Range:  r,
		Starts: starts,
		Slots:  ExpandToSlotPayload(starts, r),
	}
}

// PlanDay пересчитывает все интервалы дня
func PlanDay(day domain.DayPlan, bufferMinutes int) domain.DayPreview {
	ranges := make([]domain.PlannedRange, 0, len(day.TimeRanges))
	for _, r := range day.TimeRanges {
		ranges = append(ranges, PlanRange(r, day.SlotDurationMinutes, bufferMinutes))
	}

	return domain.DayPreview{
		Plan:   cloneDayPlan(day),
		Ranges: ranges,
	}
}

// PlanConfig пересчитывает все дни конфигурации в порядке недели
// Дни с неизвестным названием идут в конце в исходном порядке
func PlanConfig(cfg domain.SlotPlanConfig) []domain.DayPreview {
	days := orderedDays(cfg.Days)
	previews := make([]domain.DayPreview, 0, len(days))
	for _, day := range days {
		previews = append(previews, PlanDay(day, cfg.BufferMinutes))
	}
	return previews
}

// CopyDayPlan копирует длительность слота, цену и интервалы из source в target
// Интервалы target полностью заменяются (без слияния), день target сохраняется.
// После копирования слоты всех интервалов генерируются заново.
func CopyDayPlan(source, target domain.DayPlan, bufferMinutes int) domain.DayPreview {
	copied := domain.DayPlan{
		Day:                 target.Day,
		SlotDurationMinutes: source.SlotDurationMinutes,
		Price:               source.Price,
		TimeRanges:          cloneRanges(source.TimeRanges),
	}
	return PlanDay(copied, bufferMinutes)
}

// BuildSchedules строит расписания для сохранения: по одному на пару (день, интервал)
func BuildSchedules(cfg domain.SlotPlanConfig) []domain.SlotSchedule {
	schedules := make([]domain.SlotSchedule, 0)

	for _, preview := range PlanConfig(cfg) {
		for _, planned := range preview.Ranges {
			schedules = append(schedules, domain.SlotSchedule{
				TurfID:              cfg.TurfID,
				SportID:             cfg.SportID,
				Day:                 preview.Plan.Day,
				StartDate:           cfg.StartDate,
				EndDate:             cfg.EndDate,
				StartTime:           planned.Range.StartTime,
				EndTime:             planned.Range.EndTime,
				SlotDurationMinutes: preview.Plan.SlotDurationMinutes,
				Price:               preview.Plan.Price,
				Slots:               planned.Slots,
			})
		}
	}

	return schedules
}

// orderedDays сортирует дни по порядку недели, не меняя исходный срез
func orderedDays(days []domain.DayPlan) []domain.DayPlan {
	ordered := make([]domain.DayPlan, 0, len(days))
	for _, weekday := range domain.Week {
		for _, d := range days {
			if d.Day == weekday {
				ordered = append(ordered, d)
			}
		}
	}
	for _, d := range days {
		if !d.Day.IsValid() {
			ordered = append(ordered, d)
		}
	}
	return ordered
}

func cloneDayPlan(day domain.DayPlan) domain.DayPlan {
	day.TimeRanges = cloneRanges(day.TimeRanges)
	return day
}

func cloneRanges(ranges []domain.TimeRange) []domain.TimeRange {
	cloned := make([]domain.TimeRange, len(ranges))
	copy(cloned, ranges)
	return cloned
}
