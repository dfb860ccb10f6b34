package preview_slot_plan

import "github.com/m04kA/SMC-TurfService/internal/domain"

// Request модель запроса превью
// Конфигурация может быть заполнена частично: по неполным интервалам слоты просто не генерируются
type Request struct {
	Config domain.SlotPlanConfig
}

// Response превью по дням в порядке недели
type Response struct {
	Days       []domain.DayPreview
	Schedules  []domain.SlotSchedule // Расписания в том виде, в котором они уйдут на сохранение
	TotalSlots int
}
