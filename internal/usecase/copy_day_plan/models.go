package copy_day_plan

import "github.com/m04kA/SMC-TurfService/internal/domain"

// Request модель запроса копирования дня
type Request struct {
	Config    domain.SlotPlanConfig
	TargetDay domain.Weekday
	SourceDay *domain.Weekday // nil - предыдущий день недели
}

// Response обновленная конфигурация и пересчитанный целевой день
type Response struct {
	Config    domain.SlotPlanConfig
	SourceDay domain.Weekday
	Preview   domain.DayPreview
}
