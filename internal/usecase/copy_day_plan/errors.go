package copy_day_plan

import "errors"

var (
	// ErrNoPreviousDay возвращается для понедельника без явно указанного дня-источника
	ErrNoPreviousDay = errors.New("copy_day_plan: no previous day to copy from")

	// ErrSourceDayNotFound возвращается, когда дня-источника нет в конфигурации
	ErrSourceDayNotFound = errors.New("copy_day_plan: source day is not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("copy_day_plan: invalid input data")
)
