package preview_slot_plan

import "errors"

var (
	// ErrInvalidInput возвращается, когда форма превышает ограничения (слишком много дней или интервалов)
	ErrInvalidInput = errors.New("preview_slot_plan: invalid input data")
)
