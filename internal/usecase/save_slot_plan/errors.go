package save_slot_plan

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("save_slot_plan: turf not found")

	// ErrSportNotFound возвращается, когда вид спорта не найден на площадке
	ErrSportNotFound = errors.New("save_slot_plan: sport not found")

	// ErrAccessDenied возвращается, когда площадка принадлежит другому владельцу
	ErrAccessDenied = errors.New("save_slot_plan: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("save_slot_plan: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_slot_plan: internal error")
)
