package catalog

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("turf not found")

	// ErrSportNotFound возвращается, когда вид спорта не найден на площадке
	ErrSportNotFound = errors.New("sport not found")

	// ErrAccessDenied возвращается, когда площадка принадлежит другому владельцу
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSportAlreadyExists возвращается при повторном добавлении спорта на площадку
	ErrSportAlreadyExists = errors.New("sport already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
