package sport

import "errors"

var (
	// ErrSportNotFound возвращается, когда вид спорта не найден
	ErrSportNotFound = errors.New("sport.repository: sport not found")

	// ErrDuplicateSport возвращается при попытке добавить спорт с существующим названием на площадку
	ErrDuplicateSport = errors.New("sport.repository: sport with this name already exists on turf")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("sport.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("sport.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("sport.repository: failed to scan row")
)
