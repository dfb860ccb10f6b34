package sportshouse

import "errors"

var (
	// ErrRejected возвращается, когда backend отклонил расписание (4xx)
	ErrRejected = errors.New("sportshouse client: schedule rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sportshouse client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("sportshouse client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Расписание уже сохранено локально, зеркалирование пропущено
	ErrServiceDegraded = errors.New("sportshouse unavailable: graceful degradation applied")
)
