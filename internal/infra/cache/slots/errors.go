package slots

import "errors"

var (
	// ErrCacheUnavailable возвращается, когда кэш выключен или Redis недоступен
	ErrCacheUnavailable = errors.New("slots.cache: cache unavailable")

	// ErrEncode возвращается при ошибке сериализации значения
	ErrEncode = errors.New("slots.cache: failed to encode value")
)
