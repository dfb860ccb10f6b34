package domain

// Значения по умолчанию для формы планирования
const (
	DefaultSlotDurationMinutes = 60
	DefaultBufferMinutes       = 10
	DefaultDayPrice            = 500
	DefaultCurrency            = "INR"
)

// Ограничения бизнес-валидации
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 часов
	MinBufferMinutes       = 0
	MaxBufferMinutes       = 240
	MinSlotPrice           = 1

	MaxTurfNameLength    = 100
	MaxTurfAddressLength = 250
	MaxCityLength        = 50
	MaxStateLength       = 50
	MaxSportNameLength   = 100
	MaxDescriptionLength = 500
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
