package sportshouse

// SlotPayload один слот внутри расписания
type SlotPayload struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// SchedulePayload тело запроса POST /slots/save: расписание одного интервала одного дня
type SchedulePayload struct {
	TurfID       string        `json:"turf_id"`
	SportID      string        `json:"sport_id"`
	Day          string        `json:"day"`
	StartDate    string        `json:"start_date"` // YYYY-MM-DD
	EndDate      string        `json:"end_date"`   // YYYY-MM-DD
	StartTime    string        `json:"start_time"` // HH:MM
	EndTime      string        `json:"end_time"`   // HH:MM
	SlotDuration int           `json:"slot_duration"`
	Price        float64       `json:"price"`
	Slots        []SlotPayload `json:"slots"`
}

// ErrorResponse модель ошибки от старого backend
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
