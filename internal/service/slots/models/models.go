package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// Request модели

// GetDaySlotsRequest запрос списка слотов на день недели
type GetDaySlotsRequest struct {
	OwnerID uuid.UUID
	TurfID  uuid.UUID
	SportID uuid.UUID
	Day     domain.Weekday
}

// ToggleStatusRequest запрос на включение/выключение слота
type ToggleStatusRequest struct {
	OwnerID  uuid.UUID `json:"-"`
	SlotID   uuid.UUID `json:"-"`
	IsActive string    `json:"isActive"` // Y/N
}

// UpdatePriceRequest запрос на изменение цены слота
type UpdatePriceRequest struct {
	OwnerID uuid.UUID `json:"-"`
	SlotID  uuid.UUID `json:"-"`
	Price   float64   `json:"price"`
}

// Response модели

// SlotResponse слот в ответе API
type SlotResponse struct {
	ID              uuid.UUID `json:"id"`
	ScheduleID      uuid.UUID `json:"scheduleId"`
	TurfID          uuid.UUID `json:"turfId"`
	SportID         uuid.UUID `json:"sportId"`
	Day             string    `json:"day"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
	IsActive        string    `json:"isActive"`
}

// PriceResponse цена слота
type PriceResponse struct {
	SlotID uuid.UUID `json:"slotId"`
	Price  float64   `json:"price"`
}

// FromDomainSlot конвертирует доменную модель в ответ
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:              s.ID,
		ScheduleID:      s.ScheduleID,
		TurfID:          s.TurfID,
		SportID:         s.SportID,
		Day:             s.Day.String(),
		StartDate:       s.StartDate.Format(domain.DateFormat),
		EndDate:         s.EndDate.Format(domain.DateFormat),
		StartTime:       s.StartTime.String(),
		EndTime:         s.EndTime.String(),
		DurationMinutes: s.DurationMinutes(),
		Price:           s.Price,
		IsActive:        string(domain.FlagFromBool(s.IsActive)),
	}
}

// FromDomainSlots конвертирует список слотов
func FromDomainSlots(slots []*domain.Slot) []*SlotResponse {
	result := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, FromDomainSlot(s))
	}
	return result
}
