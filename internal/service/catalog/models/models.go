package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// Request модели

// CreateTurfRequest запрос на создание площадки
type CreateTurfRequest struct {
	OwnerID             uuid.UUID `json:"-"` // из заголовка X-Owner-ID
	Name                string    `json:"name"`
	Address             string    `json:"address"`
	MapLink             string    `json:"mapLink"`
	City                string    `json:"city"`
	State               string    `json:"state"`
	Pincode             string    `json:"pincode"`
	OpeningTime         string    `json:"openingTime"` // HH:MM
	ClosingTime         string    `json:"closingTime"` // HH:MM
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	BufferMinutes       int       `json:"bufferMinutes"`
	ImageURL            string    `json:"imageUrl,omitempty"`
	Amenities           []string  `json:"amenities"`
}

// CreateSportRequest запрос на добавление вида спорта
type CreateSportRequest struct {
	OwnerID     uuid.UUID `json:"-"`
	TurfID      uuid.UUID `json:"-"` // из пути
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    string    `json:"isActive,omitempty"` // Y/N, по умолчанию Y
}

// CreatePricingRequest запрос на установку базовой цены за час
type CreatePricingRequest struct {
	OwnerID      uuid.UUID `json:"-"`
	TurfID       uuid.UUID `json:"-"`
	SportID      uuid.UUID `json:"-"`
	PricePerHour float64   `json:"pricePerHour"`
	Currency     string    `json:"currency,omitempty"` // по умолчанию INR
	IsActive     string    `json:"isActive,omitempty"`
}

// Response модели

// TurfResponse ответ с данными площадки
type TurfResponse struct {
	ID                  uuid.UUID `json:"id"`
	OwnerID             uuid.UUID `json:"ownerId"`
	Name                string    `json:"name"`
	Address             string    `json:"address"`
	MapLink             string    `json:"mapLink"`
	City                string    `json:"city"`
	State               string    `json:"state"`
	Pincode             string    `json:"pincode"`
	OpeningTime         string    `json:"openingTime"`
	ClosingTime         string    `json:"closingTime"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	BufferMinutes       int       `json:"bufferMinutes"`
	ImageURL            string    `json:"imageUrl,omitempty"`
	Amenities           []string  `json:"amenities"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// SportResponse ответ с данными вида спорта
type SportResponse struct {
	ID          uuid.UUID `json:"id"`
	TurfID      uuid.UUID `json:"turfId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    string    `json:"isActive"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PricingResponse ответ с базовой ценой
type PricingResponse struct {
	ID           uuid.UUID `json:"id"`
	TurfID       uuid.UUID `json:"turfId"`
	SportID      uuid.UUID `json:"sportId"`
	PricePerHour float64   `json:"pricePerHour"`
	Currency     string    `json:"currency"`
	IsActive     string    `json:"isActive"`
	CreatedBy    uuid.UUID `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Методы конвертации

// ToDomainTurf конвертирует запрос в доменную модель (время уже провалидировано)
func (r *CreateTurfRequest) ToDomainTurf(opening, closing types.TimeString) *domain.Turf {
	amenities := make([]string, 0, len(r.Amenities))
	for _, a := range r.Amenities {
		amenities = append(amenities, strings.TrimSpace(a))
	}

	return &domain.Turf{
		OwnerID:             r.OwnerID,
		Name:                strings.TrimSpace(r.Name),
		Address:             strings.TrimSpace(r.Address),
		MapLink:             strings.TrimSpace(r.MapLink),
		City:                strings.TrimSpace(r.City),
		State:               strings.TrimSpace(r.State),
		Pincode:             strings.TrimSpace(r.Pincode),
		OpeningTime:         opening,
		ClosingTime:         closing,
		SlotDurationMinutes: r.SlotDurationMinutes,
		BufferMinutes:       r.BufferMinutes,
		ImageURL:            strings.TrimSpace(r.ImageURL),
		Amenities:           amenities,
	}
}

// FromDomainTurf конвертирует доменную модель в ответ
func FromDomainTurf(t *domain.Turf) *TurfResponse {
	amenities := t.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &TurfResponse{
		ID:                  t.ID,
		OwnerID:             t.OwnerID,
		Name:                t.Name,
		Address:             t.Address,
		MapLink:             t.MapLink,
		City:                t.City,
		State:               t.State,
		Pincode:             t.Pincode,
		OpeningTime:         t.OpeningTime.String(),
		ClosingTime:         t.ClosingTime.String(),
		SlotDurationMinutes: t.SlotDurationMinutes,
		BufferMinutes:       t.BufferMinutes,
		ImageURL:            t.ImageURL,
		Amenities:           amenities,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

// FromDomainSport конвертирует доменную модель в ответ
func FromDomainSport(s *domain.Sport) *SportResponse {
	return &SportResponse{
		ID:          s.ID,
		TurfID:      s.TurfID,
		Name:        s.Name,
		Description: s.Description,
		IsActive:    string(domain.FlagFromBool(s.IsActive)),
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
	}
}

// FromDomainPricing конвертирует доменную модель в ответ
func FromDomainPricing(p *domain.Pricing) *PricingResponse {
	return &PricingResponse{
		ID:           p.ID,
		TurfID:       p.TurfID,
		SportID:      p.SportID,
		PricePerHour: p.PricePerHour,
		Currency:     p.Currency,
		IsActive:     string(domain.FlagFromBool(p.IsActive)),
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
	}
}
