package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// ActiveFlag признак активности в формате API ("Y"/"N")
type ActiveFlag string

const (
	ActiveYes ActiveFlag = "Y"
	ActiveNo  ActiveFlag = "N"
)

// ParseActiveFlag разбирает "Y"/"N" без учета регистра
func ParseActiveFlag(s string) (ActiveFlag, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Y":
		return ActiveYes, nil
	case "N":
		return ActiveNo, nil
	default:
		return "", fmt.Errorf("active flag must be Y or N, got %q", s)
	}
}

// FlagFromBool конвертирует bool в ActiveFlag
func FlagFromBool(active bool) ActiveFlag {
	if active {
		return ActiveYes
	}
	return ActiveNo
}

// Bool возвращает true для ActiveYes
func (f ActiveFlag) Bool() bool {
	return f == ActiveYes
}

// Turf площадка владельца
type Turf struct {
	ID                  uuid.UUID
	OwnerID             uuid.UUID
	Name                string
	Address             string
	MapLink             string
	City                string
	State               string
	Pincode             string
	OpeningTime         types.TimeString
	ClosingTime         types.TimeString
	SlotDurationMinutes int
	BufferMinutes       int
	ImageURL            string
	Amenities           []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsOwnedBy проверяет, что площадка принадлежит владельцу
func (t *Turf) IsOwnedBy(ownerID uuid.UUID) bool {
	return t.OwnerID == ownerID
}

// Sport вид спорта, доступный на площадке
type Sport struct {
	ID          uuid.UUID
	TurfID      uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Pricing базовая цена за час для вида спорта на площадке
type Pricing struct {
	ID           uuid.UUID
	TurfID       uuid.UUID
	SportID      uuid.UUID
	PricePerHour float64
	Currency     string
	IsActive     bool
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
