package get_slot_price

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/service/slots/models"
)

type SlotsService interface {
	GetPrice(ctx context.Context, ownerID, slotID uuid.UUID) (*models.PriceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
