package update_slot_price

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/service/slots/models"
)

type SlotsService interface {
	UpdatePrice(ctx context.Context, req *models.UpdatePriceRequest) (*models.PriceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
