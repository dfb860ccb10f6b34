package get_day_slots

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/service/slots/models"
)

type SlotsService interface {
	GetByTurfSportDay(ctx context.Context, req *models.GetDaySlotsRequest) ([]*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
