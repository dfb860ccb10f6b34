package toggle_slot_status

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/service/slots/models"
)

type SlotsService interface {
	ToggleStatus(ctx context.Context, req *models.ToggleStatusRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
