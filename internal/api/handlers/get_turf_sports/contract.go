package get_turf_sports

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/service/catalog/models"
)

type CatalogService interface {
	GetTurfSports(ctx context.Context, ownerID, turfID uuid.UUID) ([]*models.SportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
