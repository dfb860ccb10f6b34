package create_turf

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateTurf(ctx context.Context, req *models.CreateTurfRequest) (*models.TurfResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
