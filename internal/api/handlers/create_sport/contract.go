package create_sport

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateSport(ctx context.Context, req *models.CreateSportRequest) (*models.SportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
