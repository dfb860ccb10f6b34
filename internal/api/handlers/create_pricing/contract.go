package create_pricing

import (
	"context"

	"github.com/m04kA/SMC-TurfService/internal/service/catalog/models"
)

type CatalogService interface {
	CreatePricing(ctx context.Context, req *models.CreatePricingRequest) (*models.PricingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
