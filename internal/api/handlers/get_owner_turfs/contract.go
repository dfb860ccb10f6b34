package get_owner_turfs

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/service/catalog/models"
)

type CatalogService interface {
	GetOwnerTurfs(ctx context.Context, ownerID uuid.UUID) ([]*models.TurfResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
