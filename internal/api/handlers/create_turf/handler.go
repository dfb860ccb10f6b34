package create_turf

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/service/catalog"
	"github.com/m04kA/SMC-TurfService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingOwnerID     = "отсутствует ID владельца"
	msgInvalidInput       = "некорректные данные площадки"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/turfs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		h.logger.Warn("POST /turfs - Missing owner ID")
		handlers.RespondUnauthorized(w, msgMissingOwnerID)
		return
	}

	var req models.CreateTurfRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /turfs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.OwnerID = ownerID

	turf, err := h.service.CreateTurf(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /turfs - Invalid input: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput+": "+err.Error())

		default:
			h.logger.Error("POST /turfs - Failed to create turf: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /turfs - Turf created: turf_id=%s, owner_id=%s", turf.ID, ownerID)
	handlers.RespondJSON(w, http.StatusCreated, turf)
}
