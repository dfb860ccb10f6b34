package get_turf_sports

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/service/catalog"
)

const (
	msgInvalidTurfID  = "некорректный ID площадки"
	msgMissingOwnerID = "отсутствует ID владельца"
	msgTurfNotFound   = "площадка не найдена"
	msgForbidden      = "доступ запрещен"
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

// Handle GET /api/v1/turfs/{turfId}/sports
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	turfID, err := uuid.Parse(mux.Vars(r)["turfId"])
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/sports - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		h.logger.Warn("GET /turfs/{id}/sports - Missing owner ID")
		handlers.RespondUnauthorized(w, msgMissingOwnerID)
		return
	}

	sports, err := h.service.GetTurfSports(r.Context(), ownerID, turfID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{id}/sports - Turf not found: turf_id=%s", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("GET /turfs/{id}/sports - Access denied: turf_id=%s, owner_id=%s", turfID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /turfs/{id}/sports - Failed to get sports: turf_id=%s, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /turfs/{id}/sports - Sports retrieved: turf_id=%s, count=%d", turfID, len(sports))
	handlers.RespondJSON(w, http.StatusOK, sports)
}
