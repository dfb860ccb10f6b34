package create_sport

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/service/catalog"
	"github.com/m04kA/SMC-TurfService/internal/service/catalog/models"
)

const (
	msgInvalidTurfID      = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingOwnerID     = "отсутствует ID владельца"
	msgInvalidInput       = "некорректные данные вида спорта"
	msgTurfNotFound       = "площадка не найдена"
	msgForbidden          = "доступ запрещен"
	msgAlreadyExists      = "такой вид спорта уже добавлен на площадку"
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

// Handle POST /api/v1/turfs/{turfId}/sports
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	turfID, err := uuid.Parse(mux.Vars(r)["turfId"])
	if err != nil {
		h.logger.Warn("POST /turfs/{id}/sports - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		h.logger.Warn("POST /turfs/{id}/sports - Missing owner ID")
		handlers.RespondUnauthorized(w, msgMissingOwnerID)
		return
	}

	var req models.CreateSportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /turfs/{id}/sports - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.OwnerID = ownerID
	req.TurfID = turfID

	sport, err := h.service.CreateSport(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /turfs/{id}/sports - Invalid input: turf_id=%s, error=%v", turfID, err)
			handlers.RespondBadRequest(w, msgInvalidInput+": "+err.Error())

		case errors.Is(err, catalog.ErrTurfNotFound):
			h.logger.Warn("POST /turfs/{id}/sports - Turf not found: turf_id=%s", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("POST /turfs/{id}/sports - Access denied: turf_id=%s, owner_id=%s", turfID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, catalog.ErrSportAlreadyExists):
			h.logger.Warn("POST /turfs/{id}/sports - Sport already exists: turf_id=%s, name=%s", turfID, req.Name)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /turfs/{id}/sports - Failed to create sport: turf_id=%s, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /turfs/{id}/sports - Sport created: sport_id=%s, turf_id=%s", sport.ID, turfID)
	handlers.RespondJSON(w, http.StatusCreated, sport)
}
