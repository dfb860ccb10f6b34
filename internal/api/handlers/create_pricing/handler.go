package create_pricing

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
	msgInvalidSportID     = "некорректный ID вида спорта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingOwnerID     = "отсутствует ID владельца"
	msgInvalidInput       = "некорректные данные цены"
	msgTurfNotFound       = "площадка не найдена"
	msgSportNotFound      = "вид спорта не найден на площадке"
	msgForbidden          = "доступ запрещен"
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

// Handle POST /api/v1/turfs/{turfId}/sports/{sportId}/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	turfID, err := uuid.Parse(vars["turfId"])
	if err != nil {
		h.logger.Warn("POST /pricing - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	sportID, err := uuid.Parse(vars["sportId"])
	if err != nil {
		h.logger.Warn("POST /pricing - Invalid sport ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		h.logger.Warn("POST /pricing - Missing owner ID")
		handlers.RespondUnauthorized(w, msgMissingOwnerID)
		return
	}

	var req models.CreatePricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.OwnerID = ownerID
	req.TurfID = turfID
	req.SportID = sportID

	pricing, err := h.service.CreatePricing(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /pricing - Invalid input: sport_id=%s, error=%v", sportID, err)
			handlers.RespondBadRequest(w, msgInvalidInput+": "+err.Error())

		case errors.Is(err, catalog.ErrTurfNotFound):
			h.logger.Warn("POST /pricing - Turf not found: turf_id=%s", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, catalog.ErrSportNotFound):
			h.logger.Warn("POST /pricing - Sport not found: turf_id=%s, sport_id=%s", turfID, sportID)
			handlers.RespondNotFound(w, msgSportNotFound)

		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("POST /pricing - Access denied: turf_id=%s, owner_id=%s", turfID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /pricing - Failed to create pricing: sport_id=%s, error=%v", sportID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pricing - Pricing created: pricing_id=%s, sport_id=%s", pricing.ID, sportID)
	handlers.RespondJSON(w, http.StatusCreated, pricing)
}
