package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/internal/service/slots"
	"github.com/m04kA/SMC-TurfService/internal/service/slots/models"
)

const (
	msgInvalidTurfID  = "некорректный ID площадки"
	msgInvalidSportID = "некорректный ID вида спорта"
	msgInvalidDay     = "некорректный день недели, ожидается Monday..Sunday"
	msgMissingOwnerID = "отсутствует ID владельца"
	msgTurfNotFound   = "площадка не найдена"
	msgSportNotFound  = "вид спорта не найден на площадке"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{turfId}/sports/{sportId}/slots?day=Monday
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	turfID, err := uuid.Parse(vars["turfId"])
	if err != nil {
		h.logger.Warn("GET /slots - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	sportID, err := uuid.Parse(vars["sportId"])
	if err != nil {
		h.logger.Warn("GET /slots - Invalid sport ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	day, err := domain.ParseWeekday(r.URL.Query().Get("day"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		h.logger.Warn("GET /slots - Missing owner ID")
		handlers.RespondUnauthorized(w, msgMissingOwnerID)
		return
	}

	result, err := h.service.GetByTurfSportDay(r.Context(), &models.GetDaySlotsRequest{
		OwnerID: ownerID,
		TurfID:  turfID,
		SportID: sportID,
		Day:     day,
	})
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrTurfNotFound):
			h.logger.Warn("GET /slots - Turf not found: turf_id=%s", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, slots.ErrSportNotFound):
			h.logger.Warn("GET /slots - Sport not found: turf_id=%s, sport_id=%s", turfID, sportID)
			handlers.RespondNotFound(w, msgSportNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("GET /slots - Access denied: turf_id=%s, owner_id=%s", turfID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /slots - Failed to get slots: turf_id=%s, sport_id=%s, day=%s, error=%v",
				turfID, sportID, day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved: turf_id=%s, sport_id=%s, day=%s, count=%d",
		turfID, sportID, day, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
