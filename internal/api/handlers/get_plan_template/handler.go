package get_plan_template

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/internal/service/planner"
	planModels "github.com/m04kA/SMC-TurfService/internal/service/planner/models"
)

const (
	msgInvalidTurfID  = "некорректный ID площадки"
	msgInvalidSportID = "некорректный ID вида спорта"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

type Handler struct {
	defaults planner.Defaults
	logger   Logger
}

func NewHandler(defaults planner.Defaults, logger Logger) *Handler {
	return &Handler{
		defaults: defaults,
		logger:   logger,
	}
}

// Handle GET /api/v1/slot-plans/template?turfId=&sportId=&startDate=&endDate=
// Все параметры опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	turfID, ok := optionalUUID(q.Get("turfId"))
	if !ok {
		h.logger.Warn("GET /slot-plans/template - Invalid turf ID: %q", q.Get("turfId"))
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	sportID, ok := optionalUUID(q.Get("sportId"))
	if !ok {
		h.logger.Warn("GET /slot-plans/template - Invalid sport ID: %q", q.Get("sportId"))
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	startDate, ok := optionalDate(q.Get("startDate"))
	if !ok {
		h.logger.Warn("GET /slot-plans/template - Invalid start date: %q", q.Get("startDate"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, ok := optionalDate(q.Get("endDate"))
	if !ok {
		h.logger.Warn("GET /slot-plans/template - Invalid end date: %q", q.Get("endDate"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	cfg := planner.NewPlan(turfID, sportID, startDate, endDate, h.defaults)

	h.logger.Info("GET /slot-plans/template - Template built: turf_id=%s, sport_id=%s", turfID, sportID)
	handlers.RespondJSON(w, http.StatusOK, planModels.FromDomainConfig(cfg))
}

func optionalUUID(s string) (uuid.UUID, bool) {
	if s == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

func optionalDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(domain.DateFormat, s)
	return t, err == nil
}
