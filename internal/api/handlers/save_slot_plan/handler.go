package save_slot_plan

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	planModels "github.com/m04kA/SMC-TurfService/internal/service/planner/models"
	saveSlotPlan "github.com/m04kA/SMC-TurfService/internal/usecase/save_slot_plan"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingOwnerID     = "отсутствует ID владельца"
	msgInvalidInput       = "некорректные данные формы"
	msgTurfNotFound       = "площадка не найдена"
	msgSportNotFound      = "вид спорта не найден на площадке"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase SaveSlotPlanUseCase
	logger  Logger
}

func NewHandler(useCase SaveSlotPlanUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slot-plans
// 200 - все интервалы обработаны без ошибок, 207 - часть интервалов не сохранилась (детали в отчете)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		h.logger.Warn("POST /slot-plans - Missing owner ID")
		handlers.RespondUnauthorized(w, msgMissingOwnerID)
		return
	}

	var form planModels.PlanForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		h.logger.Warn("POST /slot-plans - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &saveSlotPlan.Request{
		OwnerID: ownerID,
		Config:  form.ToDomain(),
	})
	if err != nil {
		switch {
		case errors.Is(err, saveSlotPlan.ErrInvalidInput):
			h.logger.Warn("POST /slot-plans - Invalid input: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput+": "+err.Error())

		case errors.Is(err, saveSlotPlan.ErrTurfNotFound):
			h.logger.Warn("POST /slot-plans - Turf not found: turf_id=%s", form.TurfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, saveSlotPlan.ErrSportNotFound):
			h.logger.Warn("POST /slot-plans - Sport not found: turf_id=%s, sport_id=%s", form.TurfID, form.SportID)
			handlers.RespondNotFound(w, msgSportNotFound)

		case errors.Is(err, saveSlotPlan.ErrAccessDenied):
			h.logger.Warn("POST /slot-plans - Access denied: owner_id=%s, turf_id=%s", ownerID, form.TurfID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /slot-plans - Failed to save plan: owner_id=%s, turf_id=%s, error=%v",
				ownerID, form.TurfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.HasFailures() {
		status = http.StatusMultiStatus
		h.logger.Warn("POST /slot-plans - Plan saved partially: turf_id=%s, saved=%d, failed=%d",
			result.TurfID, result.SavedSchedules, result.FailedRanges)
	} else {
		h.logger.Info("POST /slot-plans - Plan saved: turf_id=%s, schedules=%d, slots=%d, skipped=%d",
			result.TurfID, result.SavedSchedules, result.SavedSlots, result.SkippedRanges)
	}

	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
