package preview_slot_plan

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	planModels "github.com/m04kA/SMC-TurfService/internal/service/planner/models"
	previewSlotPlan "github.com/m04kA/SMC-TurfService/internal/usecase/preview_slot_plan"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTooLargePlan       = "слишком много дней или интервалов в форме"
)

type Handler struct {
	useCase PreviewSlotPlanUseCase
	logger  Logger
}

func NewHandler(useCase PreviewSlotPlanUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slot-plans/preview
// Форма может быть заполнена частично: незаполненные интервалы просто не дают слотов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var form planModels.PlanForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		h.logger.Warn("POST /slot-plans/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &previewSlotPlan.Request{Config: form.ToDomain()})
	if err != nil {
		switch {
		case errors.Is(err, previewSlotPlan.ErrInvalidInput):
			h.logger.Warn("POST /slot-plans/preview - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgTooLargePlan)

		default:
			h.logger.Error("POST /slot-plans/preview - Failed to build preview: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slot-plans/preview - Preview built: days=%d, slots=%d", len(result.Days), result.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
