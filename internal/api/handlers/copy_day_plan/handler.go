package copy_day_plan

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	copyDayPlan "github.com/m04kA/SMC-TurfService/internal/usecase/copy_day_plan"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDay         = "некорректный день недели, ожидается Monday..Sunday"
	msgNoPreviousDay      = "для понедельника нужно явно указать день-источник"
	msgSourceDayNotFound  = "день-источник не заполнен в форме"
	msgInvalidInput       = "некорректные параметры копирования"
)

type Handler struct {
	useCase CopyDayPlanUseCase
	logger  Logger
}

func NewHandler(useCase CopyDayPlanUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slot-plans/copy-day
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CopyDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slot-plans/copy-day - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /slot-plans/copy-day - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, copyDayPlan.ErrNoPreviousDay):
			h.logger.Warn("POST /slot-plans/copy-day - No previous day: target=%s", useCaseReq.TargetDay)
			handlers.RespondBadRequest(w, msgNoPreviousDay)

		case errors.Is(err, copyDayPlan.ErrSourceDayNotFound):
			h.logger.Warn("POST /slot-plans/copy-day - Source day not found: target=%s", useCaseReq.TargetDay)
			handlers.RespondNotFound(w, msgSourceDayNotFound)

		case errors.Is(err, copyDayPlan.ErrInvalidInput):
			h.logger.Warn("POST /slot-plans/copy-day - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slot-plans/copy-day - Failed to copy day: target=%s, error=%v", useCaseReq.TargetDay, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slot-plans/copy-day - Day copied: %s -> %s", result.SourceDay, useCaseReq.TargetDay)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
