package toggle_slot_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/service/slots"
	"github.com/m04kA/SMC-TurfService/internal/service/slots/models"
)

const (
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingOwnerID     = "отсутствует ID владельца"
	msgInvalidStatus      = "некорректный статус, ожидается Y или N"
	msgNotFound           = "слот не найден"
	msgForbidden          = "доступ запрещен"
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

// Handle PATCH /api/v1/slots/{slotId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(mux.Vars(r)["slotId"])
	if err != nil {
		h.logger.Warn("PATCH /slots/{id}/status - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /slots/{id}/status - Missing owner ID")
		handlers.RespondUnauthorized(w, msgMissingOwnerID)
		return
	}

	var req models.ToggleStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.OwnerID = ownerID
	req.SlotID = slotID

	slot, err := h.service.ToggleStatus(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PATCH /slots/{id}/status - Invalid status: slot_id=%s, value=%q", slotID, req.IsActive)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PATCH /slots/{id}/status - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("PATCH /slots/{id}/status - Access denied: slot_id=%s, owner_id=%s", slotID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /slots/{id}/status - Failed to update status: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/{id}/status - Status updated: slot_id=%s, is_active=%s", slotID, slot.IsActive)
	handlers.RespondJSON(w, http.StatusOK, slot)
}
