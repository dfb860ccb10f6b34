package get_slot_price

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/service/slots"
)

const (
	msgInvalidSlotID  = "некорректный ID слота"
	msgMissingOwnerID = "отсутствует ID владельца"
	msgNotFound       = "слот не найден"
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

// Handle GET /api/v1/slots/{slotId}/price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(mux.Vars(r)["slotId"])
	if err != nil {
		h.logger.Warn("GET /slots/{id}/price - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		h.logger.Warn("GET /slots/{id}/price - Missing owner ID")
		handlers.RespondUnauthorized(w, msgMissingOwnerID)
		return
	}

	price, err := h.service.GetPrice(r.Context(), ownerID, slotID)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("GET /slots/{id}/price - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("GET /slots/{id}/price - Access denied: slot_id=%s, owner_id=%s", slotID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /slots/{id}/price - Failed to get price: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, price)
}
