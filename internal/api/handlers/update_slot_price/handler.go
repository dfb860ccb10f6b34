package update_slot_price

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
	msgInvalidPrice       = "цена должна быть не меньше 1"
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

// Handle PUT /api/v1/slots/{slotId}/price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(mux.Vars(r)["slotId"])
	if err != nil {
		h.logger.Warn("PUT /slots/{id}/price - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		h.logger.Warn("PUT /slots/{id}/price - Missing owner ID")
		handlers.RespondUnauthorized(w, msgMissingOwnerID)
		return
	}

	var req models.UpdatePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slots/{id}/price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.OwnerID = ownerID
	req.SlotID = slotID

	price, err := h.service.UpdatePrice(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PUT /slots/{id}/price - Invalid price: slot_id=%s, price=%.2f", slotID, req.Price)
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PUT /slots/{id}/price - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("PUT /slots/{id}/price - Access denied: slot_id=%s, owner_id=%s", slotID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /slots/{id}/price - Failed to update price: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /slots/{id}/price - Price updated: slot_id=%s, price=%.2f", slotID, price.Price)
	handlers.RespondJSON(w, http.StatusOK, price)
}
