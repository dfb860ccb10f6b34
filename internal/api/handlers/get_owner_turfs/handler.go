package get_owner_turfs

import (
	"net/http"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
)

const msgMissingOwnerID = "отсутствует ID владельца"

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

// Handle GET /api/v1/turfs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerID(r.Context())
	if !ok {
		h.logger.Warn("GET /turfs - Missing owner ID")
		handlers.RespondUnauthorized(w, msgMissingOwnerID)
		return
	}

	turfs, err := h.service.GetOwnerTurfs(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("GET /turfs - Failed to get turfs: owner_id=%s, error=%v", ownerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /turfs - Turfs retrieved: owner_id=%s, count=%d", ownerID, len(turfs))
	handlers.RespondJSON(w, http.StatusOK, turfs)
}
