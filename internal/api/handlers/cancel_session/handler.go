package cancel_session

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/booking-sessions/{sessionId}
// Отказ от мастера: черновик удаляется без сохранения.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.Cancel(r.Context(), sessionID); err != nil {
		if handlers.RespondDraftError(w, err) {
			h.logger.Warn("DELETE /booking-sessions/{id} - session=%s: %v", sessionID, err)
		} else {
			h.logger.Error("DELETE /booking-sessions/{id} - Failed to discard session: session=%s, error=%v", sessionID, err)
		}
		return
	}

	h.logger.Info("DELETE /booking-sessions/{id} - Session discarded: session=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
