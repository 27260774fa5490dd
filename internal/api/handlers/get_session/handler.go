package get_session

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

// Handle GET /api/v1/booking-sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		if handlers.RespondDraftError(w, err) {
			h.logger.Warn("GET /booking-sessions/{id} - session=%s: %v", sessionID, err)
		} else {
			h.logger.Error("GET /booking-sessions/{id} - Failed to get session: session=%s, error=%v", sessionID, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionView(view))
}
