package navigate_step

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidAction      = "acción no válida, se espera next, prev o goto con el número de paso"
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

// Handle POST /api/v1/booking-sessions/{sessionId}/steps
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/steps - Invalid request body: session=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if !req.valid() {
		h.logger.Warn("POST /booking-sessions/{id}/steps - Invalid action: session=%s, action=%q, step=%d", sessionID, req.Action, req.Step)
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	view, err := h.service.Navigate(r.Context(), sessionID, req.Action, req.Step)
	if err != nil {
		if handlers.RespondDraftError(w, err) {
			h.logger.Warn("POST /booking-sessions/{id}/steps - Rejected: session=%s, action=%s, error=%v", sessionID, req.Action, err)
		} else {
			h.logger.Error("POST /booking-sessions/{id}/steps - Failed to navigate: session=%s, action=%s, error=%v", sessionID, req.Action, err)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/steps - session=%s, action=%s, step=%d", sessionID, req.Action, view.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionView(view))
}
