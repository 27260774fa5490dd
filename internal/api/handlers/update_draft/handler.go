package update_draft

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidOperation   = "operación no válida o incompleta"
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

// Handle PATCH /api/v1/booking-sessions/{sessionId}/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /booking-sessions/{id}/draft - Invalid request body: session=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	mutation, err := req.ToMutation()
	if err != nil {
		h.logger.Warn("PATCH /booking-sessions/{id}/draft - Invalid operation: session=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidOperation)
		return
	}

	view, err := h.service.Apply(r.Context(), sessionID, mutation)
	if err != nil {
		if handlers.RespondDraftError(w, err) {
			h.logger.Warn("PATCH /booking-sessions/{id}/draft - Rejected: session=%s, op=%s, error=%v", sessionID, req.Op, err)
		} else {
			h.logger.Error("PATCH /booking-sessions/{id}/draft - Failed to apply: session=%s, op=%s, error=%v", sessionID, req.Op, err)
		}
		return
	}

	h.logger.Info("PATCH /booking-sessions/{id}/draft - Applied: session=%s, op=%s", sessionID, req.Op)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionView(view))
}
