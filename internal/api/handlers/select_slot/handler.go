package select_slot

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgMissingSlot        = "seleccione un horario"
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

// Handle POST /api/v1/booking-sessions/{sessionId}/slot
// Занятый или неизвестный слот не меняет черновик; клиент видит прежний выбор в ответе.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/slot - Invalid request body: session=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	slot := strings.TrimSpace(req.Slot)
	if slot == "" {
		handlers.RespondBadRequest(w, msgMissingSlot)
		return
	}

	view, err := h.service.SelectSlot(r.Context(), sessionID, slot)
	if err != nil {
		if handlers.RespondDraftError(w, err) {
			h.logger.Warn("POST /booking-sessions/{id}/slot - Rejected: session=%s, slot=%s, error=%v", sessionID, slot, err)
		} else {
			h.logger.Error("POST /booking-sessions/{id}/slot - Failed to select slot: session=%s, slot=%s, error=%v", sessionID, slot, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionView(view))
}
