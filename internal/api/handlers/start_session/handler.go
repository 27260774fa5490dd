package start_session

import (
	"net/http"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidVariant     = "tipo de reserva no válido, se espera table o event"
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

// Handle POST /api/v1/booking-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if !req.Variant.IsValid() {
		h.logger.Warn("POST /booking-sessions - Invalid variant: %q", req.Variant)
		handlers.RespondBadRequest(w, msgInvalidVariant)
		return
	}

	view, err := h.service.Start(r.Context(), req.Variant)
	if err != nil {
		if !handlers.RespondDraftError(w, err) {
			h.logger.Error("POST /booking-sessions - Failed to start session: variant=%s, error=%v", req.Variant, err)
		}
		return
	}

	h.logger.Info("POST /booking-sessions - Session started: session=%s, variant=%s", view.ID, view.Variant)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSessionView(view))
}
