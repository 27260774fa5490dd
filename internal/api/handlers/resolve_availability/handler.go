package resolve_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
	resolveAvailability "github.com/m04kA/MRK-ReservationService/internal/usecase/resolve_availability"
)

const (
	msgInvalidDateFormat = "fecha no válida, se espera YYYY-MM-DD"
	msgDateNotBookable   = "la fecha seleccionada no está disponible para reservas"
	msgSessionNotFound   = "la sesión de reserva no existe o ha expirado"
	msgForbidden         = "no tiene acceso a esta sesión de reserva"
)

type Handler struct {
	useCase ResolveAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ResolveAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-sessions/{sessionId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &resolveAvailability.Request{
		SessionID: mux.Vars(r)["sessionId"],
		Date:      r.URL.Query().Get("date"),
	}

	view, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, resolveAvailability.ErrInvalidInput):
			h.logger.Warn("GET /booking-sessions/{id}/availability - Invalid input: session=%s, date=%q", req.SessionID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDateFormat)

		case errors.Is(err, resolveAvailability.ErrInvalidDate):
			h.logger.Warn("GET /booking-sessions/{id}/availability - Date not bookable: session=%s, date=%s, error=%v", req.SessionID, req.Date, err)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, resolveAvailability.ErrSessionNotFound):
			h.logger.Warn("GET /booking-sessions/{id}/availability - Session not found: session=%s", req.SessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, resolveAvailability.ErrAccessDenied):
			h.logger.Warn("GET /booking-sessions/{id}/availability - Access denied: session=%s", req.SessionID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /booking-sessions/{id}/availability - Failed to resolve availability: session=%s, date=%s, error=%v",
				req.SessionID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-sessions/{id}/availability - session=%s, date=%s, degraded=%t", req.SessionID, req.Date, view.Degraded)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSessionView(view))
}
