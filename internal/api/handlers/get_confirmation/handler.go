package get_confirmation

import (
	"errors"
	"net/http"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
	"github.com/m04kA/MRK-ReservationService/internal/service/confirmations"
)

const (
	msgInvalidReservationID = "identificador de reserva no válido"
	msgNotFound             = "reserva no encontrada"
	msgForbidden            = "no tiene acceso a esta reserva"
)

type Handler struct {
	service ConfirmationService
	logger  Logger
}

func NewHandler(service ConfirmationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/confirmations/{reservationId}
// Гостю нужен токен подтверждения в X-Confirmation-Token или ?token=.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.ReservationIDFromPath(r)
	if err != nil {
		h.logger.Warn("GET /confirmations/{id} - %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	c, err := h.service.Get(r.Context(), reservationID, handlers.ConfirmationToken(r))
	if err != nil {
		switch {
		case errors.Is(err, confirmations.ErrNotFound):
			h.logger.Warn("GET /confirmations/{id} - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmations.ErrAccessDenied):
			h.logger.Warn("GET /confirmations/{id} - Access denied: reservation_id=%d", reservationID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /confirmations/{id} - Failed to get confirmation: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromConfirmation(c))
}
