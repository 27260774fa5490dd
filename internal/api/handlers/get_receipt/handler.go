package get_receipt

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

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

// Handle GET /api/v1/confirmations/{reservationId}/receipt?token=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.ReservationIDFromPath(r)
	if err != nil {
		h.logger.Warn("GET /confirmations/{id}/receipt - %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	c, pdf, err := h.service.Receipt(r.Context(), reservationID, handlers.ConfirmationToken(r))
	if err != nil {
		switch {
		case errors.Is(err, confirmations.ErrNotFound):
			h.logger.Warn("GET /confirmations/{id}/receipt - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmations.ErrAccessDenied):
			h.logger.Warn("GET /confirmations/{id}/receipt - Access denied: reservation_id=%d", reservationID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /confirmations/{id}/receipt - Failed to render receipt: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=\"reserva-%s.pdf\"", c.ReservationCode))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		h.logger.Warn("GET /confirmations/{id}/receipt - Failed to write body: reservation_id=%d, error=%v", reservationID, err)
		return
	}

	h.logger.Info("GET /confirmations/{id}/receipt - Receipt sent: reservation_id=%d, bytes=%d", reservationID, len(pdf))
}
