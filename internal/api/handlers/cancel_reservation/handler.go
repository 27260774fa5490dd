package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
	cancelReservation "github.com/m04kA/MRK-ReservationService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidReservationID = "identificador de reserva no válido"
	msgUnauthenticated      = "se requiere iniciar sesión"
	msgNotFound             = "reserva no encontrada"
	msgForbidden            = "no tiene acceso a esta reserva"
	msgAlreadyCancelled     = "la reserva ya fue cancelada"
	msgNotCancellable       = "la reserva no puede ser cancelada"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.ReservationIDFromPath(r)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/cancel - %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelReservation.Request{ReservationID: reservationID})
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, cancelReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/cancel - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelReservation.ErrAccessDenied):
			h.logger.Warn("POST /reservations/{id}/cancel - Access denied: reservation_id=%d", reservationID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelReservation.ErrAlreadyCancelled):
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, cancelReservation.ErrNotCancellable):
			h.logger.Warn("POST /reservations/{id}/cancel - Not cancellable: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondConflict(w, msgNotCancellable)

		case errors.Is(err, cancelReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		default:
			h.logger.Error("POST /reservations/{id}/cancel - Failed to cancel reservation: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/cancel - Reservation cancelled: reservation_id=%d, code=%s", reservationID, result.ReservationCode)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
