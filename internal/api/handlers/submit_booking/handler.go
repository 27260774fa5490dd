package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
	submitBooking "github.com/m04kA/MRK-ReservationService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody     = "cuerpo de la solicitud no válido"
	msgInvalidInput           = "los datos de la reserva no son válidos"
	msgSessionNotFound        = "la sesión de reserva no existe o ha expirado"
	msgForbidden              = "no tiene acceso a esta sesión de reserva"
	msgInProgress             = "su reserva ya se está procesando"
	msgNotReady               = "complete todos los pasos antes de confirmar la reserva"
	msgPaymentDetailsRequired = "ingrese los datos de su tarjeta para continuar"
	msgInvalidCard            = "los datos de la tarjeta no son válidos"
	msgSlotTaken              = "el horario seleccionado ya no está disponible, elija otro"
	msgReservationUnavailable = "no pudimos registrar su reserva en este momento, inténtelo nuevamente"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-sessions/{sessionId}/submit
// Ошибка оплаты не является ошибкой запроса: бронирование создано, в ответе paymentFailed=true.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var body handlers.PaymentRequest
	if err := handlers.DecodeOptionalJSON(r, &body); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/submit - Invalid request body: session=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req := &submitBooking.Request{
		SessionID: sessionID,
		Card:      body.ToCard(),
		CardToken: body.CardToken,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSessionNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, submitBooking.ErrAccessDenied):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Access denied: session=%s", sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitBooking.ErrSubmissionInProgress):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Already in progress: session=%s", sessionID)
			handlers.RespondConflict(w, msgInProgress)

		case errors.Is(err, submitBooking.ErrNotReady):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Not ready: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNotReady)

		case errors.Is(err, submitBooking.ErrPaymentDetailsRequired):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Payment details required: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgPaymentDetailsRequired)

		case errors.Is(err, submitBooking.ErrInvalidCard):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Invalid card: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidCard)

		case errors.Is(err, submitBooking.ErrSlotTaken):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Slot taken: session=%s", sessionID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, submitBooking.ErrReservationUnavailable):
			h.logger.Error("POST /booking-sessions/{id}/submit - Reservation service unavailable: session=%s, error=%v", sessionID, err)
			handlers.RespondServiceUnavailable(w, msgReservationUnavailable)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /booking-sessions/{id}/submit - Failed to submit booking: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/submit - Reservation created: session=%s, reservation_id=%d, status=%s, payment_failed=%t",
		sessionID, result.ReservationID, result.Status, result.PaymentFailed)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromConfirmation(result))
}
