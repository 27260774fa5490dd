package retry_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
	retryPayment "github.com/m04kA/MRK-ReservationService/internal/usecase/retry_payment"
)

const (
	msgInvalidReservationID   = "identificador de reserva no válido"
	msgInvalidRequestBody     = "cuerpo de la solicitud no válido"
	msgNotFound               = "reserva no encontrada"
	msgForbidden              = "no tiene acceso a esta reserva"
	msgNothingToRetry         = "esta reserva no tiene pagos pendientes"
	msgInProgress             = "el pago ya se está procesando"
	msgPaymentDetailsRequired = "ingrese los datos de su tarjeta para continuar"
	msgInvalidCard            = "los datos de la tarjeta no son válidos"
)

type Handler struct {
	useCase RetryPaymentUseCase
	logger  Logger
}

func NewHandler(useCase RetryPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/confirmations/{reservationId}/payment-retry
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.ReservationIDFromPath(r)
	if err != nil {
		h.logger.Warn("POST /confirmations/{id}/payment-retry - %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var body handlers.PaymentRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /confirmations/{id}/payment-retry - Invalid request body: reservation_id=%d, error=%v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req := &retryPayment.Request{
		ReservationID: reservationID,
		AccessToken:   handlers.ConfirmationToken(r),
		Card:          body.ToCard(),
		CardToken:     body.CardToken,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, retryPayment.ErrConfirmationNotFound):
			h.logger.Warn("POST /confirmations/{id}/payment-retry - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, retryPayment.ErrAccessDenied):
			h.logger.Warn("POST /confirmations/{id}/payment-retry - Access denied: reservation_id=%d", reservationID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, retryPayment.ErrNothingToRetry):
			h.logger.Warn("POST /confirmations/{id}/payment-retry - Nothing to retry: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgNothingToRetry)

		case errors.Is(err, retryPayment.ErrRetryInProgress):
			h.logger.Warn("POST /confirmations/{id}/payment-retry - Already in progress: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgInProgress)

		case errors.Is(err, retryPayment.ErrPaymentDetailsRequired):
			handlers.RespondBadRequest(w, msgPaymentDetailsRequired)

		case errors.Is(err, retryPayment.ErrInvalidCard), errors.Is(err, retryPayment.ErrInvalidInput):
			h.logger.Warn("POST /confirmations/{id}/payment-retry - Invalid card: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidCard)

		default:
			h.logger.Error("POST /confirmations/{id}/payment-retry - Failed to retry payment: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /confirmations/{id}/payment-retry - reservation_id=%d, status=%s, payment_failed=%t",
		reservationID, result.Status, result.PaymentFailed)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromConfirmation(result))
}
