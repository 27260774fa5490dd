package retry_payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/integrations/paymentservice"
)

// validateRequest валидирует входные данные и карту
func validateRequest(req *Request, now time.Time) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CardToken) != "" {
		return nil
	}
	if req.Card == nil {
		return ErrPaymentDetailsRequired
	}
	if err := paymentservice.ValidateCard(*req.Card, now); err != nil {
		if errors.Is(err, paymentservice.ErrInvalidCard) {
			return fmt.Errorf("%w: %v", ErrInvalidCard, err)
		}
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return nil
}
