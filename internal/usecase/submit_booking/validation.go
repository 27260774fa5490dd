package submit_booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/paymentservice"
	"github.com/m04kA/MRK-ReservationService/internal/service/pricing"
	"github.com/m04kA/MRK-ReservationService/internal/service/wizard"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SessionID) == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	return nil
}

// validateReady оформить можно только с последнего шага мастера;
// условия всех шагов активной ветки должны выполняться на момент оформления
func validateReady(session *domain.BookingSession, in wizard.Input) error {
	graph := wizard.For(session.Variant)
	if graph.DisplayIndex(session.Step, in) < 0 || !graph.IsFinal(session.Step, in) {
		return fmt.Errorf("%w: step %d is not the last step", ErrNotReady, session.Step)
	}
	for _, step := range graph.Path(in) {
		if !graph.CanProceed(step, in) {
			return fmt.Errorf("%w: step %d is not complete", ErrNotReady, step)
		}
	}
	return nil
}

// validatePayment для онлайн-списания нужна корректная карта или токен шлюза
func validatePayment(req *Request, totals pricing.Totals, now time.Time) error {
	if !totals.AmountDue.IsPositive() {
		return nil
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
