package resolve_availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SessionID) == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет дату по правилам варианта
func validateDate(rules domain.DateRules, date string, now time.Time) error {
	if err := rules.Validate(date, now); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return nil
}
