package get_confirmation

import (
	"context"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
)

type ConfirmationService interface {
	Get(ctx context.Context, reservationID int64, accessToken string) (*domain.Confirmation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
