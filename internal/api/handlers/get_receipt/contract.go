package get_receipt

import (
	"context"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
)

type ConfirmationService interface {
	Receipt(ctx context.Context, reservationID int64, accessToken string) (*domain.Confirmation, []byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
