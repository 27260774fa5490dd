package retry_payment

import (
	"context"

	retryPayment "github.com/m04kA/MRK-ReservationService/internal/usecase/retry_payment"
)

type RetryPaymentUseCase interface {
	Execute(ctx context.Context, req *retryPayment.Request) (*retryPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
