package resolve_availability

import (
	"context"

	resolveAvailability "github.com/m04kA/MRK-ReservationService/internal/usecase/resolve_availability"
)

type ResolveAvailabilityUseCase interface {
	Execute(ctx context.Context, req *resolveAvailability.Request) (*resolveAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
